package godbf_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/maxatome/go-testdeep/td"

	godbf "github.com/Ulysses-Xu/go-dbf-field"
)

func TestReadField(t *testing.T) {
	r := bytes.NewReader(record("NAME1", 'C', 20, 0))

	e, err := godbf.ReadField(r)
	td.Require(t).CmpNoError(err)
	td.CmpFalse(t, e.End)
	td.Cmp(t, e.Field.Name(), "NAME1")
	td.Cmp(t, e.Field.DataType(), godbf.Character)
	td.Cmp(t, e.Field.FieldLength(), 20)
	td.Cmp(t, e.Field.DecimalCount(), 0)
	td.Cmp(t, r.Len(), 0)
}

func TestReadFieldTerminator(t *testing.T) {
	trailing := []byte{0x01, 0x02, 0x03}
	r := bytes.NewReader(append([]byte{godbf.FieldTerminator}, trailing...))

	e, err := godbf.ReadField(r)
	td.Require(t).CmpNoError(err)
	td.CmpTrue(t, e.End)
	td.Cmp(t, e.Field, godbf.Field{})
	// only the terminator is consumed
	td.Cmp(t, r.Len(), len(trailing))
}

func TestReadFieldList(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(record("ID", 'N', 10, 0))
	buf.Write(record("PRICE", 'N', 12, 2))
	buf.Write(record("BORN", 'D', 8, 0))
	buf.WriteByte(godbf.FieldTerminator)
	buf.WriteString("rows")

	var names []string
	for {
		e, err := godbf.ReadField(&buf)
		td.Require(t).CmpNoError(err)
		if e.End {
			break
		}
		names = append(names, e.Field.Name())
	}
	td.Cmp(t, names, []string{"ID", "PRICE", "BORN"})
	td.Cmp(t, buf.String(), "rows")
}

func TestReadFieldNameBoundary(t *testing.T) {
	testCases := []struct {
		desc string
		slot string
		want string
	}{
		{desc: "single", slot: "A", want: "A"},
		{desc: "ten", slot: "ABCDEFGHIJ", want: "ABCDEFGHIJ"},
		{desc: "garbage after NUL", slot: "AB\x00XYZ", want: "AB"},
		{desc: "empty", slot: "", want: ""},
		{desc: "no terminator", slot: "ABCDEFGHIJK", want: "ABCDEFGHIJK"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			e, err := godbf.DecodeField(record(tC.slot, 'C', 1, 0))
			td.Require(t).CmpNoError(err)
			td.Cmp(t, e.Field.Name(), tC.want)
			td.Cmp(t, e.Field.NameBytes(), []byte(tC.want))
		})
	}
}

func TestReadFieldLegacyRegions(t *testing.T) {
	b := record("FLAGS", 'L', 1, 0)
	b[12], b[13], b[14], b[15] = 0xDE, 0xAD, 0xBE, 0xEF
	b[18], b[19] = 0x11, 0x22
	b[20] = 0x05
	b[21], b[22] = 0x33, 0x44
	b[23] = 0x01
	b[31] = 0x01

	e, err := godbf.DecodeField(b)
	td.Require(t).CmpNoError(err)
	td.Cmp(t, e.Field.WorkAreaID(), byte(0x05))
	td.Cmp(t, e.Field.SetFieldsFlag(), byte(0x01))
	td.Cmp(t, e.Field.IndexFieldFlag(), byte(0x01))
	td.Cmp(t, e.Field.Name(), "FLAGS")
	td.Cmp(t, e.Field.FieldLength(), 1)
}

func TestReadFieldByteRanges(t *testing.T) {
	e, err := godbf.DecodeField(record("WIDE", 'C', 255, 0xFF))
	td.Require(t).CmpNoError(err)
	td.Cmp(t, e.Field.FieldLength(), 255)
	// decimal count is a signed byte
	td.Cmp(t, e.Field.DecimalCount(), -1)
}

func TestReadFieldNoValidation(t *testing.T) {
	e, err := godbf.DecodeField(record("BAD", 'Z', 0, 9))
	td.Require(t).CmpNoError(err)
	td.Cmp(t, e.Field.DataType(), godbf.DataType('Z'))
	td.Cmp(t, e.Field.FieldLength(), 0)
	td.Cmp(t, e.Field.DecimalCount(), 9)
	td.CmpError(t, e.Field.Validate())
}

func TestReadFieldStreamErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := godbf.ReadField(bytes.NewReader(nil))
		td.Cmp(t, err, io.EOF)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := godbf.ReadField(bytes.NewReader(record("CUT", 'C', 5, 0)[:10]))
		td.Cmp(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("reader failure", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := godbf.ReadField(iotest.ErrReader(boom))
		td.Cmp(t, err, boom)
	})
}

func TestDecodeFieldSize(t *testing.T) {
	for _, size := range []int{0, 1, 31, 33} {
		b := make([]byte, size)
		_, err := godbf.DecodeField(b)
		td.CmpTrue(t, errors.Is(err, godbf.ErrRecordSize), "size %d", size)
		var fe *godbf.FieldError
		td.Require(t).True(errors.As(err, &fe))
		td.Cmp(t, fe.Op, "DecodeField")
	}

	e, err := godbf.DecodeField([]byte{godbf.FieldTerminator})
	td.CmpNoError(t, err)
	td.CmpTrue(t, e.End)
}
