package godbf

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// ReadField reads the next field descriptor from r.
//
// The first byte is read on its own: when it is FieldTerminator the returned
// Entry has End set and nothing else is consumed from r. Otherwise the other
// 31 bytes of the record are read. Calls on the same reader must not run
// concurrently.
//
// No validation is applied; a corrupt header can produce a Field that the Set
// methods would reject. Use a strict Codec, or Field.Validate, to check it.
//
// io.EOF is returned when r has no more bytes, io.ErrUnexpectedEOF when it
// ends inside a record. Other reader errors are returned as they are.
func ReadField(r io.Reader) (Entry, error) {
	var buf [FieldRecordSize]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return Entry{}, err
	}
	if buf[0] == FieldTerminator {
		Logger().Debug("end of field descriptors")
		return Entry{End: true}, nil
	}
	if _, err := io.ReadFull(r, buf[1:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Entry{}, err
	}
	return DecodeField(buf[:])
}

// DecodeField decodes a field descriptor held in b. A chunk starting with
// FieldTerminator yields an End entry; any other chunk must be exactly
// FieldRecordSize bytes long.
func DecodeField(b []byte) (Entry, error) {
	if len(b) > 0 && b[0] == FieldTerminator {
		return Entry{End: true}, nil
	}
	if len(b) != FieldRecordSize {
		return Entry{}, newFieldError("DecodeField", ErrRecordSize, "expected 32 bytes")
	}

	var e Entry
	for _, region := range fieldLayout {
		region.decode(&e.Field, b[region.offset:region.offset+region.width])
	}
	if ce := Logger().Check(zap.DebugLevel, "decoded field descriptor"); ce != nil {
		ce.Write(
			zap.String("name", e.Field.Name()),
			zap.Stringer("type", e.Field.dataType),
			zap.Int("length", e.Field.fieldLength),
			zap.Int("decimal", e.Field.decimalCount),
		)
	}
	return e, nil
}
