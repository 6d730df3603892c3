package godbf

import "io"

// MarshalBinary encodes f as a 32-byte field descriptor. The legacy regions
// (work area, flags and reserved bytes) are always written as zero, whatever
// was decoded. It never produces FieldTerminator; ending the list is up to the
// header writer.
func (f *Field) MarshalBinary() ([]byte, error) {
	buf := make([]byte, FieldRecordSize)
	f.encode(buf)
	return buf, nil
}

func (f *Field) encode(buf []byte) {
	for _, region := range fieldLayout {
		if region.encode == nil {
			continue
		}
		region.encode(f, buf[region.offset:region.offset+region.width])
	}
}

// WriteField writes the encoded descriptor of f to w in a single Write call.
func WriteField(w io.Writer, f *Field) error {
	var buf [FieldRecordSize]byte
	f.encode(buf[:])
	n, err := w.Write(buf[:])
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return nil
}
