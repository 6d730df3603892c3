package main

import (
	"encoding/binary"
	"fmt"
	"io"
)

// fileHeader is the fixed 32-byte part of a DBF header that precedes the
// field descriptor list.
type fileHeader struct {
	Version          byte
	LastUpdateYear   byte
	LastUpdateMonth  byte
	LastUpdateDay    byte
	NumRecords       uint32
	HeaderLength     uint16
	RecordLength     uint16
	Reserved         [2]byte
	Flag             byte
	EncryptFlag      byte
	Reserved2        [12]byte
	MDXFlag          byte
	LanguageDriverID byte
	Reserved3        [2]byte
}

func readHeader(r io.Reader) (fileHeader, error) {
	var h fileHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("read file header: %w", err)
	}
	return h, nil
}

// lastUpdate formats the YYMMDD stamp; the year is stored as an offset
// from 1900.
func (h fileHeader) lastUpdate() string {
	return fmt.Sprintf("%04d-%02d-%02d", 1900+int(h.LastUpdateYear), h.LastUpdateMonth, h.LastUpdateDay)
}
