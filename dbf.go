package godbf

import "fmt"

const (
	SPACE = 0x20
	NUL   = 0x00

	// FieldTerminator ends the field descriptor list in a DBF header.
	FieldTerminator = 0x0D
)

const (
	// FieldRecordSize is the on-disk size of one field descriptor.
	FieldRecordSize = 32

	nameSlotSize = 11

	MaxNameLength   = 10
	MaxFieldLength  = 255
	MaxDecimalCount = 127
	DateFieldLength = 8
)

// DataType is the single-byte storage type of a column.
type DataType byte

const (
	Character DataType = 'C'
	Logical   DataType = 'L'
	Numeric   DataType = 'N'
	Float     DataType = 'F'
	Date      DataType = 'D'
	Memo      DataType = 'M'
)

// Valid reports whether t is one of the supported storage types.
func (t DataType) Valid() bool {
	switch t {
	case Character, Logical, Numeric, Float, Date, Memo:
		return true
	}
	return false
}

func (t DataType) String() string {
	switch t {
	case Character:
		return "Character"
	case Logical:
		return "Logical"
	case Numeric:
		return "Numeric"
	case Float:
		return "Float"
	case Date:
		return "Date"
	case Memo:
		return "Memo"
	}
	return fmt.Sprintf("Unknown(0x%02X)", byte(t))
}
