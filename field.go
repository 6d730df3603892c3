package godbf

import "bytes"

// Field describes one column of a DBF table: the 32-byte field descriptor
// stored in the file header.
//
// A Field is either decoded from a header with ReadField, which applies no
// validation, or built from the zero value with the Set methods, which must be
// called in the order type, length, decimal count.
type Field struct {
	name    [nameSlotSize]byte
	nameLen int

	dataType     DataType
	fieldLength  int
	decimalCount int

	// Legacy regions, kept as read and zeroed on write.
	reserved1      uint32
	reserved2      uint16
	workAreaID     byte
	reserved3      uint16
	setFieldsFlag  byte
	reserved4      [7]byte
	indexFieldFlag byte
}

// NewField returns a Field with the given name and type. Length and decimal
// count are left to the caller.
func NewField(name string, t DataType) (*Field, error) {
	f := &Field{}
	if err := f.SetName(name); err != nil {
		return nil, err
	}
	if err := f.SetDataType(t); err != nil {
		return nil, err
	}
	return f, nil
}

// setNameSlot stores a raw 11-byte name slot. The name ends at the first NUL,
// or fills the slot when there is none.
func (f *Field) setNameSlot(b []byte) {
	copy(f.name[:], b)
	index := bytes.IndexByte(f.name[:], NUL)
	if index == -1 {
		index = len(f.name)
	}
	f.nameLen = index
}

// Name returns the column name as raw bytes converted to a string. Use
// Codec.Name for names stored in a non UTF-8 code page.
func (f *Field) Name() string {
	return string(f.name[:f.nameLen])
}

// NameBytes returns a copy of the logical name bytes.
func (f *Field) NameBytes() []byte {
	b := make([]byte, f.nameLen)
	copy(b, f.name[:f.nameLen])
	return b
}

func (f *Field) DataType() DataType {
	return f.dataType
}

func (f *Field) FieldLength() int {
	return f.fieldLength
}

// DecimalCount returns the number of decimal places. It is zero for integral
// and non numeric columns.
func (f *Field) DecimalCount() int {
	return f.decimalCount
}

// WorkAreaID returns the work-area byte as it was read. Always zero for
// fields built in memory.
func (f *Field) WorkAreaID() byte {
	return f.workAreaID
}

// SetFieldsFlag returns the legacy "SET FIELDS" flag byte as it was read.
func (f *Field) SetFieldsFlag() byte {
	return f.setFieldsFlag
}

func (f *Field) IndexFieldFlag() byte {
	return f.indexFieldFlag
}

// Entry is the outcome of reading one slot of a field descriptor list. End is
// set when the list terminator was read, in which case Field is the zero
// value.
type Entry struct {
	Field Field
	End   bool
}
