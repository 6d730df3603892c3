package godbf

import "encoding/binary"

// fieldRegion is one row of the field descriptor layout. decode copies the
// region out of a record into f; encode writes it back. A nil encode leaves
// the region zeroed.
type fieldRegion struct {
	name   string
	offset int
	width  int
	decode func(f *Field, b []byte)
	encode func(f *Field, b []byte)
}

// fieldLayout describes the 32-byte field descriptor, in offset order.
// Every byte of the record belongs to exactly one region.
var fieldLayout = []fieldRegion{
	{
		name: "name", offset: 0, width: nameSlotSize,
		decode: func(f *Field, b []byte) { f.setNameSlot(b) },
		encode: func(f *Field, b []byte) { copy(b, f.name[:f.nameLen]) },
	},
	{
		name: "type", offset: 11, width: 1,
		decode: func(f *Field, b []byte) { f.dataType = DataType(b[0]) },
		encode: func(f *Field, b []byte) { b[0] = byte(f.dataType) },
	},
	{
		name: "reserved1", offset: 12, width: 4,
		decode: func(f *Field, b []byte) { f.reserved1 = binary.LittleEndian.Uint32(b) },
	},
	{
		name: "length", offset: 16, width: 1,
		decode: func(f *Field, b []byte) { f.fieldLength = int(b[0]) },
		encode: func(f *Field, b []byte) { b[0] = byte(f.fieldLength) },
	},
	{
		name: "decimal", offset: 17, width: 1,
		decode: func(f *Field, b []byte) { f.decimalCount = int(int8(b[0])) },
		encode: func(f *Field, b []byte) { b[0] = byte(int8(f.decimalCount)) },
	},
	{
		name: "reserved2", offset: 18, width: 2,
		decode: func(f *Field, b []byte) { f.reserved2 = binary.LittleEndian.Uint16(b) },
	},
	{
		name: "workAreaID", offset: 20, width: 1,
		decode: func(f *Field, b []byte) { f.workAreaID = b[0] },
	},
	{
		name: "reserved3", offset: 21, width: 2,
		decode: func(f *Field, b []byte) { f.reserved3 = binary.LittleEndian.Uint16(b) },
	},
	{
		name: "setFieldsFlag", offset: 23, width: 1,
		decode: func(f *Field, b []byte) { f.setFieldsFlag = b[0] },
	},
	{
		name: "reserved4", offset: 24, width: 7,
		decode: func(f *Field, b []byte) { copy(f.reserved4[:], b) },
	},
	{
		name: "indexFieldFlag", offset: 31, width: 1,
		decode: func(f *Field, b []byte) { f.indexFieldFlag = b[0] },
	},
}
