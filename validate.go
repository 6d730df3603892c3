package godbf

import (
	"fmt"
	"strings"
)

// SetName sets the column name. The name must be 1 to 10 bytes long.
func (f *Field) SetName(name string) error {
	return f.setNameBytes("SetName", []byte(name))
}

// SetFieldName sets the column name.
//
// Deprecated: use SetName.
func (f *Field) SetFieldName(name string) error {
	return f.SetName(name)
}

func (f *Field) setNameBytes(op string, name []byte) error {
	if len(name) == 0 || len(name) > MaxNameLength {
		return newFieldError(op, ErrInvalidArgument,
			fmt.Sprintf("field name should be 1-%d bytes, got %d", MaxNameLength, len(name)))
	}
	f.name = [nameSlotSize]byte{}
	copy(f.name[:], name)
	f.nameLen = len(name)
	return nil
}

// SetDataType sets the storage type. Selecting Date also sets the field
// length to 8, and the length can't be changed afterwards.
func (f *Field) SetDataType(t DataType) error {
	if !t.Valid() {
		return newFieldError("SetDataType", ErrInvalidArgument, "unknown data type "+t.String())
	}
	if t == Date {
		f.fieldLength = DateFieldLength
	}
	f.dataType = t
	return nil
}

// SetFieldLength sets the column width in bytes. Call it after SetDataType
// and before SetDecimalCount.
func (f *Field) SetFieldLength(length int) error {
	if length <= 0 || length > MaxFieldLength {
		return newFieldError("SetFieldLength", ErrInvalidArgument,
			fmt.Sprintf("field length should be 1-%d, got %d", MaxFieldLength, length))
	}
	if f.dataType == Date {
		return newFieldError("SetFieldLength", ErrUnsupportedOperation, "length of a Date field is fixed")
	}
	f.fieldLength = length
	return nil
}

// SetDecimalCount sets the number of decimal places. It is checked against the
// current field length, so SetFieldLength must be called first.
func (f *Field) SetDecimalCount(size int) error {
	if size < 0 {
		return newFieldError("SetDecimalCount", ErrInvalidArgument,
			fmt.Sprintf("decimal count should not be negative, got %d", size))
	}
	if size > f.fieldLength {
		return newFieldError("SetDecimalCount", ErrInvalidArgument,
			fmt.Sprintf("decimal count %d exceeds field length %d", size, f.fieldLength))
	}
	if size > MaxDecimalCount {
		return newFieldError("SetDecimalCount", ErrInvalidArgument,
			fmt.Sprintf("decimal count should be at most %d, got %d", MaxDecimalCount, size))
	}
	f.decimalCount = size
	return nil
}

// Validate checks f against the rules the Set methods enforce. It is meant for
// fields obtained from ReadField. Every broken rule is reported.
func (f *Field) Validate() error {
	var problems []string
	if f.nameLen == 0 || f.nameLen > MaxNameLength {
		problems = append(problems, fmt.Sprintf("name length %d out of range", f.nameLen))
	}
	if !f.dataType.Valid() {
		problems = append(problems, fmt.Sprintf("unknown data type %s", f.dataType))
	}
	if f.fieldLength <= 0 || f.fieldLength > MaxFieldLength {
		problems = append(problems, fmt.Sprintf("field length %d out of range", f.fieldLength))
	}
	if f.dataType == Date && f.fieldLength != DateFieldLength {
		problems = append(problems, fmt.Sprintf("date field length %d, want %d", f.fieldLength, DateFieldLength))
	}
	if f.decimalCount < 0 || f.decimalCount > f.fieldLength {
		problems = append(problems, fmt.Sprintf("decimal count %d out of range for length %d", f.decimalCount, f.fieldLength))
	}
	if len(problems) == 0 {
		return nil
	}
	return newFieldError("Validate", ErrCorruptField, strings.Join(problems, "; "))
}
