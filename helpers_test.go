package godbf_test

// record builds a raw field descriptor. name is copied into the 11-byte slot
// without a terminator check so tests can build full-width names.
func record(name string, dataType byte, length, decimal byte) []byte {
	b := make([]byte, 32)
	copy(b[:11], name)
	b[11] = dataType
	b[16] = length
	b[17] = decimal
	return b
}

// compareBytes returns every offset where a and b differ as
// {offset, a[offset], b[offset]}; -1 stands for a missing byte.
func compareBytes(a, b []byte) [][3]int {
	var differences [][3]int

	minLength := len(a)
	if len(b) < minLength {
		minLength = len(b)
	}
	for i := 0; i < minLength; i++ {
		if a[i] != b[i] {
			differences = append(differences, [3]int{i, int(a[i]), int(b[i])})
		}
	}
	for i := minLength; i < len(a); i++ {
		differences = append(differences, [3]int{i, int(a[i]), -1})
	}
	for i := minLength; i < len(b); i++ {
		differences = append(differences, [3]int{i, -1, int(b[i])})
	}
	return differences
}
