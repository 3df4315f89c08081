package loader

// DefaultLabel is the label given to an unlabeled option at zero-based position i:
// A..Z, then AA, AB and so on.
func DefaultLabel(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
