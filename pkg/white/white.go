// Package white removes white space from byte slices.
// The pdb reader uses it to squash numeric columns before parsing,
// so " 1 2" becomes "12".
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

func isWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place and removes all the white
// space. The slice comes back shorter, but with the capacity unchanged.
func Remove(pb *[]byte) {
	b := *pb
	n := 0
	for _, c := range b {
		if !isWhite(c) {
			b[n] = c
			n++
		}
	}
	*pb = b[:n]
}

// String is Remove for strings. If there is no white space, s comes
// back without a copy.
func String(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if isWhite(s[i]) {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	Remove(&b)
	return string(b)
}
