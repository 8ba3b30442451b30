package decfloat

// fint (Fast INTeger) is a wrapper around uint64.
// It holds the significant decimal digits of a float64, which never
// exceed 17 digits in the shortest round-tripping representation.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = 9_999_999_999_999_999_999

// appendDigit returns x * 10 + d, where d is a decimal digit.
// It reports false if the result does not fit into fint.
func (x fint) appendDigit(d byte) (fint, bool) {
	if x > (maxFint-fint(d))/10 {
		return 0, false
	}
	return x*10 + fint(d), true
}
