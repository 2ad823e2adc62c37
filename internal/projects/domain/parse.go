package domain

import "strconv"

// ParseNumeric extracts the digit sequence from free-text admin input such as
// "LOD 350" or "15,000 sqft". Input with no digits yields nil, never zero and
// never an error.
func ParseNumeric(s string) *int {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) == 0 {
		return nil
	}

	n, err := strconv.Atoi(string(digits))
	if err != nil {
		// Digit run too long for an int.
		return nil
	}
	return &n
}
