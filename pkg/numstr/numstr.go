// Package numstr holds the lexical predicates the number validator uses to
// classify user-typed numeric text. Both predicates are locale independent and
// only accept ASCII digits.
package numstr

// IsFloat reports whether s is a decimal number: an optional sign, at least
// one digit, then an optional decimal point followed by optional fraction
// digits. Exponents and surrounding whitespace are rejected.
func IsFloat(s string) bool {
	i := skipSign(s)
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i == len(s)
}

// IsInt reports whether s is an optionally signed run of digits with no
// fractional part.
func IsInt(s string) bool {
	i := skipSign(s)
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func skipSign(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
