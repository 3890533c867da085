package identity

// luhnSum adds the digits of s, doubling every second digit counted from the
// left starting at index 1. Callers guarantee s contains only ASCII digits.
func luhnSum(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		d := int(s[i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum
}

// luhnCheckDigit returns the digit that makes partial+digit pass luhnValid
// for a 14-digit partial
func luhnCheckDigit(partial string) int {
	return (10 - luhnSum(partial)%10) % 10
}

func luhnValid(s string) bool {
	return luhnSum(s)%10 == 0
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
