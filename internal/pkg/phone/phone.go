package phone

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// Digits strips everything but 0-9.
func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// Format renders a ten-digit number as "(XXX) XXX-XXXX". Anything else is
// returned unchanged.
func Format(s string) string {
	d := Digits(s)
	if len(d) != 10 {
		return s
	}
	return "(" + d[0:3] + ") " + d[3:6] + "-" + d[6:]
}
