package premium

import "strings"

var monthNames = map[string]bool{
	"January": true, "February": true, "March": true, "April": true,
	"May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
}

// NormalizePeriod title-cases the month and checks it is a real English
// month name with a sane year
func NormalizePeriod(month string, year int) (string, bool) {
	m := strings.TrimSpace(month)
	if m == "" {
		return "", false
	}
	m = strings.ToUpper(m[:1]) + strings.ToLower(m[1:])

	if !monthNames[m] {
		return "", false
	}
	if year < 2000 || year > 2100 {
		return "", false
	}
	return m, true
}
