package telegram

import "strconv"

// formatAmount renders a price rounded to whole units with spaces as
// thousands separators, e.g. 2280000 -> "2 280 000".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var b []byte
	if neg {
		b = append(b, '-')
	}
	head := n % 3
	if head > 0 {
		b = append(b, s[:head]...)
	}
	for i := head; i < n; i += 3 {
		if len(b) > 0 && !(neg && len(b) == 1) {
			b = append(b, ' ')
		}
		b = append(b, s[i:i+3]...)
	}
	return string(b)
}
