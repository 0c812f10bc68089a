package crypto

import "fmt"

// FormatCurrency prints amounts >= $1 with two decimals and thousands
// separators, sub-dollar amounts with six decimals.
func FormatCurrency(amount float64) string {
	if amount >= 1 {
		return "$" + comma(fmt.Sprintf("%.2f", amount))
	}
	return fmt.Sprintf("$%.6f", amount)
}

// FormatPercentage prints a signed percentage change.
func FormatPercentage(change float64) string {
	if change > 0 {
		return fmt.Sprintf("+%.2f%%", change)
	}
	return fmt.Sprintf("%.2f%%", change)
}

// FormatMarketCap prints market cap in billions or millions.
func FormatMarketCap(cap float64) string {
	switch {
	case cap >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", cap/1_000_000_000)
	case cap >= 1_000_000:
		return fmt.Sprintf("$%.1fM", cap/1_000_000)
	default:
		return "$" + comma(fmt.Sprintf("%.0f", cap))
	}
}

// comma inserts thousands separators into the integer part of a formatted
// decimal string.
func comma(s string) string {
	intPart := s
	fracPart := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, fracPart = s[:i], s[i:]
			break
		}
	}

	n := len(intPart)
	if n <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out) + fracPart
}
