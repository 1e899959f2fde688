package inventory

import (
	"html"
	"strconv"
)

// FormatMoney renders amount with two decimals directly after the currency
// symbol, without grouping: FormatMoney(9.5, "$") == "$9.50".
func FormatMoney(amount float64, currency string) string {
	return currency + strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatNumber renders v in its shortest decimal form (18, 7.5).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EscapeHTML neutralizes &, <, >, " and ' so text can be embedded in markup.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}
