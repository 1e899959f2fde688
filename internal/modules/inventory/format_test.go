package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{9.5, "$", "$9.50"},
		{0, "€", "€0.00"},
		{1234567.891, "$", "$1234567.89"},
		{23.5882, "K", "K23.59"},
		{-3, "$", "$-3.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMoney(tt.amount, tt.currency))
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "18", FormatNumber(18))
	assert.Equal(t, "7.5", FormatNumber(7.5))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Tom&#39;s &amp; &#34;Co&#34;&lt;/b&gt;", EscapeHTML(`<b>Tom's & "Co"</b>`))
	assert.Equal(t, "plain text", EscapeHTML("plain text"))
	assert.Equal(t, "", EscapeHTML(""))
}
