package utils

import "fmt"

// FormatCurrencyIDR memformat nominal rupiah bulat dengan pemisah ribuan.
// Contoh: 15000 -> "Rp15.000"
func FormatCurrencyIDR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := ""
	for amount >= 1000 {
		formatted = fmt.Sprintf(".%03d%s", amount%1000, formatted)
		amount /= 1000
	}
	formatted = fmt.Sprintf("%d%s", amount, formatted)

	if negative {
		return "-Rp" + formatted
	}
	return "Rp" + formatted
}
