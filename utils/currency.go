package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatRupiah memformat harga ke format Rupiah tanpa desimal.
// Contoh: 15000 -> "Rp 15.000". Semua harga di warung adalah rupiah bulat.
func FormatRupiah(amount float64) string {
	n := int64(math.Round(amount))
	negative := n < 0
	if negative {
		n = -n
	}

	digits := fmt.Sprintf("%d", n)

	// Sisipkan pemisah ribuan dari belakang
	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	formatted := strings.Join(groups, ".")
	if negative {
		return "Rp -" + formatted
	}
	return "Rp " + formatted
}
