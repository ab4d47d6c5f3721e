package whatsapp

import (
	"fmt"
	"strings"

	"github.com/tehimas/warung-seblak/composer"
	"github.com/tehimas/warung-seblak/utils"
)

// FormatSubmission memilih format pesan sesuai jenis pesanan.
func FormatSubmission(sub *composer.Submission) string {
	if sub.Customized() {
		return FormatParasmananSummary(sub)
	}
	return FormatCartSummary(sub)
}

// FormatCartSummary membuat ringkasan pesanan dari daftar menu biasa:
// satu baris "nama x qty = harga" per item, lalu total dan nomor pemesan.
func FormatCartSummary(sub *composer.Submission) string {
	var lines []string
	for _, line := range sub.Lines {
		lines = append(lines, fmt.Sprintf("%s x%d = %s",
			line.Item.Name, line.Quantity,
			utils.FormatRupiah(line.Item.Price*float64(line.Quantity))))
	}

	return fmt.Sprintf("Halo, saya %s ingin memesan:\n\n%s\n\nTotal: %s\n\nNomor WhatsApp: %s",
		sub.CustomerName,
		strings.Join(lines, "\n"),
		utils.FormatRupiah(sub.Total),
		sub.CustomerPhone)
}

// FormatParasmananSummary membuat ringkasan pesanan parasmanan lengkap
// dengan variasi, topping, dan spesifikasi kustomisasi.
func FormatParasmananSummary(sub *composer.Submission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Halo, saya %s ingin memesan Seblak Parasmanan:\n\n", sub.CustomerName)

	b.WriteString("🍜 *DETAIL PESANAN:*\n")
	if sub.Variation != nil {
		fmt.Fprintf(&b, "• %s - %s\n", sub.Variation.Name, utils.FormatRupiah(sub.Variation.Price))
	}

	if len(sub.Toppings) > 0 {
		b.WriteString("\n🥘 *TOPPING TAMBAHAN:*\n")
		for _, t := range sub.Toppings {
			fmt.Fprintf(&b, "• %s x%d - %s\n",
				t.Topping.Name, t.Quantity,
				utils.FormatRupiah(t.Topping.Price*float64(t.Quantity)))
		}
	}

	b.WriteString("\n🌶️ *SPESIFIKASI:*\n")
	fmt.Fprintf(&b, "• Level Pedas: %d/5\n", sub.SpiceLevel)
	fmt.Fprintf(&b, "• Penyajian: %s\n", sub.ServingStyle)
	fmt.Fprintf(&b, "• Cara Makan: %s\n", sub.EatingStyle)
	if len(sub.Vegetables) > 0 {
		fmt.Fprintf(&b, "• Sayuran: %s\n", strings.Join(sub.Vegetables, ", "))
	}
	if len(sub.Flavors) > 0 {
		fmt.Fprintf(&b, "• Rasa: %s\n", strings.Join(sub.Flavors, ", "))
	}
	if sub.Notes != "" {
		fmt.Fprintf(&b, "• Catatan: %s\n", sub.Notes)
	}

	fmt.Fprintf(&b, "\n💰 *TOTAL: %s*\n\n", utils.FormatRupiah(sub.Total))
	fmt.Fprintf(&b, "📞 WhatsApp: %s", sub.CustomerPhone)

	return b.String()
}
