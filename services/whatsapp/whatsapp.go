// Package whatsapp membangun ringkasan pesanan dan deep link wa.me.
// Hand-off ke WhatsApp adalah jalur pengiriman pesanan yang utama;
// penyimpanan database hanya best-effort.
package whatsapp

import (
	"net/url"
	"strings"
)

type Service struct {
	// Nomor tujuan warung, format internasional tanpa plus (628...).
	destPhone string
	relay     *RelayClient
}

// NewService membuat service hand-off. relay boleh nil; tanpa relay,
// pesan hanya dikirim lewat deep link yang dibuka browser pelanggan.
func NewService(destPhone string, relay *RelayClient) *Service {
	return &Service{
		destPhone: NormalizePhone(destPhone),
		relay:     relay,
	}
}

func (s *Service) DestPhone() string {
	return s.destPhone
}

// DeepLink membuat URL wa.me dengan teks pesan ter-encode.
func (s *Service) DeepLink(text string) string {
	return "https://wa.me/" + s.destPhone + "?text=" + url.QueryEscape(text)
}

// Push mengirim pesan lewat relay bila dikonfigurasi. Fire-and-forget:
// error dikembalikan untuk dicatat, tidak pernah menggagalkan checkout.
func (s *Service) Push(text string) error {
	if s.relay == nil {
		return nil
	}
	return s.relay.Send(s.destPhone, text)
}

// NormalizePhone mengubah nomor lokal 08xxx ke format internasional 628xxx
// dan membuang karakter non-digit.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, "08") {
		return "62" + digits[1:]
	}
	return digits
}
