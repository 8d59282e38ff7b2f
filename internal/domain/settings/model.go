package settings

import "strings"

// Tone define el tono con el que la IA redacta los recordatorios.
// @Enum friendly, professional, urgent
type Tone string

const (
	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneUrgent       Tone = "urgent"
)

func (t Tone) Valid() bool {
	switch t {
	case ToneFriendly, ToneProfessional, ToneUrgent:
		return true
	}
	return false
}

const (
	DefaultClinicName     = "Kizuna Vet Center"
	DefaultBookingURL     = "https://book.vet/kizuna"
	DefaultWhatsAppNumber = "2348000000000"
	DefaultTone           = ToneFriendly
)

// Settings es la configuración de la clínica activa. Se guarda siempre completa.
type Settings struct {
	ClinicName     string `json:"clinic_name"`
	BookingURL     string `json:"booking_url"`
	WhatsAppNumber string `json:"whatsapp_number"`
	AITone         Tone   `json:"ai_tone"`

	// Credenciales de terceros: opacas para el dashboard.
	KapsoAPIKey   string `json:"kapso_api_key"`
	KapsoPhoneID  string `json:"kapso_phone_id"`
	TelegramToken string `json:"telegram_token"`
}

// WithDefaults completa los campos vacíos con los valores documentados.
func (s Settings) WithDefaults() Settings {
	if strings.TrimSpace(s.ClinicName) == "" {
		s.ClinicName = DefaultClinicName
	}
	if strings.TrimSpace(s.BookingURL) == "" {
		s.BookingURL = DefaultBookingURL
	}
	if strings.TrimSpace(s.WhatsAppNumber) == "" {
		s.WhatsAppNumber = DefaultWhatsAppNumber
	}
	if strings.TrimSpace(string(s.AITone)) == "" {
		s.AITone = DefaultTone
	}
	return s
}
