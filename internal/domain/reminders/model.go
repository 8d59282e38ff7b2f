package reminders

import "time"

// Reminder registra un envío confirmado. Inmutable una vez creado.
// PetID es referencia débil; PetName es la foto al momento del envío.
type Reminder struct {
	ID      string    `json:"id"`
	PetID   string    `json:"petId"`
	PetName string    `json:"petName"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
	Status  Status    `json:"status"`
	Type    Type      `json:"type"`
}

// GenerateRequest es el cuerpo de POST /reminders/generate.
type GenerateRequest struct {
	PetName    string `json:"petName"`
	OwnerName  string `json:"ownerName"`
	ClinicName string `json:"clinicName"`
	Type       Type   `json:"type"`
	BookingURL string `json:"bookingUrl"`
	Tone       string `json:"tone"`
}

// SendRequest es el cuerpo de POST /reminders/send.
type SendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
	PetID   string `json:"petId"`
}
