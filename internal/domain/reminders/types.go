package reminders

import "kizuna-dashboard/internal/domain/pets"

// Status lo cambia solo el backend; el dashboard crea siempre "sent".
type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
	StatusConverted Status = "converted"
)

type Type string

const (
	TypeVaccination Type = "vaccination"
	TypeCheckup     Type = "checkup"
	TypeBirthday    Type = "birthday"
	TypeAnniversary Type = "anniversary"
)

// Classify: Overdue => vaccination, cualquier otro estado => checkup.
func Classify(s pets.Status) Type {
	if s == pets.StatusOverdue {
		return TypeVaccination
	}
	return TypeCheckup
}
