package pets

// Status es informativo: lo define el backend o el usuario, nunca se deriva de las fechas.
// @Enum Up-to-date, Due Soon, Overdue, Healthy
type Status string

const (
	StatusUpToDate Status = "Up-to-date"
	StatusDueSoon  Status = "Due Soon"
	StatusOverdue  Status = "Overdue"
	StatusHealthy  Status = "Healthy"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpToDate, StatusDueSoon, StatusOverdue, StatusHealthy:
		return true
	}
	return false
}

const (
	DefaultSpecies = "Dog"
	DefaultSex     = "Male"
	DefaultStatus  = StatusHealthy
)

// Pet es la copia canónica que devuelve el backend. Las fechas son YYYY-MM-DD o null.
type Pet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`
	Sex     string `json:"sex,omitempty"`
	Color   string `json:"color,omitempty"`
	Age     string `json:"age,omitempty"`
	Weight  string `json:"weight,omitempty"`

	Birthday *string `json:"birthday,omitempty"`

	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`

	LastVaccinationDate *string `json:"lastVaccinationDate"`
	NextVaccinationDate *string `json:"nextVaccinationDate"`
	LastDewormingDate   *string `json:"lastDewormingDate"`
	LastCheckupDate     *string `json:"lastCheckupDate"`

	Status Status `json:"status"`
}

// NewPet es el cuerpo que se envía al backend para dar de alta una mascota.
type NewPet struct {
	Name       string `json:"name"`
	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	Species    string `json:"species"`
	Breed      string `json:"breed,omitempty"`
	Sex        string `json:"sex,omitempty"`
	Color      string `json:"color,omitempty"`
	Age        string `json:"age,omitempty"`
	Weight     string `json:"weight,omitempty"`
	Status     Status `json:"status"`

	LastVaccinationDate string `json:"lastVaccinationDate,omitempty"`
	NextVaccinationDate string `json:"nextVaccinationDate,omitempty"`
	LastDewormingDate   string `json:"lastDewormingDate,omitempty"`
	LastCheckupDate     string `json:"lastCheckupDate,omitempty"`
}
