package campaigns

// Template es una campaña predefinida. {owner_name} y {pet_name} los reemplaza el backend.
type Template struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	DefaultMessage string   `json:"default_message"`
	Target         Audience `json:"target"`
}

var builtinTemplates = []Template{
	{
		ID:             "deworming",
		Name:           "Deworming Reminder",
		Description:    "Remind pet owners about regular deworming schedules",
		DefaultMessage: "Hi {owner_name}! It's time for {pet_name}'s deworming treatment. Regular deworming protects your pet from internal parasites and keeps them healthy. Book your appointment today!",
		Target:         AudienceAll,
	},
	{
		ID:             "wellness",
		Name:           "Wellness Check-up",
		Description:    "Annual wellness examination reminders",
		DefaultMessage: "Hello {owner_name}! {pet_name} is due for their annual wellness check-up. Regular exams help detect health issues early. Schedule their visit today!",
		Target:         AudienceAll,
	},
	{
		ID:             "rabies",
		Name:           "Rabies Vaccination",
		Description:    "Critical rabies vaccine reminders",
		DefaultMessage: "Important! {pet_name}'s rabies vaccination is due. Rabies vaccination is required by law and protects both your pet and family. Book now at Kizuna Vet!",
		Target:         AudienceAll,
	},
	{
		ID:             "dhlpp",
		Name:           "DHLPP Vaccination",
		Description:    "Distemper, Hepatitis, Leptospirosis, Parvo & Parainfluenza",
		DefaultMessage: "Hi {owner_name}! {pet_name} is due for their DHLPP vaccine (Distemper, Hepatitis, Leptospirosis, Parvo & Parainfluenza). This essential vaccine keeps dogs protected. Schedule today!",
		Target:         AudienceDogs,
	},
	{
		ID:             "feline",
		Name:           "Feline Vaccination",
		Description:    "FVRCP and FeLV vaccines for cats",
		DefaultMessage: "Hello {owner_name}! {pet_name} is due for their feline vaccination (FVRCP/FeLV). Keep your kitty protected from common diseases. Book their appointment!",
		Target:         AudienceCats,
	},
	{
		ID:             "new-month",
		Name:           "Happy New Month",
		Description:    "Monthly greetings to build client relationships",
		DefaultMessage: "Happy New Month, {owner_name}! Wishing you and {pet_name} a wonderful month ahead filled with health and happiness! From all of us at Kizuna Vet Center",
		Target:         AudienceAll,
	},
}

// Templates devuelve una copia de las plantillas predefinidas.
func Templates() []Template {
	out := make([]Template, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}

func TemplateByID(id string) (Template, bool) {
	for _, t := range builtinTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
