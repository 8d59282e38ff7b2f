package campaigns

// Audience es el segmento de pacientes al que apunta una campaña.
type Audience string

const (
	AudienceAll          Audience = "All Patients"
	AudienceDogs         Audience = "Dogs Only"
	AudienceCats         Audience = "Cats Only"
	AudienceOverdue      Audience = "Overdue Patients"
	AudienceDueThisMonth Audience = "Due This Month"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudienceDogs, AudienceCats, AudienceOverdue, AudienceDueThisMonth:
		return true
	}
	return false
}

// Campaign es de solo lectura para el dashboard una vez creada.
type Campaign struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Message        string   `json:"message"`
	TargetAudience Audience `json:"target_audience"`
	Status         string   `json:"status"`
	SentCount      int      `json:"sent_count"`
	CreatedAt      string   `json:"created_at,omitempty"`
}

// Draft es un mensaje propuesto por la IA que espera aprobación.
// Desaparece del listado una vez procesado.
type Draft struct {
	ID           string `json:"id"`
	PetID        string `json:"pet_id"`
	Type         string `json:"type"`
	DraftMessage string `json:"draft_message"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at,omitempty"`

	PetName    string `json:"pet_name"`
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
}

// CreateRequest es el cuerpo de POST /campaigns del backend.
type CreateRequest struct {
	Name    string   `json:"name"`
	Message string   `json:"message"`
	Target  Audience `json:"target"`
}

type CreateResult struct {
	Status        string `json:"status"`
	CampaignID    string `json:"campaign_id"`
	DraftsCreated int    `json:"drafts_created"`
}

// Decision es el cuerpo de POST /agent/process-draft.
type Decision struct {
	DraftID  string `json:"draftId"`
	Approved bool   `json:"approved"`
	Message  string `json:"message"`
}
