package models

// Team size limits enforced on both the form and the submission endpoint
const (
	MinTeamSize = 3
	MaxTeamSize = 5
)

// StatusConfirmed is the only lifecycle state a registration ever has
const StatusConfirmed = "confirmed"

// StudentDetail holds one team member's details
type StudentDetail struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// Registration is one team's accepted submission. Records are immutable once
// stored: no edit or cancel operation exists anywhere in the system.
type Registration struct {
	RegistrationID  string          `json:"registrationId"`
	TeamName        string          `json:"teamName"`
	LeaderName      string          `json:"leaderName"`
	LeaderEmail     string          `json:"leaderEmail"`
	LeaderContact   string          `json:"leaderContact"`
	CollegeName     string          `json:"collegeName"`
	Students        []StudentDetail `json:"students"`
	PaymentProofURL string          `json:"paymentProofUrl"`
	RegisteredAt    string          `json:"registeredAt"`
	Status          string          `json:"status"`
}

// Complete reports whether every field of the student is filled in
func (s StudentDetail) Complete() bool {
	return s.Name != "" && s.Email != "" && s.Contact != ""
}
