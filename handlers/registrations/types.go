package registrations

// Error message constants
const (
	ErrMissingFields      = "Missing required fields"
	ErrInvalidStudents    = "Invalid students data"
	ErrInvalidTeamSize    = "Team size must be between 3 and 5 members"
	ErrIncompleteStudent  = "All student details must be filled in"
	ErrInvalidLeaderEmail = "Invalid team leader email address"
	ErrUploadFailed       = "Failed to upload payment proof"
	ErrStoreFailed        = "Failed to store registration data"
	ErrFetchFailed        = "Failed to fetch registrations"
	ErrExportFailed       = "Failed to export registrations"
	ErrUnsupportedFormat  = "Unsupported export format"
)

// RegisterResponse is the success payload of the submission endpoint
type RegisterResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID string `json:"registrationId"`
}
