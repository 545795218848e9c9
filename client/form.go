package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"coderfest/models"
)

// Phase is the form's position in the two-step registration flow
type Phase string

const (
	PhaseDetails   Phase = "details"
	PhasePayment   Phase = "payment"
	PhaseConfirmed Phase = "confirmed"
)

// DefaultTeamSize is the preselected number of team members
const DefaultTeamSize = 5

var (
	ErrInvalidTeamSize    = errors.New("team size must be 3, 4 or 5")
	ErrUnknownField       = errors.New("unknown form field")
	ErrStudentOutOfRange  = errors.New("student index out of range")
	ErrNoPaymentProof     = errors.New("payment proof is required")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrAlreadyConfirmed   = errors.New("registration already confirmed")
	ErrWrongPhase         = errors.New("operation not valid in current phase")
)

// ValidationError reports the first missing requirement found by
// ValidateAndAdvance
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormData holds the entered registration fields
type FormData struct {
	TeamName      string
	CollegeName   string
	LeaderName    string
	LeaderEmail   string
	LeaderContact string
	Students      []models.StudentDetail
}

// PaymentProof is the file picked as evidence of fee payment. No size or
// type validation happens here; the picker text is advisory only.
type PaymentProof struct {
	Name        string
	ContentType string
	Data        []byte
}

// Form owns the transient pre-submission draft of one team registration and
// drives the details -> payment -> confirmed flow. All transitions are
// explicit methods on a serializable state; there is no hidden coupling
// between fields. Draft state is discarded with the Form itself.
type Form struct {
	api *Client

	mu         sync.Mutex
	teamSize   int
	data       FormData
	proof      *PaymentProof
	phase      Phase
	submitting bool
	result     RegisterResult
}

// NewForm creates a draft form in the details phase with the default team
// size
func NewForm(api *Client) *Form {
	return &Form{
		api:      api,
		teamSize: DefaultTeamSize,
		data:     FormData{Students: make([]models.StudentDetail, DefaultTeamSize)},
		phase:    PhaseDetails,
	}
}

// TeamSize returns the currently selected number of members
func (f *Form) TeamSize() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.teamSize
}

// Phase returns the form's current phase
func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Data returns a copy of the entered fields, also valid after confirmation
// since the confirmation view shows the submitted data
func (f *Form) Data() FormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := f.data
	data.Students = make([]models.StudentDetail, len(f.data.Students))
	copy(data.Students, f.data.Students)
	return data
}

// Result returns the server acknowledgement once the form is confirmed
func (f *Form) Result() RegisterResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// SetTeamSize resizes the student list to n, preserving already entered
// entries at matching indexes. New slots start empty, shrinking truncates.
func (f *Form) SetTeamSize(n int) error {
	if n < models.MinTeamSize || n > models.MaxTeamSize {
		return ErrInvalidTeamSize
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	students := make([]models.StudentDetail, n)
	copy(students, f.data.Students)
	f.teamSize = n
	f.data.Students = students
	return nil
}

// UpdateField sets one of the team or leader fields. No validation happens
// eagerly; completeness is checked by ValidateAndAdvance.
func (f *Form) UpdateField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "teamName":
		f.data.TeamName = value
	case "collegeName":
		f.data.CollegeName = value
	case "leaderName":
		f.data.LeaderName = value
	case "leaderEmail":
		f.data.LeaderEmail = value
	case "leaderContact":
		f.data.LeaderContact = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// UpdateStudent sets one field of the student at the given index
func (f *Form) UpdateStudent(index int, field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 0 || index >= f.teamSize {
		return ErrStudentOutOfRange
	}
	switch field {
	case "name":
		f.data.Students[index].Name = value
	case "email":
		f.data.Students[index].Email = value
	case "contact":
		f.data.Students[index].Contact = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// ValidateAndAdvance checks that every leader, team and student field is
// filled in and moves the form to the payment phase. On failure it reports
// the first missing requirement and the phase does not change.
func (f *Form) ValidateAndAdvance() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseDetails {
		return ErrWrongPhase
	}
	if f.data.TeamName == "" || f.data.LeaderName == "" || f.data.LeaderEmail == "" ||
		f.data.LeaderContact == "" || f.data.CollegeName == "" {
		return &ValidationError{Message: "Please fill all team leader details"}
	}
	for i := 0; i < f.teamSize; i++ {
		if !f.data.Students[i].Complete() {
			return &ValidationError{Message: fmt.Sprintf("Please fill all details for Student %d", i+1)}
		}
	}

	f.phase = PhasePayment
	return nil
}

// SelectPaymentProof records the picked file
func (f *Form) SelectPaymentProof(name, contentType string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.proof = &PaymentProof{Name: name, ContentType: contentType, Data: data}
}

// Submit sends the registration. Without a payment proof it fails locally
// and no network call is made. On a server rejection the form stays in the
// payment phase so the user can retry; on success it reaches the terminal
// confirmed phase carrying the submitted data. At most one submission is in
// flight at a time.
func (f *Form) Submit(ctx context.Context) (RegisterResult, error) {
	f.mu.Lock()
	if f.phase == PhaseConfirmed {
		f.mu.Unlock()
		return RegisterResult{}, ErrAlreadyConfirmed
	}
	if f.phase != PhasePayment {
		f.mu.Unlock()
		return RegisterResult{}, ErrWrongPhase
	}
	if f.proof == nil {
		f.mu.Unlock()
		return RegisterResult{}, ErrNoPaymentProof
	}
	if f.submitting {
		f.mu.Unlock()
		return RegisterResult{}, ErrSubmissionInFlight
	}
	f.submitting = true

	sub := Submission{
		TeamName:         f.data.TeamName,
		LeaderName:       f.data.LeaderName,
		LeaderEmail:      f.data.LeaderEmail,
		LeaderContact:    f.data.LeaderContact,
		CollegeName:      f.data.CollegeName,
		Students:         make([]models.StudentDetail, f.teamSize),
		ProofName:        f.proof.Name,
		ProofContentType: f.proof.ContentType,
		Proof:            bytes.NewReader(f.proof.Data),
	}
	copy(sub.Students, f.data.Students)
	f.mu.Unlock()

	result, err := f.api.Register(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		// Stay in the payment phase for retry
		return RegisterResult{}, err
	}
	f.phase = PhaseConfirmed
	f.result = result
	return result, nil
}
