package model

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format the backend expects.
const DateLayout = "2006-01-02"

type FormMode string

const (
	ModeAppointment FormMode = "appointment"
	ModeContact     FormMode = "contact"
)

func ParseFormMode(s string) (FormMode, error) {
	switch FormMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAppointment:
		return ModeAppointment, nil
	case ModeContact:
		return ModeContact, nil
	default:
		return "", fmt.Errorf("unknown form mode %q", s)
	}
}

func (m FormMode) Valid() bool {
	return m == ModeAppointment || m == ModeContact
}

// Endpoint is the backend path a payload of this mode is posted to.
func (m FormMode) Endpoint() string {
	if m == ModeAppointment {
		return "/api/appointments"
	}
	return "/api/contact"
}

// ContactFormState is the editable content of one contact form. The zero
// value is the empty form; a zero Date means no date was picked.
type ContactFormState struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Date             time.Time `json:"-"`
	Time             string    `json:"time"`
	SelectedServices []string  `json:"selected_services"`
	Reason           string    `json:"reason"`
	Message          string    `json:"message"`
}

func (s ContactFormState) HasDate() bool {
	return !s.Date.IsZero()
}

// DateString renders Date as YYYY-MM-DD, or "" when unset.
func (s ContactFormState) DateString() string {
	if !s.HasDate() {
		return ""
	}
	return s.Date.Format(DateLayout)
}

func (s ContactFormState) IsSelected(service string) bool {
	return slices.Contains(s.SelectedServices, service)
}

// Clone returns a copy that shares no memory with s.
func (s ContactFormState) Clone() ContactFormState {
	out := s
	out.SelectedServices = slices.Clone(s.SelectedServices)
	return out
}

type Payload interface {
	Mode() FormMode
}

type AppointmentPayload struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    *string  `json:"phone"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Services []string `json:"services"`
	Reason   *string  `json:"reason"`
	Message  *string  `json:"message"`
}

func (AppointmentPayload) Mode() FormMode { return ModeAppointment }

type ContactPayload struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    *string  `json:"phone"`
	Services []string `json:"services"`
	Reason   *string  `json:"reason"`
	Message  string   `json:"message"`
}

func (ContactPayload) Mode() FormMode { return ModeContact }

type SubmissionOutcome string

const (
	OutcomeSuccess SubmissionOutcome = "success"
	OutcomeFailure SubmissionOutcome = "failure"
)

type SubmissionResult struct {
	Outcome    SubmissionOutcome `json:"outcome"`
	Reason     string            `json:"reason,omitempty"`
	StatusCode int               `json:"status_code,omitempty"`
}

func Succeeded(statusCode int) SubmissionResult {
	return SubmissionResult{Outcome: OutcomeSuccess, StatusCode: statusCode}
}

func Failed(reason string, statusCode int) SubmissionResult {
	return SubmissionResult{Outcome: OutcomeFailure, Reason: reason, StatusCode: statusCode}
}

func (r SubmissionResult) Success() bool {
	return r.Outcome == OutcomeSuccess
}
