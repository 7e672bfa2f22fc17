package errors

import "errors"

var (
	ErrSubmissionInFlight = errors.New("a submission is already in progress")

	ErrAwaitingAcknowledgement = errors.New("the previous submission is still being acknowledged")

	ErrUnknownField = errors.New("unknown form field")

	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

	ErrInvalidMode = errors.New("form mode must be appointment or contact")
)
