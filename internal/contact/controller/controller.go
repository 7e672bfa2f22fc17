package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	contacterrors "lumis/internal/contact/errors"
	"lumis/internal/contact/validator"
	"lumis/pkg/logger"
	"lumis/pkg/model"
)

const DefaultAcknowledgeDelay = 5 * time.Second

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldDate    = "date"
	FieldTime    = "time"
	FieldReason  = "reason"
	FieldMessage = "message"
)

type Validator interface {
	Validate(state model.ContactFormState, mode model.FormMode) error
}

// Submitter delivers a validated form to the backend. It must not retry.
type Submitter interface {
	Send(ctx context.Context, state model.ContactFormState, mode model.FormMode) model.SubmissionResult
}

// Snapshot is a consistent copy of a controller for rendering.
type Snapshot struct {
	Mode           model.FormMode         `json:"mode"`
	Phase          Phase                  `json:"phase"`
	Loading        bool                   `json:"loading"`
	Form           model.ContactFormState `json:"form"`
	Date           string                 `json:"date"`
	SuccessMessage string                 `json:"success_message,omitempty"`
}

// Controller owns one visitor's contact form: its fields, its mode and the
// submission workflow idle -> submitting -> submitted -> idle.
type Controller struct {
	mu sync.Mutex

	state         model.ContactFormState
	mode          model.FormMode
	phase         Phase
	loading       bool
	submittedMode model.FormMode
	ackTimer      Timer

	submitter Submitter
	validator Validator
	notifier  Notifier
	clock     Clock
	location  *time.Location
	ackDelay  time.Duration
	log       *logger.Logger
}

type Option func(*Controller)

func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithLocation(loc *time.Location) Option {
	return func(c *Controller) { c.location = loc }
}

func WithAcknowledgeDelay(d time.Duration) Option {
	return func(c *Controller) { c.ackDelay = d }
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// InitialSnapshot is what a form instance that does not exist yet looks
// like: empty, idle, in the default mode.
func InitialSnapshot() Snapshot {
	return Snapshot{
		Mode:  model.ModeAppointment,
		Phase: PhaseIdle,
		Form:  model.ContactFormState{},
	}
}

func New(submitter Submitter, v Validator, notifier Notifier, opts ...Option) *Controller {
	c := &Controller{
		mode:      model.ModeAppointment,
		phase:     PhaseIdle,
		submitter: submitter,
		validator: v,
		notifier:  notifier,
		clock:     SystemClock(),
		location:  time.UTC,
		ackDelay:  DefaultAcknowledgeDelay,
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = NotifierFunc(func(Notification) {})
	}
	return c
}

// Form edits a controller's fields while its lock is held. It is only
// valid inside the function passed to Edit.
type Form struct {
	c *Controller
}

func (f *Form) Mode() model.FormMode {
	return f.c.mode
}

func (f *Form) State() model.ContactFormState {
	return f.c.state.Clone()
}

func (f *Form) SetField(key, value string) error {
	return f.c.setFieldLocked(key, value)
}

func (f *Form) ToggleService(name string) {
	f.c.toggleServiceLocked(name)
}

func (f *Form) SwitchMode(mode model.FormMode) error {
	return f.c.switchModeLocked(mode)
}

// Edit runs fn with exclusive access to the form, provided no submission is
// outstanding. Otherwise fn is not called and ErrSubmissionInFlight or
// ErrAwaitingAcknowledgement is returned. fn should check its input before
// its first mutation; edits made before fn fails are kept.
func (c *Controller) Edit(fn func(f *Form) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.busyLocked(); err != nil {
		return err
	}
	return fn(&Form{c: c})
}

func (c *Controller) busyLocked() error {
	switch {
	case c.loading:
		return contacterrors.ErrSubmissionInFlight
	case c.phase == PhaseSubmitted:
		return contacterrors.ErrAwaitingAcknowledgement
	}
	return nil
}

// SetField stores value under key without validating it. A date must be
// YYYY-MM-DD or empty; an empty date clears it.
func (c *Controller) SetField(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setFieldLocked(key, value)
}

func (c *Controller) setFieldLocked(key, value string) error {
	var date time.Time
	if key == FieldDate && value != "" {
		d, err := time.ParseInLocation(model.DateLayout, value, c.location)
		if err != nil {
			return fmt.Errorf("%w: %q", contacterrors.ErrInvalidDate, value)
		}
		date = d
	}

	switch key {
	case FieldName:
		c.state.Name = value
	case FieldEmail:
		c.state.Email = value
	case FieldPhone:
		c.state.Phone = value
	case FieldDate:
		c.state.Date = date
	case FieldTime:
		c.state.Time = value
	case FieldReason:
		c.state.Reason = value
	case FieldMessage:
		c.state.Message = value
	default:
		return fmt.Errorf("%w: %q", contacterrors.ErrUnknownField, key)
	}
	return nil
}

// ToggleService selects name when absent (appending it) and deselects it
// when present.
func (c *Controller) ToggleService(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toggleServiceLocked(name)
}

func (c *Controller) toggleServiceLocked(name string) {
	if i := slices.Index(c.state.SelectedServices, name); i >= 0 {
		c.state.SelectedServices = slices.Delete(c.state.SelectedServices, i, i+1)
		return
	}
	c.state.SelectedServices = append(c.state.SelectedServices, name)
}

// SwitchMode changes which payload a submit produces. Fields are kept.
func (c *Controller) SwitchMode(mode model.FormMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switchModeLocked(mode)
}

func (c *Controller) switchModeLocked(mode model.FormMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", contacterrors.ErrInvalidMode, mode)
	}
	c.mode = mode
	return nil
}

func (c *Controller) Mode() model.FormMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// State returns a copy of the current fields.
func (c *Controller) State() model.ContactFormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Validate checks the current fields against the current mode.
func (c *Controller) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validator.Validate(c.state, c.mode)
}

// Reset clears every field. The mode is left as it is.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.state = model.ContactFormState{}
}

// Submit validates the form and, when valid, sends it once. Validation
// failures return a *validator.ValidationError and send nothing. The send
// is detached from ctx cancellation so a dropped request cannot abandon it
// halfway.
func (c *Controller) Submit(ctx context.Context) (model.SubmissionResult, error) {
	c.mu.Lock()

	if err := c.busyLocked(); err != nil {
		c.mu.Unlock()
		return model.SubmissionResult{}, err
	}

	if err := c.validator.Validate(c.state, c.mode); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			c.notifier.Notify(Notification{Kind: NotificationError, Title: vErr.Title, Description: vErr.Description})
		}
		c.mu.Unlock()
		return model.SubmissionResult{}, err
	}

	c.loading = true
	c.phase = PhaseSubmitting
	state := c.state.Clone()
	mode := c.mode
	c.mu.Unlock()

	result := c.submitter.Send(context.WithoutCancel(ctx), state, mode)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if !result.Success() {
		c.phase = PhaseIdle
		c.log.Warn("contact submission failed", "mode", mode, "reason", result.Reason, "status", result.StatusCode)
		c.notifier.Notify(Notification{Kind: NotificationError, Title: titleFailed, Description: descriptionFailed})
		return result, nil
	}

	c.phase = PhaseSubmitted
	c.submittedMode = mode
	c.resetLocked()

	title := titleMessageSent
	if mode == model.ModeAppointment {
		title = titleAppointmentSent
	}
	c.notifier.Notify(Notification{Kind: NotificationSuccess, Title: title, Description: descriptionSent})

	c.ackTimer = c.clock.AfterFunc(c.ackDelay, c.acknowledge)
	return result, nil
}

func (c *Controller) acknowledge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseSubmitted {
		c.phase = PhaseIdle
	}
	c.ackTimer = nil
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Mode:    c.mode,
		Phase:   c.phase,
		Loading: c.loading,
		Form:    c.state.Clone(),
		Date:    c.state.DateString(),
	}
	if c.phase == PhaseSubmitted {
		snap.SuccessMessage = panelContact
		if c.submittedMode == model.ModeAppointment {
			snap.SuccessMessage = panelAppointment
		}
	}
	return snap
}

// Close stops the pending acknowledgement timer, if any.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ackTimer != nil {
		c.ackTimer.Stop()
		c.ackTimer = nil
	}
}
