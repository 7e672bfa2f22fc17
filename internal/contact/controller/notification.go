package controller

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient toast shown to the visitor.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

const (
	titleAppointmentSent = "Appointment requested successfully!"
	titleMessageSent     = "Message sent successfully!"
	descriptionSent      = "We'll get back to you within 24 hours."

	titleFailed       = "Something went wrong"
	descriptionFailed = "Please try again or contact us directly."

	panelAppointment = "Your appointment request has been received. We'll confirm shortly."
	panelContact     = "Your message has been sent. We'll get back to you soon."
)
