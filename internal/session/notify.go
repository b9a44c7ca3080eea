package session

// Variant is the visual weight of a notification.
type Variant string

// Notification variants.
const (
	VariantDefault     Variant = ""
	VariantDestructive Variant = "destructive"
)

// Notification is a transient user-visible message.
type Notification struct {
	Variant     Variant
	Title       string
	Description string
}

// Notifier shows notifications to the user.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f.
func (f NotifierFunc) Notify(n Notification) { f(n) }
