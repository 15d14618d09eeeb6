package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Settings keys in the key-value settings table.
// All operator-controlled state lives in the same (key, value) table and is
// distinguished only by key name.
const (
	SettingBookingsEnabled   = "bookings_enabled"
	SettingClosedMessage     = "bookings_closed_message"
	SettingNotificationEmail = "notification_email"
)

// Business validation constants
const (
	MinGuests          = 1
	MaxGuests          = 20
	MaxNotesLength     = 500
	MaxNameLength      = 120
	MaxClosedMsgLength = 500
)

// DefaultClosedMessage shown to customers when intake is disabled and the
// operator never stored a custom message
const DefaultClosedMessage = "Le prenotazioni sono momentaneamente sospese"

// EventClosedMessage shown once the hard temporal cutoff has passed.
// Fixed: the operator toggle cannot override it.
const EventClosedMessage = "Le prenotazioni sono chiuse"
