// Package mailer sends the booking notification emails: a confirmation to
// the customer and an alert to the restaurant. Delivery is best-effort and
// always happens off the request path; failures are logged, never surfaced
// to the customer.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config SMTP delivery settings
type Config struct {
	Host     string // empty host disables delivery
	Port     int
	Username string
	Password string
	From     string

	RestaurantName    string
	RestaurantAddress string
}

// Client SMTP mail client
type Client struct {
	cfg    Config
	logger Logger

	// send is swappable in tests; defaults to smtp.SendMail
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewClient creates a mail client
func NewClient(cfg Config, logger Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Enabled returns true when SMTP delivery is configured
func (c *Client) Enabled() bool {
	return c.cfg.Host != ""
}

// SendBookingNotifications sends the customer confirmation and the
// restaurant notification for an accepted booking. Each send failure is
// logged independently; one failing does not stop the other.
func (c *Client) SendBookingNotifications(b *domain.Booking, restaurantEmail string) {
	if !c.Enabled() {
		c.logger.Warn("SendBookingNotifications: smtp not configured, emails not sent for booking id=%d", b.ID)
		return
	}

	when := fmt.Sprintf("%s · ore %s", b.BookingDate.Format("02/01/2006"), b.StartTime)
	meal := mealLabel(b.MealType)

	data := emailData{
		RestaurantName: c.cfg.RestaurantName,
		Address:        c.cfg.RestaurantAddress,
		CustomerName:   b.CustomerName,
		When:           when,
		Meal:           meal,
		Guests:         b.Guests,
		Phone:          b.CustomerPhone,
		Email:          b.CustomerEmail,
	}
	if b.Notes != nil {
		data.Notes = *b.Notes
	}

	customer := data
	customer.Title = "Prenotazione Ricevuta"
	customer.Intro = fmt.Sprintf("Grazie per aver scelto %s. La tua richiesta di prenotazione è stata ricevuta con successo.", c.cfg.RestaurantName)
	customer.Extra = "Per qualsiasi modifica o annullamento, contattaci rispondendo a questa email o telefonando al ristorante."

	if err := c.sendOne(b.CustomerEmail, fmt.Sprintf("Conferma prenotazione - %s", c.cfg.RestaurantName), customer); err != nil {
		c.logger.Error("SendBookingNotifications: customer email failed for booking id=%d: %v", b.ID, err)
	} else {
		c.logger.Info("SendBookingNotifications: customer email sent for booking id=%d", b.ID)
	}

	restaurant := data
	restaurant.Title = "Nuova Prenotazione Ricevuta"
	restaurant.Intro = "È stata ricevuta una nuova richiesta di prenotazione. Verifica i dettagli qui sotto."

	if err := c.sendOne(restaurantEmail, fmt.Sprintf("Nuova prenotazione - %s", b.CustomerName), restaurant); err != nil {
		c.logger.Error("SendBookingNotifications: restaurant email failed for booking id=%d: %v", b.ID, err)
	} else {
		c.logger.Info("SendBookingNotifications: restaurant email sent for booking id=%d", b.ID)
	}
}

// sendOne renders and submits a single email
func (c *Client) sendOne(to, subject string, data emailData) error {
	if to == "" {
		return fmt.Errorf("%w: empty recipient", ErrSendFailed)
	}

	body, err := renderEmail(data)
	if err != nil {
		return err
	}

	var msg strings.Builder
	msg.WriteString("From: " + c.cfg.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	var auth smtp.Auth
	if c.cfg.Username != "" {
		auth = smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	}

	if err := c.send(addr, auth, c.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

func mealLabel(meal domain.MealType) string {
	switch meal {
	case domain.MealLunch:
		return "Pranzo"
	case domain.MealDinner:
		return "Cena"
	default:
		return string(meal)
	}
}
