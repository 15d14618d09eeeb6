package mailer

import (
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/pkg/ptr"
	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestClient(cfg Config) (*Client, *[]sentMail) {
	client := NewClient(cfg, nopLogger{})
	var sent []sentMail
	client.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
	return client, &sent
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:            7,
		CustomerName:  "Giulia Bianchi",
		CustomerEmail: "giulia@example.com",
		CustomerPhone: "+39 333 1234567",
		BookingDate:   time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		MealType:      domain.MealDinner,
		StartTime:     types.TimeString("19:30"),
		Guests:        2,
		Notes:         ptr.Ptr("tavolo vicino alla finestra"),
	}
}

func TestClient_SendBookingNotifications(t *testing.T) {
	client, sent := newTestClient(Config{
		Host:           "smtp.example.com",
		Port:           587,
		From:           "prenotazioni@example.com",
		RestaurantName: "Torri dell'Acqua",
	})

	client.SendBookingNotifications(testBooking(), "info@example.com")

	require.Len(t, *sent, 2)

	customer := (*sent)[0]
	assert.Equal(t, "smtp.example.com:587", customer.addr)
	assert.Equal(t, []string{"giulia@example.com"}, customer.to)
	assert.Contains(t, customer.msg, "Subject: Conferma prenotazione - Torri dell'Acqua")
	assert.Contains(t, customer.msg, "14/02/2026")
	assert.Contains(t, customer.msg, "19:30")
	assert.Contains(t, customer.msg, "Cena")
	assert.Contains(t, customer.msg, "tavolo vicino alla finestra")

	restaurant := (*sent)[1]
	assert.Equal(t, []string{"info@example.com"}, restaurant.to)
	assert.Contains(t, restaurant.msg, "Subject: Nuova prenotazione - Giulia Bianchi")
}

func TestClient_CustomerFailureStillNotifiesRestaurant(t *testing.T) {
	client := NewClient(Config{
		Host: "smtp.example.com",
		Port: 587,
		From: "prenotazioni@example.com",
	}, nopLogger{})

	var recipients [][]string
	client.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		recipients = append(recipients, to)
		if len(recipients) == 1 {
			return errors.New("mailbox unavailable")
		}
		return nil
	}

	client.SendBookingNotifications(testBooking(), "info@example.com")

	// The customer send failed but the restaurant one was still attempted
	require.Len(t, recipients, 2)
	assert.Equal(t, []string{"info@example.com"}, recipients[1])
}

func TestClient_DisabledWithoutHost(t *testing.T) {
	client, sent := newTestClient(Config{})

	assert.False(t, client.Enabled())

	client.SendBookingNotifications(testBooking(), "info@example.com")
	assert.Empty(t, *sent)
}

func TestRenderEmail_OmitsEmptyNotes(t *testing.T) {
	body, err := renderEmail(emailData{
		Title:          "Prenotazione Ricevuta",
		RestaurantName: "Torri dell'Acqua",
		CustomerName:   "Marco",
		Guests:         4,
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Prenotazione Ricevuta")
	assert.NotContains(t, body, "Note:")
}
