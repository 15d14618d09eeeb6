package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
)

// ViewPinHeader operator authentication header
const ViewPinHeader = "X-View-Pin"

const msgUnauthorized = "non autorizzato"

// Auth guards operator endpoints behind the shared view PIN. An empty
// configured PIN disables operator access entirely rather than opening it.
func Auth(expectedPin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pin := r.Header.Get(ViewPinHeader)

			if expectedPin == "" || subtle.ConstantTimeCompare([]byte(pin), []byte(expectedPin)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
