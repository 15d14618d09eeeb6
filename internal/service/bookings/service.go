package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/torridellacqua/TDA-ReservationService/internal/infra/storage/booking"
	"github.com/torridellacqua/TDA-ReservationService/internal/service/bookings/models"
)

// Service operator-facing reservation record management
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the bookings service
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List returns every reservation record, newest first
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete removes a reservation record
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted booking id=%d", id)
	return nil
}
