package services

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "voyago/internal/config"
	intdb "voyago/internal/db"
	"voyago/internal/domain"
	"voyago/internal/domain/models"
	"voyago/internal/repositories"
	"voyago/internal/utils"
)

// Allocation attempts before giving up on a unique booking number.
const maxAllocateAttempts = 3

type BookingService struct {
	BookingRepo repositories.BookingRepository
	CatalogRepo repositories.CatalogRepository
	DB          *sql.DB
	Numbering   NumberingService
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) catalog() repositories.CatalogRepository {
	if s.CatalogRepo.DB != nil {
		return s.CatalogRepo
	}
	return repositories.CatalogRepository{DB: s.db()}
}

func (s BookingService) numbering() NumberingService {
	n := s.Numbering
	if n.Bookings == nil {
		n.Bookings = s.bookings()
	}
	if n.RequestID == "" {
		n.RequestID = s.RequestID
	}
	return n
}

// CreateBooking validates the input, allocates a booking number and
// inserts the record. A duplicate booking number (two concurrent
// allocations reading the same last number) trips the UNIQUE key and the
// loop re-allocates. The returned bool reports degraded allocation.
func (s BookingService) CreateBooking(b models.Booking) (models.Booking, bool, error) {
	b.CustomerName = utils.NormalizeSpace(b.CustomerName)
	b.CustomerPhone = utils.TrimOrEmpty(b.CustomerPhone)
	b.CustomerEmail = utils.TrimOrEmpty(b.CustomerEmail)
	b.BookingAmount = utils.TrimOrEmpty(b.BookingAmount)
	b.BookingDate = utils.TrimOrEmpty(b.BookingDate)
	if b.Status == "" {
		b.Status = "confirmed"
	}

	if b.CustomerName == "" {
		return models.Booking{}, false, domain.ValidationError{Field: "customer_name", Msg: "required"}
	}
	if b.ExperienceID <= 0 {
		return models.Booking{}, false, domain.ValidationError{Field: "experience_id", Msg: "required"}
	}
	if b.BookingDate != "" {
		if _, err := utils.ParseDate(b.BookingDate); err != nil {
			return models.Booking{}, false, domain.ValidationError{Field: "booking_date", Msg: "expected YYYY-MM-DD", Err: err}
		}
	}

	if _, found, err := s.catalog().GetExperienceByID(b.ExperienceID); err != nil {
		return models.Booking{}, false, domain.InternalError{Err: err}
	} else if !found {
		return models.Booking{}, false, domain.NotFoundError{Resource: "experience"}
	}
	if b.ActivityID != nil {
		act, found, err := s.catalog().GetActivityByID(*b.ActivityID)
		if err != nil {
			return models.Booking{}, false, domain.InternalError{Err: err}
		}
		if !found {
			return models.Booking{}, false, domain.NotFoundError{Resource: "activity"}
		}
		if act.ExperienceID != b.ExperienceID {
			return models.Booking{}, false, domain.ValidationError{Field: "activity_id", Msg: "activity does not belong to experience"}
		}
	}

	numbering := s.numbering()
	var lastErr error
	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		alloc := numbering.Allocate()
		b.BookingNumber = alloc.Number

		created, err := s.bookings().Insert(b)
		if err == nil {
			utils.LogEvent(s.RequestID, "booking", "create",
				fmt.Sprintf("id=%d number=%s degraded=%t", created.ID, created.BookingNumber, alloc.Degraded))
			return created, alloc.Degraded, nil
		}
		if intdb.IsDuplicateEntry(err) {
			lastErr = err
			continue
		}
		return models.Booking{}, false, domain.InternalError{Err: err}
	}
	return models.Booking{}, false, domain.ConflictError{
		Resource: "booking_number",
		Msg:      "could not allocate a unique booking number",
		Err:      lastErr,
	}
}

// GetBooking loads one booking by ID.
func (s BookingService) GetBooking(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	b, err := s.bookings().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}
