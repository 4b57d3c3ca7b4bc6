package services

import (
	"testing"
	"time"

	"voyago/internal/domain"
	"voyago/internal/domain/models"
	"voyago/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func experienceRow(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT id, title, location, price, currency FROM experiences").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "location", "price", "currency"}).
			AddRow(1, "Rann Safari", "Kutch", 1180.0, "INR"))
}

func storedBookingRow(mock sqlmock.Sqlmock, id int64, number string) {
	mock.ExpectQuery("SELECT id, booking_number, .* FROM bookings WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_number", "experience_id", "activity_id",
			"customer_name", "customer_phone", "customer_email",
			"booking_amount", "total_participants", "booking_date",
			"pickup_location", "slot_start_time", "slot_end_time",
			"status", "created_at",
		}).AddRow(id, number, 1, nil, "Asha Patel", "9898000000", "asha@example.com",
			"2000", 2, "2026-01-18", nil, nil, nil, "confirmed", time.Now()))
}

func TestCreateBookingAllocatesNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	experienceRow(mock)
	mock.ExpectQuery("SELECT booking_number FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"booking_number"}))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(9, 1))
	storedBookingRow(mock, 9, "26011801")

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		CatalogRepo: repositories.CatalogRepository{DB: db},
		DB:          db,
		Numbering: NumberingService{
			Now: func() time.Time { return time.Date(2026, 1, 18, 9, 0, 0, 0, time.Local) },
		},
	}

	created, degraded, err := svc.CreateBooking(models.Booking{
		ExperienceID:      1,
		CustomerName:      "Asha Patel",
		BookingAmount:     "2000",
		TotalParticipants: 2,
		BookingDate:       "2026-01-18",
	})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if degraded {
		t.Fatalf("allocation should not be degraded")
	}
	if created.BookingNumber != "26011801" {
		t.Fatalf("expected booking number 26011801, got %s", created.BookingNumber)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRetriesOnDuplicateNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	experienceRow(mock)

	// First attempt: another writer grabbed 26011803 between read and insert.
	mock.ExpectQuery("SELECT booking_number FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"booking_number"}).AddRow("26011802"))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '26011803'"})

	// Retry: re-read sees the winner and moves past it.
	mock.ExpectQuery("SELECT booking_number FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"booking_number"}).AddRow("26011803"))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(12, 1))
	storedBookingRow(mock, 12, "26011804")

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		CatalogRepo: repositories.CatalogRepository{DB: db},
		DB:          db,
		Numbering: NumberingService{
			Now: func() time.Time { return time.Date(2026, 1, 18, 9, 0, 0, 0, time.Local) },
		},
	}

	created, _, err := svc.CreateBooking(models.Booking{
		ExperienceID: 1,
		CustomerName: "Asha Patel",
	})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if created.BookingNumber != "26011804" {
		t.Fatalf("expected retried number 26011804, got %s", created.BookingNumber)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := BookingService{}

	_, _, err := svc.CreateBooking(models.Booking{ExperienceID: 1})
	if !domain.IsValidation(err) {
		t.Fatalf("missing customer name should fail validation, got %v", err)
	}

	_, _, err = svc.CreateBooking(models.Booking{CustomerName: "Asha"})
	if !domain.IsValidation(err) {
		t.Fatalf("missing experience should fail validation, got %v", err)
	}

	_, _, err = svc.CreateBooking(models.Booking{CustomerName: "Asha", ExperienceID: 1, BookingDate: "18-01-2026"})
	if !domain.IsValidation(err) {
		t.Fatalf("malformed booking date should fail validation, got %v", err)
	}
}
