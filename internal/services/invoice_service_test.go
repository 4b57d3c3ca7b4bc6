package services

import (
	"errors"
	"testing"
	"time"

	"voyago/internal/domain"
	"voyago/internal/domain/models"
	"voyago/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateInvoiceNumberAndDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(5, 1))

	svc := InvoiceService{
		InvoiceRepo: repositories.InvoiceRepository{DB: db},
		DB:          db,
		Clock: func() time.Time {
			return time.Date(2026, 1, 18, 14, 0, 0, 0, time.Local)
		},
	}

	booking := models.Booking{
		ID:                7,
		BookingNumber:     "26011802",
		CustomerName:      "Asha Patel",
		CustomerPhone:     "9898000000",
		BookingAmount:     "2000",
		TotalParticipants: 2,
		BookingDate:       "2026-01-18",
		SlotStartTime:     "10:00",
		SlotEndTime:       "12:00",
	}
	exp := &models.Experience{Title: "Rann Safari", Location: "Kutch", Price: priceOf(1180)}
	vendor := &models.VendorProfile{FirstName: "Kiran", LastName: "Shah", CompanyName: "Desert Trails LLP", GSTNumber: "24AAAAA0000A1Z5"}

	inv, err := svc.CreateInvoice(booking.ID, booking.BookingNumber, booking, exp, nil, vendor)
	if err != nil {
		t.Fatalf("CreateInvoice returned error: %v", err)
	}

	if inv.InvoiceNumber != "INV-26011802-20260118" {
		t.Fatalf("wrong invoice number: %s", inv.InvoiceNumber)
	}
	if inv.ID != 5 {
		t.Fatalf("expected stored id 5, got %d", inv.ID)
	}
	if inv.HSNCode != "999799" {
		t.Fatalf("wrong hsn code: %s", inv.HSNCode)
	}
	if inv.Currency != "INR" {
		t.Fatalf("currency should default to INR, got %s", inv.Currency)
	}
	if inv.PlaceOfSupply != "Gujarat" {
		t.Fatalf("place of supply should default to Gujarat, got %s", inv.PlaceOfSupply)
	}
	if inv.VendorName != "Kiran Shah" {
		t.Fatalf("vendor name not joined: %q", inv.VendorName)
	}
	if inv.DateTime != "2026-01-18 10:00 - 12:00" {
		t.Fatalf("wrong date/time line: %q", inv.DateTime)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateInvoiceVendorStateWins(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := InvoiceService{InvoiceRepo: repositories.InvoiceRepository{DB: db}, DB: db}
	vendor := &models.VendorProfile{State: "Maharashtra"}

	inv, err := svc.CreateInvoice(1, "26011801", models.Booking{}, nil, nil, vendor)
	if err != nil {
		t.Fatalf("CreateInvoice returned error: %v", err)
	}
	if inv.PlaceOfSupply != "Maharashtra" {
		t.Fatalf("vendor state should win, got %s", inv.PlaceOfSupply)
	}
}

func TestCreateInvoiceInsertFailureSurfaces(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	storeErr := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO invoices").WillReturnError(storeErr)

	svc := InvoiceService{InvoiceRepo: repositories.InvoiceRepository{DB: db}, DB: db}

	_, err = svc.CreateInvoice(1, "26011801", models.Booking{}, nil, nil, nil)
	if !errors.Is(err, storeErr) {
		t.Fatalf("store error must surface unchanged, got %v", err)
	}
}

func TestGetInvoiceByNumberNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM invoices").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := InvoiceService{InvoiceRepo: repositories.InvoiceRepository{DB: db}, DB: db}

	_, err = svc.GetByNumber("INV-26011801-20260118")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
