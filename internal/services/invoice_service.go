package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	intconfig "voyago/internal/config"
	"voyago/internal/domain"
	"voyago/internal/domain/models"
	"voyago/internal/repositories"
	"voyago/internal/utils"
)

type InvoiceService struct {
	InvoiceRepo repositories.InvoiceRepository
	BookingRepo repositories.BookingRepository
	CatalogRepo repositories.CatalogRepository
	VendorRepo  repositories.VendorRepository
	DB          *sql.DB
	Clock       func() time.Time
	RequestID   string
}

func (s InvoiceService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s InvoiceService) invoices() repositories.InvoiceRepository {
	if s.InvoiceRepo.DB != nil {
		return s.InvoiceRepo
	}
	return repositories.InvoiceRepository{DB: s.db()}
}

func (s InvoiceService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s InvoiceService) catalog() repositories.CatalogRepository {
	if s.CatalogRepo.DB != nil {
		return s.CatalogRepo
	}
	return repositories.CatalogRepository{DB: s.db()}
}

func (s InvoiceService) vendors() repositories.VendorRepository {
	if s.VendorRepo.DB != nil {
		return s.VendorRepo
	}
	return repositories.VendorRepository{DB: s.db()}
}

func (s InvoiceService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// ComputeAmounts derives every invoice line amount from the booking and
// catalog pricing. Pure arithmetic: no I/O, no validation, identical
// inputs give identical outputs.
//
// The displayed net price and tax come from the undiscounted catalog
// price; the discount is itemized separately and does not reduce the tax.
// A paid amount above catalog price shows up as a negative discount
// (surcharge) and is deliberately not clamped.
func ComputeAmounts(b models.Booking, exp *models.Experience, act *models.Activity) models.TaxInvoiceAmounts {
	amount := utils.ParseAmount(b.BookingAmount)

	participants := b.TotalParticipants
	if participants <= 0 {
		participants = 1
	}

	// Activity price wins as the more specific catalog entry.
	original := 0.0
	switch {
	case act != nil && act.Price != nil:
		original = *act.Price
	case exp != nil && exp.Price != nil:
		original = *exp.Price
	}

	ticket := amount / float64(participants)
	discount := original - ticket

	originalBase := original / domain.TaxDivisor
	originalTax := originalBase * domain.TaxRate
	discountOnBase := discount / domain.TaxDivisor

	// The full tax-inclusive discount comes off the displayed net price
	// while the tax column stays at the catalog-price tax. That keeps
	// net + tax equal to the amount actually charged per head, so the
	// printed total reconciles against the booking amount.
	finalNet := originalBase - discount
	finalTax := originalTax
	totalPerPerson := finalNet + finalTax

	n := float64(participants)
	return models.TaxInvoiceAmounts{
		BookingAmount:     amount,
		TotalParticipants: participants,

		OriginalPricePerPerson:     original,
		TicketPricePerPerson:       ticket,
		DiscountPerPerson:          discount,
		OriginalBasePricePerPerson: originalBase,
		OriginalTaxPerPerson:       originalTax,
		DiscountOnBasePerPerson:    discountOnBase,
		FinalNetPricePerPerson:     finalNet,
		FinalTaxPerPerson:          finalTax,
		TotalPricePerPerson:        totalPerPerson,

		TotalBasePrice:      originalBase * n,
		TotalTaxAmount:      finalTax * n,
		TotalDiscount:       discount * n,
		TotalDiscountOnBase: discountOnBase * n,
		TotalNetPrice:       finalNet * n,
		// Single multiplication, no per-line rounding, so the printed
		// total reconciles exactly against per-person times headcount.
		TotalAmount: totalPerPerson * n,
	}
}

// CreateInvoice assembles the flat invoice record and writes it exactly
// once. Store insert errors are handed back unchanged: a retry here could
// double-bill when the caller's upstream action is not idempotent.
func (s InvoiceService) CreateInvoice(
	bookingID int64,
	bookingNumber string,
	b models.Booking,
	exp *models.Experience,
	act *models.Activity,
	vendor *models.VendorProfile,
) (models.Invoice, error) {
	amounts := ComputeAmounts(b, exp, act)
	now := s.now()

	inv := models.Invoice{
		BookingID:     bookingID,
		BookingNumber: bookingNumber,
		InvoiceNumber: fmt.Sprintf("INV-%s-%s", bookingNumber, utils.InvoiceDateStamp(now)),
		HSNCode:       domain.HSNCode,
		InvoiceDate:   utils.FormatDate(now),
		DateTime:      bookingDateTime(b),

		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		CustomerEmail:  b.CustomerEmail,
		PickupLocation: b.PickupLocation,

		Currency: domain.DefaultCurrency,

		TaxInvoiceAmounts: amounts,
	}

	if exp != nil {
		inv.ExperienceTitle = exp.Title
		inv.Location = exp.Location
		if utils.TrimOrEmpty(exp.Currency) != "" {
			inv.Currency = exp.Currency
		}
	}
	if act != nil {
		inv.ActivityName = act.Name
	}

	inv.PlaceOfSupply = domain.DefaultPlaceOfSupply
	if vendor != nil {
		inv.VendorName = utils.JoinNonEmpty(vendor.FirstName, vendor.LastName)
		inv.CompanyName = utils.TrimOrEmpty(vendor.CompanyName)
		inv.VendorAddress = utils.TrimOrEmpty(vendor.Address)
		inv.GSTNumber = utils.TrimOrEmpty(vendor.GSTNumber)
		inv.LogoURL = utils.TrimOrEmpty(vendor.LogoURL)
		if utils.TrimOrEmpty(vendor.State) != "" {
			inv.PlaceOfSupply = vendor.State
		}
	}

	stored, err := s.invoices().Insert(inv)
	if err != nil {
		return models.Invoice{}, err
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}

	utils.LogEvent(s.RequestID, "invoice", "create",
		fmt.Sprintf("invoice_number=%s booking_number=%s total=%s", stored.InvoiceNumber, bookingNumber, utils.FormatMoney(stored.TotalAmount)))
	return stored, nil
}

// CreateForBooking loads the booking with its catalog and vendor context
// and writes the invoice. One invoice per booking: a second call conflicts
// instead of overwriting.
func (s InvoiceService) CreateForBooking(bookingID int64) (models.Invoice, error) {
	if bookingID <= 0 {
		return models.Invoice{}, domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}

	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Invoice{}, domain.InternalError{Err: err}
	}

	if _, found, err := s.invoices().GetByBookingID(bookingID); err != nil {
		return models.Invoice{}, domain.InternalError{Err: err}
	} else if found {
		return models.Invoice{}, domain.ConflictError{Resource: "invoice", Msg: "booking already invoiced"}
	}

	var expPtr *models.Experience
	if exp, found, err := s.catalog().GetExperienceByID(b.ExperienceID); err != nil {
		return models.Invoice{}, domain.InternalError{Err: err}
	} else if found {
		expPtr = &exp
	}

	var actPtr *models.Activity
	if b.ActivityID != nil {
		if act, found, err := s.catalog().GetActivityByID(*b.ActivityID); err != nil {
			return models.Invoice{}, domain.InternalError{Err: err}
		} else if found {
			actPtr = &act
		}
	}

	var vendorPtr *models.VendorProfile
	if vendor, found, err := s.vendors().GetProfile(); err != nil {
		return models.Invoice{}, domain.InternalError{Err: err}
	} else if found {
		vendorPtr = &vendor
	}

	inv, err := s.CreateInvoice(b.ID, b.BookingNumber, b, expPtr, actPtr, vendorPtr)
	if err != nil {
		// The store error stays in the chain untouched; no retry, nothing
		// partial was written.
		return models.Invoice{}, domain.InternalError{Msg: "failed to store invoice", Err: err}
	}
	return inv, nil
}

// GetByNumber loads one stored invoice.
func (s InvoiceService) GetByNumber(number string) (models.Invoice, error) {
	inv, found, err := s.invoices().GetByNumber(number)
	if err != nil {
		return models.Invoice{}, domain.InternalError{Err: err}
	}
	if !found {
		return models.Invoice{}, domain.NotFoundError{Resource: "invoice"}
	}
	return inv, nil
}

// GetByBookingID loads the invoice linked to a booking.
func (s InvoiceService) GetByBookingID(bookingID int64) (models.Invoice, error) {
	inv, found, err := s.invoices().GetByBookingID(bookingID)
	if err != nil {
		return models.Invoice{}, domain.InternalError{Err: err}
	}
	if !found {
		return models.Invoice{}, domain.NotFoundError{Resource: "invoice"}
	}
	return inv, nil
}

// HasInvoice reports whether a booking already carries an invoice.
func (s InvoiceService) HasInvoice(bookingID int64) (bool, error) {
	_, found, err := s.invoices().GetByBookingID(bookingID)
	return found, err
}

// bookingDateTime renders the display date/time line: booking date plus
// the linked slot when present, e.g. "2026-01-18 10:00 - 12:00".
func bookingDateTime(b models.Booking) string {
	slot := utils.FormatTimeRange(b.SlotStartTime, b.SlotEndTime)
	if slot == "" {
		return b.BookingDate
	}
	if b.BookingDate == "" {
		return slot
	}
	return b.BookingDate + " " + slot
}
