package repositories

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	intconfig "voyago/internal/config"
	intdb "voyago/internal/db"
	"voyago/internal/domain/models"
)

type InvoiceRepository struct {
	DB *sql.DB
}

func (r InvoiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var invoiceColumns = []string{
	"id",
	"booking_id",
	"booking_number",
	"invoice_number",
	"hsn_code",
	"invoice_date",
	"date_time",
	"customer_name",
	"customer_phone",
	"customer_email",
	"pickup_location",
	"experience_title",
	"activity_name",
	"location",
	"currency",
	"vendor_name",
	"company_name",
	"vendor_address",
	"gst_number",
	"place_of_supply",
	"logo_url",
	"booking_amount",
	"total_participants",
	"original_price_per_person",
	"ticket_price_per_person",
	"discount_per_person",
	"original_base_price_per_person",
	"original_tax_per_person",
	"discount_on_base_per_person",
	"final_net_price_per_person",
	"final_tax_per_person",
	"total_price_per_person",
	"total_base_price",
	"total_tax_amount",
	"total_discount",
	"total_discount_on_base",
	"total_net_price",
	"total_amount",
	"created_at",
}

// Insert writes the invoice exactly once and hands back the stored record
// with its generated ID. Store errors are returned untouched; the caller
// decides how to surface them.
func (r InvoiceRepository) Insert(inv models.Invoice) (models.Invoice, error) {
	query, args, err := intdb.Insert("invoices").
		Columns(invoiceColumns[1 : len(invoiceColumns)-1]...).
		Values(
			inv.BookingID,
			inv.BookingNumber,
			inv.InvoiceNumber,
			inv.HSNCode,
			inv.InvoiceDate,
			inv.DateTime,
			inv.CustomerName,
			inv.CustomerPhone,
			inv.CustomerEmail,
			inv.PickupLocation,
			inv.ExperienceTitle,
			inv.ActivityName,
			inv.Location,
			inv.Currency,
			inv.VendorName,
			inv.CompanyName,
			inv.VendorAddress,
			inv.GSTNumber,
			inv.PlaceOfSupply,
			inv.LogoURL,
			inv.BookingAmount,
			inv.TotalParticipants,
			inv.OriginalPricePerPerson,
			inv.TicketPricePerPerson,
			inv.DiscountPerPerson,
			inv.OriginalBasePricePerPerson,
			inv.OriginalTaxPerPerson,
			inv.DiscountOnBasePerPerson,
			inv.FinalNetPricePerPerson,
			inv.FinalTaxPerPerson,
			inv.TotalPricePerPerson,
			inv.TotalBasePrice,
			inv.TotalTaxAmount,
			inv.TotalDiscount,
			inv.TotalDiscountOnBase,
			inv.TotalNetPrice,
			inv.TotalAmount,
		).
		ToSql()
	if err != nil {
		return models.Invoice{}, err
	}

	res, err := r.db().Exec(query, args...)
	if err != nil {
		return models.Invoice{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Invoice{}, err
	}
	inv.ID = id
	return inv, nil
}

// GetByNumber fetches one invoice by its invoice number.
func (r InvoiceRepository) GetByNumber(number string) (models.Invoice, bool, error) {
	return r.getOne(squirrel.Eq{"invoice_number": number})
}

// GetByBookingID fetches the invoice linked to a booking, if any.
func (r InvoiceRepository) GetByBookingID(bookingID int64) (models.Invoice, bool, error) {
	return r.getOne(squirrel.Eq{"booking_id": bookingID})
}

func (r InvoiceRepository) getOne(where squirrel.Eq) (models.Invoice, bool, error) {
	query, args, err := intdb.Select(invoiceColumns...).
		From("invoices").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Invoice{}, false, err
	}

	var inv models.Invoice
	err = r.db().QueryRow(query, args...).Scan(
		&inv.ID,
		&inv.BookingID,
		&inv.BookingNumber,
		&inv.InvoiceNumber,
		&inv.HSNCode,
		&inv.InvoiceDate,
		&inv.DateTime,
		&inv.CustomerName,
		&inv.CustomerPhone,
		&inv.CustomerEmail,
		&inv.PickupLocation,
		&inv.ExperienceTitle,
		&inv.ActivityName,
		&inv.Location,
		&inv.Currency,
		&inv.VendorName,
		&inv.CompanyName,
		&inv.VendorAddress,
		&inv.GSTNumber,
		&inv.PlaceOfSupply,
		&inv.LogoURL,
		&inv.BookingAmount,
		&inv.TotalParticipants,
		&inv.OriginalPricePerPerson,
		&inv.TicketPricePerPerson,
		&inv.DiscountPerPerson,
		&inv.OriginalBasePricePerPerson,
		&inv.OriginalTaxPerPerson,
		&inv.DiscountOnBasePerPerson,
		&inv.FinalNetPricePerPerson,
		&inv.FinalTaxPerPerson,
		&inv.TotalPricePerPerson,
		&inv.TotalBasePrice,
		&inv.TotalTaxAmount,
		&inv.TotalDiscount,
		&inv.TotalDiscountOnBase,
		&inv.TotalNetPrice,
		&inv.TotalAmount,
		&inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, false, nil
		}
		return models.Invoice{}, false, err
	}
	return inv, true, nil
}
