package models

import "time"

// TaxInvoiceAmounts is the full set of derived monetary fields for one
// invoice. Net price and tax are computed from the undiscounted catalog
// price; the discount is itemized separately and never reduces the tax.
type TaxInvoiceAmounts struct {
	BookingAmount     float64 `json:"booking_amount"`
	TotalParticipants int     `json:"total_participants"`

	OriginalPricePerPerson     float64 `json:"original_price_per_person"`
	TicketPricePerPerson       float64 `json:"ticket_price_per_person"`
	DiscountPerPerson          float64 `json:"discount_per_person"`
	OriginalBasePricePerPerson float64 `json:"original_base_price_per_person"`
	OriginalTaxPerPerson       float64 `json:"original_tax_per_person"`
	DiscountOnBasePerPerson    float64 `json:"discount_on_base_per_person"`
	FinalNetPricePerPerson     float64 `json:"final_net_price_per_person"`
	FinalTaxPerPerson          float64 `json:"final_tax_per_person"`
	TotalPricePerPerson        float64 `json:"total_price_per_person"`

	TotalBasePrice      float64 `json:"total_base_price"`
	TotalTaxAmount      float64 `json:"total_tax_amount"`
	TotalDiscount       float64 `json:"total_discount"`
	TotalDiscountOnBase float64 `json:"total_discount_on_base"`
	TotalNetPrice       float64 `json:"total_net_price"`
	TotalAmount         float64 `json:"total_amount"`
}

// Invoice is the flat record written once per booking and never mutated.
type Invoice struct {
	ID            int64  `json:"id"`
	BookingID     int64  `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
	InvoiceNumber string `json:"invoice_number"`
	HSNCode       string `json:"hsn_code"`
	InvoiceDate   string `json:"invoice_date"`
	DateTime      string `json:"date_time"`

	CustomerName   string `json:"customer_name"`
	CustomerPhone  string `json:"customer_phone"`
	CustomerEmail  string `json:"customer_email"`
	PickupLocation string `json:"pickup_location,omitempty"`

	ExperienceTitle string `json:"experience_title"`
	ActivityName    string `json:"activity_name,omitempty"`
	Location        string `json:"location"`
	Currency        string `json:"currency"`

	VendorName    string `json:"vendor_name"`
	CompanyName   string `json:"company_name"`
	VendorAddress string `json:"vendor_address"`
	GSTNumber     string `json:"gst_number"`
	PlaceOfSupply string `json:"place_of_supply"`
	LogoURL       string `json:"logo_url,omitempty"`

	TaxInvoiceAmounts

	CreatedAt time.Time `json:"created_at"`
}
