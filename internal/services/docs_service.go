package services

import (
	"bytes"
	"fmt"
	"strings"

	"voyago/internal/domain"
	"voyago/internal/repositories"
	"voyago/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders printable tax-invoice PDFs from stored invoices.
type DocsService struct {
	InvoiceRepo repositories.InvoiceRepository
	RequestID   string
	Loader      func(number string) (invoiceDocData, error)
}

type invoiceDocData struct {
	InvoiceNumber string
	BookingNumber string
	InvoiceDate   string
	DateTime      string
	HSNCode       string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	ExperienceTitle string
	ActivityName    string
	Location        string
	PickupLocation  string
	Currency        string

	VendorName    string
	CompanyName   string
	VendorAddress string
	GSTNumber     string
	PlaceOfSupply string

	TotalParticipants int

	OriginalPricePerPerson float64
	FinalNetPricePerPerson float64
	FinalTaxPerPerson      float64
	TotalPricePerPerson    float64
	TotalBasePrice         float64
	TotalTaxAmount         float64
	TotalDiscount          float64
	TotalAmount            float64
}

// GenerateTaxInvoice renders the invoice identified by its number.
func (s DocsService) GenerateTaxInvoice(number string) ([]byte, string, error) {
	data, err := s.loadInvoiceDocData(number)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_tax_invoice", fmt.Sprintf("invoice_number=%s", data.InvoiceNumber))
	return buildTaxInvoicePDF(data)
}

func (s DocsService) loadInvoiceDocData(number string) (invoiceDocData, error) {
	if s.Loader != nil {
		return s.Loader(number)
	}

	inv, found, err := s.InvoiceRepo.GetByNumber(number)
	if err != nil {
		return invoiceDocData{}, err
	}
	if !found {
		return invoiceDocData{}, domain.NotFoundError{Resource: "invoice"}
	}

	var d invoiceDocData
	d.InvoiceNumber = inv.InvoiceNumber
	d.BookingNumber = inv.BookingNumber
	d.InvoiceDate = inv.InvoiceDate
	d.DateTime = inv.DateTime
	d.HSNCode = inv.HSNCode
	d.CustomerName = inv.CustomerName
	d.CustomerPhone = inv.CustomerPhone
	d.CustomerEmail = inv.CustomerEmail
	d.ExperienceTitle = inv.ExperienceTitle
	d.ActivityName = inv.ActivityName
	d.Location = inv.Location
	d.PickupLocation = inv.PickupLocation
	d.Currency = inv.Currency
	d.VendorName = inv.VendorName
	d.CompanyName = inv.CompanyName
	d.VendorAddress = inv.VendorAddress
	d.GSTNumber = inv.GSTNumber
	d.PlaceOfSupply = inv.PlaceOfSupply
	d.TotalParticipants = inv.TotalParticipants
	d.OriginalPricePerPerson = inv.OriginalPricePerPerson
	d.FinalNetPricePerPerson = inv.FinalNetPricePerPerson
	d.FinalTaxPerPerson = inv.FinalTaxPerPerson
	d.TotalPricePerPerson = inv.TotalPricePerPerson
	d.TotalBasePrice = inv.TotalBasePrice
	d.TotalTaxAmount = inv.TotalTaxAmount
	d.TotalDiscount = inv.TotalDiscount
	d.TotalAmount = inv.TotalAmount
	return d, nil
}

func buildTaxInvoicePDF(d invoiceDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tax Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TAX INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, docSafe(d.CompanyName, docSafe(d.VendorName, "-")))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	if strings.TrimSpace(d.VendorAddress) != "" {
		pdf.MultiCell(0, 6, d.VendorAddress, "", "", false)
	}
	pdf.Cell(0, 6, "GSTIN: "+docSafe(d.GSTNumber, "-"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Place of Supply: "+docSafe(d.PlaceOfSupply, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+docSafe(d.InvoiceNumber, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Booking No : "+docSafe(d.BookingNumber, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+docSafe(d.InvoiceDate, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "HSN/SAC    : "+docSafe(d.HSNCode, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", docSafe(d.CustomerName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", docSafe(d.CustomerPhone, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", docSafe(d.CustomerEmail, "-")))
	pdf.Ln(10)

	desc := docSafe(d.ExperienceTitle, "-")
	if strings.TrimSpace(d.ActivityName) != "" {
		desc += " / " + d.ActivityName
	}
	if strings.TrimSpace(d.Location) != "" {
		desc += " @ " + d.Location
	}
	if strings.TrimSpace(d.DateTime) != "" {
		desc += " (" + d.DateTime + ")"
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	lines := []string{
		fmt.Sprintf("Participants            : %d", d.TotalParticipants),
		"Net Price (per person)  : " + utils.FormatINR(d.FinalNetPricePerPerson),
		"GST 18% (per person)    : " + utils.FormatINR(d.FinalTaxPerPerson),
		"Taxable Value           : " + utils.FormatINR(d.TotalBasePrice),
		"Total GST               : " + utils.FormatINR(d.TotalTaxAmount),
		"Discount                : " + utils.FormatINR(d.TotalDiscount),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Grand Total: "+utils.FormatINR(d.TotalAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Amounts are tax inclusive at a flat 18% GST. This is a computer-generated invoice.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", docFilenamePart(d.InvoiceNumber))
	return buf.Bytes(), filename, nil
}

func docSafe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func docFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "INVOICE"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
