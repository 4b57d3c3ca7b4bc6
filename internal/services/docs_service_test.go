package services

import (
	"testing"
)

func TestDocsServiceGenerateTaxInvoice(t *testing.T) {
	loader := func(number string) (invoiceDocData, error) {
		return invoiceDocData{
			InvoiceNumber:          number,
			BookingNumber:          "26011802",
			InvoiceDate:            "2026-01-18",
			DateTime:               "2026-01-18 10:00 - 12:00",
			HSNCode:                "999799",
			CustomerName:           "Asha Patel",
			CustomerPhone:          "9898000000",
			ExperienceTitle:        "Rann Safari",
			Location:               "Kutch",
			Currency:               "INR",
			CompanyName:            "Desert Trails LLP",
			GSTNumber:              "24AAAAA0000A1Z5",
			PlaceOfSupply:          "Gujarat",
			TotalParticipants:      2,
			FinalNetPricePerPerson: 1000,
			FinalTaxPerPerson:      180,
			TotalPricePerPerson:    1180,
			TotalBasePrice:         2000,
			TotalTaxAmount:         360,
			TotalAmount:            2360,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateTaxInvoice("INV-26011802-20260118")
	if err != nil {
		t.Fatalf("GenerateTaxInvoice returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateTaxInvoice returned empty data")
	}
	if filename != "INV-26011802-20260118.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}
