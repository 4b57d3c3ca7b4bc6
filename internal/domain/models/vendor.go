package models

// VendorProfile holds the seller identity printed on tax invoices.
// State doubles as "place of supply" and may be empty.
type VendorProfile struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	GSTNumber   string `json:"gst_number"`
	State       string `json:"state,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}
