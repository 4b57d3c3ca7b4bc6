package domain

// GST on experience bookings is a fixed 18%, charged inclusive: catalog
// prices already contain the tax, so the base is price / TaxDivisor.
const (
	TaxRate    = 0.18
	TaxDivisor = 1 + TaxRate
)

const (
	// HSNCode is the SAC/HSN classification for travel arrangement and
	// tour operator services.
	HSNCode = "999799"

	DefaultCurrency      = "INR"
	DefaultPlaceOfSupply = "Gujarat"
)

// MaxDailySequence is the highest booking sequence a day can carry with a
// two-digit suffix.
const MaxDailySequence = 99
