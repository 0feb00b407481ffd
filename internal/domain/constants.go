package domain

// Storefront defaults used for the online checkout
const (
	DefaultCurrency         = "INR"
	DefaultDisplayName      = "The Wild Oasis"
	DefaultConfirmationPath = "/cabins/thankyou"
	DefaultGuestName        = "Guest"
)

// Form validation constants
const (
	MinGuests             = 1
	MaxObservationsLength = 1000
)

// MinorUnitsPerMajor количество минимальных единиц валюты в основной (пайсы в рупии)
const MinorUnitsPerMajor = 100

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
