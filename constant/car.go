package constant

// Car statuses. Only AVAILABLE cars are considered in-stock and surfaced
// by listing and facet queries.
const (
	CarStatusAvailable   = "AVAILABLE"
	CarStatusUnavailable = "UNAVAILABLE"
	CarStatusSold        = "SOLD"
)

// Sort keys accepted by the car listing query. Anything else falls back
// to SortByNewest.
const (
	SortByNewest    = "newest"
	SortByPriceAsc  = "priceAsc"
	SortByPriceDesc = "priceDesc"
)

// Listing defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 6

	// PriceUnbounded marks "no upper price bound requested". An upper bound
	// is applied only when the requested max is strictly below this value.
	PriceUnbounded float64 = 9007199254740991

	// Default price range returned when no AVAILABLE car exists. The UI
	// slider depends on these exact values.
	DefaultPriceRangeMin float64 = 0
	DefaultPriceRangeMax float64 = 100000
)

// Test drive booking statuses.
const (
	TestDriveStatusPending   = "PENDING"
	TestDriveStatusConfirmed = "CONFIRMED"
	TestDriveStatusCompleted = "COMPLETED"
	TestDriveStatusCancelled = "CANCELLED"
	TestDriveStatusNoShow    = "NO_SHOW"
)

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)
