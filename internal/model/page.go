package model

const (
	// DefaultPageLimit is used when a listing does not specify a limit.
	DefaultPageLimit = 100
	// MaxPageLimit caps listing size.
	MaxPageLimit = 1000
)

// Page selects a window of a listing.
type Page struct {
	Offset int
	Limit  int
}

// DefaultPage returns the first page with the default limit.
func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultPageLimit}
}
