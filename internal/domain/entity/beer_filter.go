package entity

// BeerFilter is a domain-level filter for querying beers.
// Used by repository layer to avoid coupling with delivery DTOs.
type BeerFilter struct {
	BeerName  string    // Case-insensitive substring match (ILIKE)
	BeerStyle BeerStyle // Exact match, empty means any style
}
