package domain

// SalesManager represents a sales resource with a fixed capability profile.
// Capability assignment is managed by an external system; this service only
// filters against it.
type SalesManager struct {
	ID              int64
	Name            string
	Languages       []string
	Products        []string
	CustomerRatings []string
}

// SupportsLanguage returns true if the manager can serve customers in the
// given language
func (m *SalesManager) SupportsLanguage(language string) bool {
	return contains(m.Languages, language)
}

// SupportsRating returns true if the manager can serve customers of the
// given rating tier
func (m *SalesManager) SupportsRating(rating string) bool {
	return contains(m.CustomerRatings, rating)
}

// SupportsProducts returns true if the manager can sell ALL of the requested
// products (superset semantics, not intersection)
func (m *SalesManager) SupportsProducts(products []string) bool {
	for _, p := range products {
		if !contains(m.Products, p) {
			return false
		}
	}
	return true
}

// CanServe returns true if the manager matches the full capability filter of
// an availability request
func (m *SalesManager) CanServe(products []string, language, rating string) bool {
	return m.SupportsProducts(products) &&
		m.SupportsLanguage(language) &&
		m.SupportsRating(rating)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
