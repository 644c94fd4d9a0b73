package entity

// PostalAddress is the structured address of a placemark.
// A nil field is absent, which is not the same as an empty string.
type PostalAddress struct {
	HouseNumber *string `json:"house_number,omitempty"`
	Street      *string `json:"street,omitempty"`
	City        *string `json:"city,omitempty"`
	Region      *string `json:"region,omitempty"`
}
