package entity

import "strings"

// Category classifies a service location.
type Category int

const (
	CategoryOther Category = iota
	CategoryDorm
	CategoryOfficeBuilding
	CategoryLibrary
	CategoryRestaurant
)

var categoryLabels = map[Category]string{
	CategoryDorm:           "dorm",
	CategoryOfficeBuilding: "officebuilding",
	CategoryLibrary:        "library",
	CategoryRestaurant:     "restaurant",
	CategoryOther:          "other",
}

// String returns the human-readable label, which is also the directory's wire spelling.
func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return categoryLabels[CategoryOther]
}

// ParseCategory maps a directory label to a Category. Unknown labels become CategoryOther.
func ParseCategory(label string) Category {
	needle := strings.ToLower(strings.TrimSpace(label))
	needle = strings.NewReplacer("_", "", "-", "", " ", "").Replace(needle)
	for category, known := range categoryLabels {
		if known == needle {
			return category
		}
	}

	return CategoryOther
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))

	return nil
}
