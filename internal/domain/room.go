package domain

// Room represents a bookable room category (not a physical room instance).
// TotalUnits is the number of physical rooms of this category,
// MaxGuests the occupancy limit of a single unit.
type Room struct {
	ID          int64
	Name        string
	Description string
	Price       float64 // цена за ночь
	MaxGuests   int
	TotalUnits  int
	Amenities   []string
	Images      []string
	MainImage   string
	Visible     bool
}
