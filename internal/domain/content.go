package domain

// Attraction represents a nearby point of interest shown on the public site
type Attraction struct {
	ID          int64
	Name        string
	Description string
	Distance    string
	Duration    string
	Type        string
	Images      []string
	MainImage   string
	Visible     bool
}

// Event represents a local event announcement
type Event struct {
	ID          int64
	Name        string
	Date        string // свободный текст, например "Octubre 2025"
	Description string
	Visible     bool
}

// GalleryImage represents one photo of the public gallery
type GalleryImage struct {
	ID          int64
	Title       string
	Description string
	URL         string
	Category    string
	Visible     bool
	Order       int
}
