package domain

// MenuItem represents one dish of the carta (à la carte menu)
type MenuItem struct {
	ID          int64
	Category    string
	Name        string
	Description string
	Price       float64
	Available   bool
	Allergens   []string
}

// DailyMenuCourse одно блюдо меню дня со своими аллергенами
type DailyMenuCourse struct {
	Name      string   `json:"nombre"`
	Allergens []string `json:"alergenos"`
}

// DailyMenu represents the menú del día: a single record edited in place,
// never created or deleted through the API.
type DailyMenu struct {
	ID               int64
	Date             string // свободный текст, например "Domingo, 22 de Junio 2025"
	Price            float64
	Starters         []DailyMenuCourse
	Mains            []DailyMenuCourse
	Desserts         []DailyMenuCourse
	Drink            string
	Active           bool
	GeneralAllergens []string // аллергены, относящиеся ко всему меню
}
