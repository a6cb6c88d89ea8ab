package menu_del_dia

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// CourseModel одно блюдо меню дня
type CourseModel struct {
	Name      string   `json:"nombre"`
	Allergens []string `json:"alergenos"`
}

// DailyMenuRequest HTTP request model обновления меню дня
type DailyMenuRequest struct {
	Date             string        `json:"date"`
	Price            float64       `json:"price"`
	Starters         []CourseModel `json:"starters"`
	Mains            []CourseModel `json:"mains"`
	Desserts         []CourseModel `json:"desserts"`
	Drink            string        `json:"drink"`
	Active           bool          `json:"active"`
	GeneralAllergens []string      `json:"generalAllergens"`
}

// DailyMenuResponse HTTP response model
type DailyMenuResponse struct {
	ID               int64         `json:"id"`
	Date             string        `json:"date"`
	Price            float64       `json:"price"`
	Starters         []CourseModel `json:"starters"`
	Mains            []CourseModel `json:"mains"`
	Desserts         []CourseModel `json:"desserts"`
	Drink            string        `json:"drink"`
	Active           bool          `json:"active"`
	GeneralAllergens []string      `json:"generalAllergens"`
}

// ToDomainMenu конвертирует HTTP запрос в domain модель
func (r *DailyMenuRequest) ToDomainMenu() *domain.DailyMenu {
	return &domain.DailyMenu{
		Date:             r.Date,
		Price:            r.Price,
		Starters:         toDomainCourses(r.Starters),
		Mains:            toDomainCourses(r.Mains),
		Desserts:         toDomainCourses(r.Desserts),
		Drink:            r.Drink,
		Active:           r.Active,
		GeneralAllergens: r.GeneralAllergens,
	}
}

// FromDomainMenu конвертирует domain модель в DTO
func FromDomainMenu(menu *domain.DailyMenu) *DailyMenuResponse {
	return &DailyMenuResponse{
		ID:               menu.ID,
		Date:             menu.Date,
		Price:            menu.Price,
		Starters:         fromDomainCourses(menu.Starters),
		Mains:            fromDomainCourses(menu.Mains),
		Desserts:         fromDomainCourses(menu.Desserts),
		Drink:            menu.Drink,
		Active:           menu.Active,
		GeneralAllergens: menu.GeneralAllergens,
	}
}

func toDomainCourses(courses []CourseModel) []domain.DailyMenuCourse {
	result := make([]domain.DailyMenuCourse, 0, len(courses))
	for _, c := range courses {
		result = append(result, domain.DailyMenuCourse{Name: c.Name, Allergens: c.Allergens})
	}
	return result
}

func fromDomainCourses(courses []domain.DailyMenuCourse) []CourseModel {
	result := make([]CourseModel, 0, len(courses))
	for _, c := range courses {
		result = append(result, CourseModel{Name: c.Name, Allergens: c.Allergens})
	}
	return result
}
