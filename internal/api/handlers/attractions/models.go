package attractions

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// AttractionRequest HTTP request model
type AttractionRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Distance    string   `json:"distance"`
	Duration    string   `json:"duration"`
	Type        string   `json:"type"`
	Images      []string `json:"images"`
	MainImage   string   `json:"mainImage"`
	Visible     bool     `json:"visible"`
}

// AttractionResponse HTTP response model
type AttractionResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Distance    string   `json:"distance"`
	Duration    string   `json:"duration"`
	Type        string   `json:"type"`
	Images      []string `json:"images"`
	MainImage   string   `json:"mainImage"`
	Visible     bool     `json:"visible"`
}

// AttractionListResponse список достопримечательностей
type AttractionListResponse struct {
	Attractions []AttractionResponse `json:"attractions"`
}

// ToDomainAttraction конвертирует HTTP запрос в domain модель
func (r *AttractionRequest) ToDomainAttraction() *domain.Attraction {
	return &domain.Attraction{
		Name:        r.Name,
		Description: r.Description,
		Distance:    r.Distance,
		Duration:    r.Duration,
		Type:        r.Type,
		Images:      r.Images,
		MainImage:   r.MainImage,
		Visible:     r.Visible,
	}
}

// FromDomainAttraction конвертирует domain модель в DTO
func FromDomainAttraction(a *domain.Attraction) *AttractionResponse {
	return &AttractionResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Distance:    a.Distance,
		Duration:    a.Duration,
		Type:        a.Type,
		Images:      a.Images,
		MainImage:   a.MainImage,
		Visible:     a.Visible,
	}
}

// FromDomainAttractionList конвертирует список в DTO
func FromDomainAttractionList(attractions []*domain.Attraction) *AttractionListResponse {
	resp := &AttractionListResponse{Attractions: make([]AttractionResponse, 0, len(attractions))}
	for _, a := range attractions {
		resp.Attractions = append(resp.Attractions, *FromDomainAttraction(a))
	}
	return resp
}
