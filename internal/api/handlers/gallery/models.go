package gallery

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// GalleryImageRequest HTTP request model
type GalleryImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Visible     bool   `json:"visible"`
	Order       int    `json:"order"`
}

// GalleryImageResponse HTTP response model
type GalleryImageResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Visible     bool   `json:"visible"`
	Order       int    `json:"order"`
}

// GalleryListResponse список изображений галереи
type GalleryListResponse struct {
	Images []GalleryImageResponse `json:"images"`
}

// ToDomainImage конвертирует HTTP запрос в domain модель
func (r *GalleryImageRequest) ToDomainImage() *domain.GalleryImage {
	return &domain.GalleryImage{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Category:    r.Category,
		Visible:     r.Visible,
		Order:       r.Order,
	}
}

// FromDomainImage конвертирует domain модель в DTO
func FromDomainImage(img *domain.GalleryImage) *GalleryImageResponse {
	return &GalleryImageResponse{
		ID:          img.ID,
		Title:       img.Title,
		Description: img.Description,
		URL:         img.URL,
		Category:    img.Category,
		Visible:     img.Visible,
		Order:       img.Order,
	}
}

// FromDomainImageList конвертирует список в DTO
func FromDomainImageList(images []*domain.GalleryImage) *GalleryListResponse {
	resp := &GalleryListResponse{Images: make([]GalleryImageResponse, 0, len(images))}
	for _, img := range images {
		resp.Images = append(resp.Images, *FromDomainImage(img))
	}
	return resp
}
