package carta

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// MenuItemRequest HTTP request model создания и обновления блюда
type MenuItemRequest struct {
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Available   bool     `json:"available"`
	Allergens   []string `json:"allergens"`
}

// MenuItemResponse HTTP response model
type MenuItemResponse struct {
	ID          int64    `json:"id"`
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Available   bool     `json:"available"`
	Allergens   []string `json:"allergens"`
}

// MenuItemListResponse список блюд карты
type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
}

// ToDomainItem конвертирует HTTP запрос в domain модель
func (r *MenuItemRequest) ToDomainItem() *domain.MenuItem {
	return &domain.MenuItem{
		Category:    r.Category,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Available:   r.Available,
		Allergens:   r.Allergens,
	}
}

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(item *domain.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:          item.ID,
		Category:    item.Category,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Available:   item.Available,
		Allergens:   item.Allergens,
	}
}

// FromDomainItemList конвертирует список блюд в DTO
func FromDomainItemList(items []*domain.MenuItem) *MenuItemListResponse {
	resp := &MenuItemListResponse{Items: make([]MenuItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, *FromDomainItem(item))
	}
	return resp
}
