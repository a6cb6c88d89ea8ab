package events

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// EventRequest HTTP request model
type EventRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"` // свободный текст, например "Octubre 2025"
	Description string `json:"description"`
	Visible     bool   `json:"visible"`
}

// EventResponse HTTP response model
type EventResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Visible     bool   `json:"visible"`
}

// EventListResponse список событий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// ToDomainEvent конвертирует HTTP запрос в domain модель
func (r *EventRequest) ToDomainEvent() *domain.Event {
	return &domain.Event{
		Name:        r.Name,
		Date:        r.Date,
		Description: r.Description,
		Visible:     r.Visible,
	}
}

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date,
		Description: e.Description,
		Visible:     e.Visible,
	}
}

// FromDomainEventList конвертирует список в DTO
func FromDomainEventList(events []*domain.Event) *EventListResponse {
	resp := &EventListResponse{Events: make([]EventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, *FromDomainEvent(e))
	}
	return resp
}
