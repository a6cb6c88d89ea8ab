package rooms

import (
	"github.com/m04kA/ESJ-BookingService/internal/domain"
)

// RoomRequest HTTP request model создания и обновления категории
type RoomRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	MaxGuests   int      `json:"maxGuests"`
	TotalUnits  int      `json:"totalUnits"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	MainImage   string   `json:"mainImage"`
	Visible     bool     `json:"visible"`
}

// RoomResponse HTTP response model
type RoomResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	MaxGuests   int      `json:"maxGuests"`
	TotalUnits  int      `json:"totalUnits"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	MainImage   string   `json:"mainImage"`
	Visible     bool     `json:"visible"`
}

// RoomListResponse список категорий номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ToDomainRoom конвертирует HTTP запрос в domain модель
func (r *RoomRequest) ToDomainRoom() *domain.Room {
	return &domain.Room{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		MaxGuests:   r.MaxGuests,
		TotalUnits:  r.TotalUnits,
		Amenities:   r.Amenities,
		Images:      r.Images,
		MainImage:   r.MainImage,
		Visible:     r.Visible,
	}
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		Price:       room.Price,
		MaxGuests:   room.MaxGuests,
		TotalUnits:  room.TotalUnits,
		Amenities:   room.Amenities,
		Images:      room.Images,
		MainImage:   room.MainImage,
		Visible:     room.Visible,
	}
}

// FromDomainRoomList конвертирует список категорий в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, *FromDomainRoom(room))
	}
	return resp
}
