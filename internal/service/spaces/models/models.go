package models

import (
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

// Request модели

// CreateSpaceRequest запрос на создание площадки
type CreateSpaceRequest struct {
	Name         string
	Capacity     int
	CostPerHour  float64
	IsReservable bool
	Category     string
}

// UpdateSpaceRequest запрос на изменение площадки
type UpdateSpaceRequest struct {
	Name         string
	Capacity     int
	CostPerHour  float64
	IsReservable bool
	IsAvailable  bool
	Category     string
}

// ListSpacesRequest фильтр списка площадок
type ListSpacesRequest struct {
	Category  *string
	Available *bool
}

// Response модели

// SpaceResponse ответ с данными площадки
type SpaceResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	CostPerHour  float64   `json:"costPerHour"`
	IsReservable bool      `json:"isReservable"`
	IsAvailable  bool      `json:"isAvailable"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SpaceListResponse ответ со списком площадок
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// FromDomainSpace конвертирует domain модель в DTO
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	if s == nil {
		return nil
	}

	return &SpaceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Capacity:     s.Capacity,
		CostPerHour:  s.CostPerHour,
		IsReservable: s.IsReservable,
		IsAvailable:  s.IsAvailable,
		Category:     string(s.Category),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	resp := &SpaceListResponse{Spaces: make([]SpaceResponse, 0, len(spaces))}
	for _, s := range spaces {
		resp.Spaces = append(resp.Spaces, *FromDomainSpace(s))
	}
	return resp
}
