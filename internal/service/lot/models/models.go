package models

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotResponse состояние одного места
type SpotResponse struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Occupied bool   `json:"occupied"`
}

// LevelResponse состояние одного уровня
type LevelResponse struct {
	Number   int            `json:"number"`
	Spots    []SpotResponse `json:"spots"`
	Occupied int            `json:"occupied"`
	Free     int            `json:"free"`
}

// LayoutResponse снимок состояния парковки
type LayoutResponse struct {
	Name   string          `json:"name"`
	Levels []LevelResponse `json:"levels"`
}

// SummaryResponse сводные счётчики парковки
type SummaryResponse struct {
	Name       string `json:"name"`
	TotalSpots int    `json:"totalSpots"`
	Occupied   int    `json:"occupied"`
	Free       int    `json:"free"`
}

// FromDomainLevels конвертирует снимок уровней в DTO
func FromDomainLevels(name string, levels []*domain.Level) *LayoutResponse {
	resp := &LayoutResponse{
		Name:   name,
		Levels: make([]LevelResponse, 0, len(levels)),
	}

	for _, level := range levels {
		lr := LevelResponse{
			Number: level.Number,
			Spots:  make([]SpotResponse, 0, len(level.Spots)),
		}
		for _, spot := range level.Spots {
			lr.Spots = append(lr.Spots, SpotResponse{
				ID:       spot.ID,
				Type:     string(spot.Type),
				Occupied: spot.Occupied,
			})
			if spot.Occupied {
				lr.Occupied++
			} else {
				lr.Free++
			}
		}
		resp.Levels = append(resp.Levels, lr)
	}

	return resp
}

// SummaryFromLayout сводит снимок уровней в общие счётчики
func SummaryFromLayout(layout *LayoutResponse) *SummaryResponse {
	resp := &SummaryResponse{Name: layout.Name}
	for _, level := range layout.Levels {
		resp.Occupied += level.Occupied
		resp.Free += level.Free
		resp.TotalSpots += level.Occupied + level.Free
	}
	return resp
}
