package strategy

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotFinder часть пула, нужная стратегиям выбора места.
type SpotFinder interface {
	FindAvailable(vt domain.VehicleType) (*domain.Spot, bool)
	FindAvailableOnLevel(levelNumber int, vt domain.VehicleType) (*domain.Spot, bool)
	AvailabilityByLevel(vt domain.VehicleType) []domain.LevelAvailability
}

// Assignment стратегия выбора места для транспорта. Реализации не имеют
// состояния и детерминированы: при неизменном состоянии пула повторный
// вызов возвращает то же место.
type Assignment interface {
	Assign(lot SpotFinder, vt domain.VehicleType) (*domain.Spot, bool)
}

// LowestLevelFirst стратегия по умолчанию: первое подходящее свободное
// место в порядке уровней и мест внутри уровня.
type LowestLevelFirst struct{}

// NewLowestLevelFirst создает стратегию выбора ближайшего места.
func NewLowestLevelFirst() *LowestLevelFirst {
	return &LowestLevelFirst{}
}

// Assign делегирует поиск пулу: порядок обхода фиксирован конфигурацией.
func (s *LowestLevelFirst) Assign(lot SpotFinder, vt domain.VehicleType) (*domain.Spot, bool) {
	return lot.FindAvailable(vt)
}

// MostFreeLevelFirst альтернативная стратегия, распределяющая нагрузку:
// выбирает уровень с наибольшим числом свободных подходящих мест, при
// равенстве побеждает меньший номер уровня.
type MostFreeLevelFirst struct{}

// NewMostFreeLevelFirst создает стратегию равномерного распределения
// по уровням.
func NewMostFreeLevelFirst() *MostFreeLevelFirst {
	return &MostFreeLevelFirst{}
}

// Assign возвращает первое подходящее место на самом свободном уровне.
func (s *MostFreeLevelFirst) Assign(lot SpotFinder, vt domain.VehicleType) (*domain.Spot, bool) {
	found := false
	bestLevel := 0
	bestAvailable := 0
	for _, la := range lot.AvailabilityByLevel(vt) {
		if la.Available > bestAvailable {
			found = true
			bestLevel = la.LevelNumber
			bestAvailable = la.Available
		}
	}
	if !found {
		return nil, false
	}
	return lot.FindAvailableOnLevel(bestLevel, vt)
}
