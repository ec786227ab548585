package pool

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Lot in-memory состояние парковки: упорядоченные уровни с местами.
// Строится один раз из конфигурации; структура неизменна, мутируется только
// флаг занятости. Lot не выполняет блокировок - все вызовы идут под
// транзакционным менеджером сервиса, других путей мутации состояния нет.
type Lot struct {
	name   string
	levels []*domain.Level
	byID   map[int64]*domain.Spot
	compat *domain.CompatRule
}

// NewLot собирает парковку из уровней с заданным правилом совместимости.
// Возвращает ошибку при пустой конфигурации или дублировании
// идентификаторов мест.
func NewLot(name string, levels []*domain.Level, compat *domain.CompatRule) (*Lot, error) {
	if compat == nil {
		compat = domain.DefaultCompatRule()
	}

	byID := make(map[int64]*domain.Spot)
	for _, level := range levels {
		for _, spot := range level.Spots {
			if _, ok := byID[spot.ID]; ok {
				return nil, fmt.Errorf("%w: spot id=%d", ErrDuplicateSpotID, spot.ID)
			}
			byID[spot.ID] = spot
		}
	}

	if len(byID) == 0 {
		return nil, ErrEmptyLot
	}

	return &Lot{
		name:   name,
		levels: levels,
		byID:   byID,
		compat: compat,
	}, nil
}

// Name возвращает название парковки.
func (l *Lot) Name() string {
	return l.name
}

// FindAvailable возвращает первое свободное место, подходящее для типа
// транспорта. Порядок обхода фиксирован: уровни в порядке конфигурации,
// места в порядке следования внутри уровня.
func (l *Lot) FindAvailable(vt domain.VehicleType) (*domain.Spot, bool) {
	for _, level := range l.levels {
		for _, spot := range level.Spots {
			if !spot.Occupied && l.compat.Fits(spot.Type, vt) {
				return spot, true
			}
		}
	}
	return nil, false
}

// FindAvailableOnLevel возвращает первое свободное подходящее место на
// указанном уровне.
func (l *Lot) FindAvailableOnLevel(levelNumber int, vt domain.VehicleType) (*domain.Spot, bool) {
	for _, level := range l.levels {
		if level.Number != levelNumber {
			continue
		}
		for _, spot := range level.Spots {
			if !spot.Occupied && l.compat.Fits(spot.Type, vt) {
				return spot, true
			}
		}
		return nil, false
	}
	return nil, false
}

// MarkOccupied помечает место занятым.
func (l *Lot) MarkOccupied(spotID int64) error {
	spot, ok := l.byID[spotID]
	if !ok {
		return fmt.Errorf("%w: spot id=%d", ErrSpotNotFound, spotID)
	}
	if spot.Occupied {
		return fmt.Errorf("%w: spot id=%d", ErrSpotOccupied, spotID)
	}
	spot.Occupied = true
	return nil
}

// MarkFree помечает место свободным.
func (l *Lot) MarkFree(spotID int64) error {
	spot, ok := l.byID[spotID]
	if !ok {
		return fmt.Errorf("%w: spot id=%d", ErrSpotNotFound, spotID)
	}
	if !spot.Occupied {
		return fmt.Errorf("%w: spot id=%d", ErrSpotNotOccupied, spotID)
	}
	spot.Occupied = false
	return nil
}

// SupportsVehicle проверяет, есть ли в конфигурации хоть одно место,
// совместимое с типом транспорта, независимо от занятости. Отличает
// "парковка заполнена" от "тип транспорта не обслуживается".
func (l *Lot) SupportsVehicle(vt domain.VehicleType) bool {
	for _, level := range l.levels {
		for _, spot := range level.Spots {
			if l.compat.Fits(spot.Type, vt) {
				return true
			}
		}
	}
	return false
}

// CountAvailable возвращает количество свободных подходящих мест.
// Полный обход: пулы невелики, частота запросов ограничена человеческим
// темпом въезда и выезда.
func (l *Lot) CountAvailable(vt domain.VehicleType) int {
	count := 0
	for _, level := range l.levels {
		for _, spot := range level.Spots {
			if !spot.Occupied && l.compat.Fits(spot.Type, vt) {
				count++
			}
		}
	}
	return count
}

// CountTotal возвращает общее количество подходящих мест.
func (l *Lot) CountTotal(vt domain.VehicleType) int {
	count := 0
	for _, level := range l.levels {
		for _, spot := range level.Spots {
			if l.compat.Fits(spot.Type, vt) {
				count++
			}
		}
	}
	return count
}

// AvailabilityByLevel возвращает счётчики доступности по уровням в порядке
// конфигурации.
func (l *Lot) AvailabilityByLevel(vt domain.VehicleType) []domain.LevelAvailability {
	result := make([]domain.LevelAvailability, 0, len(l.levels))
	for _, level := range l.levels {
		la := domain.LevelAvailability{LevelNumber: level.Number}
		for _, spot := range level.Spots {
			if !l.compat.Fits(spot.Type, vt) {
				continue
			}
			la.Total++
			if !spot.Occupied {
				la.Available++
			}
		}
		result = append(result, la)
	}
	return result
}

// Snapshot возвращает глубокую копию уровней для отчётов: вызывающие не
// могут мутировать состояние пула через результат.
func (l *Lot) Snapshot() []*domain.Level {
	levels := make([]*domain.Level, len(l.levels))
	for i, level := range l.levels {
		spots := make([]*domain.Spot, len(level.Spots))
		for j, spot := range level.Spots {
			copied := *spot
			spots[j] = &copied
		}
		levels[i] = &domain.Level{Number: level.Number, Spots: spots}
	}
	return levels
}
