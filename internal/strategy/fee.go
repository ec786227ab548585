package strategy

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// FeeContext входные данные расчёта стоимости: базовая сумма для
// фиксированных тарифов либо интервал стоянки для повременных.
type FeeContext struct {
	Base     types.Money
	IssuedAt time.Time
	ClosedAt time.Time
}

// Fee стратегия расчёта стоимости стоянки. Реализации не имеют состояния
// и безопасны для конкурентного использования.
type Fee interface {
	Calculate(fc FeeContext) (types.Money, error)
}

// HourlyRate повременной тариф: время стоянки округляется вверх до целого
// числа расчётных единиц, каждая единица оплачивается по полной ставке.
// Ровно одна единица оплачивается как одна; единица плюс секунда - как две.
type HourlyRate struct {
	Rate types.Money
	Unit time.Duration
}

// NewHourlyRate создает повременной тариф. При нулевой или отрицательной
// длительности расчётной единицы используется один час.
func NewHourlyRate(rate types.Money, unit time.Duration) *HourlyRate {
	if unit <= 0 {
		unit = time.Hour
	}
	return &HourlyRate{Rate: rate, Unit: unit}
}

// Calculate возвращает стоимость стоянки за интервал [IssuedAt, ClosedAt].
func (s *HourlyRate) Calculate(fc FeeContext) (types.Money, error) {
	elapsed := fc.ClosedAt.Sub(fc.IssuedAt)
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: closedAt is before issuedAt", ErrInvalidInterval)
	}

	units := int64(elapsed / s.Unit)
	if elapsed%s.Unit != 0 {
		units++
	}

	return s.Rate.Mul(units), nil
}

// FlatRate фиксированный тариф, не зависящий от длительности стоянки.
// При нулевой настроенной сумме возвращает базовую сумму из контекста.
type FlatRate struct {
	Amount types.Money
}

// NewFlatRate создает фиксированный тариф.
func NewFlatRate(amount types.Money) *FlatRate {
	return &FlatRate{Amount: amount}
}

// Calculate возвращает настроенную сумму либо базовую из контекста.
func (s *FlatRate) Calculate(fc FeeContext) (types.Money, error) {
	if s.Amount > 0 {
		return s.Amount, nil
	}
	return fc.Base, nil
}
