package strategy

import "github.com/m04kA/SMC-ParkingService/pkg/types"

// Discount скидка, применяемая к предварительной стоимости. Каждая скидка
// считается от одной и той же суммы до скидок, эффекты суммируются: порядок
// применения не влияет на итог.
type Discount interface {
	// Apply возвращает размер скидки от указанной суммы
	Apply(subtotal types.Money) types.Money
}

// PercentDiscount процентная скидка.
type PercentDiscount struct {
	Percent float64
}

// Apply возвращает процент от суммы.
func (d PercentDiscount) Apply(subtotal types.Money) types.Money {
	return subtotal.MulPercent(d.Percent)
}

// FlatDiscount фиксированная скидка.
type FlatDiscount struct {
	Amount types.Money
}

// Apply возвращает фиксированную сумму скидки.
func (d FlatDiscount) Apply(subtotal types.Money) types.Money {
	return d.Amount
}
