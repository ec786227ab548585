package strategy

import "github.com/m04kA/SMC-ParkingService/pkg/types"

// Invoice итоговый расчёт стоимости: тариф, скидки и налог.
// Скидки считаются от суммы до скидок и суммируются, налог начисляется на
// сумму после скидок. Итог не бывает отрицательным: скидки, превышающие
// стоимость, обнуляют счёт.
type Invoice struct {
	fee        Fee
	discounts  []Discount
	taxPercent float64
}

// NewInvoice создает расчёт с тарифом, набором скидок и ставкой налога
// в процентах.
func NewInvoice(fee Fee, discounts []Discount, taxPercent float64) *Invoice {
	return &Invoice{
		fee:        fee,
		discounts:  discounts,
		taxPercent: taxPercent,
	}
}

// Calculate возвращает итоговую сумму к оплате.
func (i *Invoice) Calculate(fc FeeContext) (types.Money, error) {
	subtotal, err := i.fee.Calculate(fc)
	if err != nil {
		return 0, err
	}

	var discountTotal types.Money
	for _, d := range i.discounts {
		discountTotal += d.Apply(subtotal)
	}

	taxable := subtotal - discountTotal
	if taxable < 0 {
		taxable = 0
	}

	return taxable + taxable.MulPercent(i.taxPercent), nil
}
