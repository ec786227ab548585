package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money денежная сумма в минимальных единицах валюты (копейках/центах).
// Целочисленное представление исключает ошибки округления float64
// в тарифных расчётах.
type Money int64

var (
	// ErrInvalidMoney возвращается при некорректном строковом формате суммы
	ErrInvalidMoney = errors.New("types: invalid money format")
)

// ParseMoney разбирает строку вида "10", "10.5" или "10.50" в Money.
// Допускается не более двух знаков после точки.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidMoney)
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" || (hasFrac && fracPart == "") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}

	var cents int64
	if hasFrac {
		if len(fracPart) > 2 {
			return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidMoney, s)
		}
		cents, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
		}
		if len(fracPart) == 1 {
			cents *= 10
		}
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Money(total), nil
}

// String форматирует сумму как десятичную строку с двумя знаками: "20.00".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Mul умножает сумму на целый множитель.
func (m Money) Mul(n int64) Money {
	return Money(int64(m) * n)
}

// MulPercent возвращает указанный процент от суммы с округлением
// до ближайшей минимальной единицы.
func (m Money) MulPercent(percent float64) Money {
	return Money(math.Round(float64(m) * percent / 100))
}

// MarshalText сериализует сумму в текстовый формат (для TOML конфигурации).
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText десериализует сумму из текстового формата.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalJSON сериализует сумму как JSON строку "20.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON десериализует сумму из JSON строки.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMoney, err)
	}
	return m.UnmarshalText([]byte(s))
}
