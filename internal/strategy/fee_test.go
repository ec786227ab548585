package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func TestHourlyRate_CeilingRule(t *testing.T) {
	// Тариф 10.00 за час
	rate := NewHourlyRate(types.Money(1000), time.Hour)
	issuedAt := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    types.Money
	}{
		{name: "zero duration bills nothing", elapsed: 0, want: 0},
		{name: "one second bills one unit", elapsed: time.Second, want: 1000},
		{name: "exactly one hour bills one unit", elapsed: 3600 * time.Second, want: 1000},
		{name: "one hour plus one second bills two units", elapsed: 3601 * time.Second, want: 2000},
		{name: "two hours bills two units", elapsed: 2 * time.Hour, want: 2000},
		{name: "25 hours bills 25 units", elapsed: 25 * time.Hour, want: 25000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rate.Calculate(FeeContext{
				IssuedAt: issuedAt,
				ClosedAt: issuedAt.Add(tt.elapsed),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHourlyRate_NegativeInterval(t *testing.T) {
	rate := NewHourlyRate(types.Money(1000), time.Hour)
	issuedAt := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	_, err := rate.Calculate(FeeContext{
		IssuedAt: issuedAt,
		ClosedAt: issuedAt.Add(-time.Minute),
	})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestHourlyRate_CustomUnit(t *testing.T) {
	// Тариф 2.50 за 15 минут
	rate := NewHourlyRate(types.Money(250), 15*time.Minute)
	issuedAt := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	got, err := rate.Calculate(FeeContext{
		IssuedAt: issuedAt,
		ClosedAt: issuedAt.Add(16 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, types.Money(500), got)
}

func TestFlatRate(t *testing.T) {
	flat := NewFlatRate(types.Money(500))
	got, err := flat.Calculate(FeeContext{})
	require.NoError(t, err)
	assert.Equal(t, types.Money(500), got)

	// Нулевой тариф возвращает базовую сумму из контекста
	zero := NewFlatRate(0)
	got, err = zero.Calculate(FeeContext{Base: types.Money(750)})
	require.NoError(t, err)
	assert.Equal(t, types.Money(750), got)
}
