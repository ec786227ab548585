package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "whole units", input: "10", want: 1000},
		{name: "two decimal places", input: "10.50", want: 1050},
		{name: "one decimal place", input: "10.5", want: 1050},
		{name: "zero", input: "0.00", want: 0},
		{name: "negative", input: "-3.50", want: -350},
		{name: "with spaces", input: "  20.00 ", want: 2000},
		{name: "empty", input: "", wantErr: true},
		{name: "three decimal places", input: "10.005", wantErr: true},
		{name: "not a number", input: "ten", wantErr: true},
		{name: "trailing dot", input: "10.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidMoney)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "20.00", Money(2000).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-3.50", Money(-350).String())
	assert.Equal(t, "0.00", Money(0).String())
}

func TestMoney_Mul(t *testing.T) {
	assert.Equal(t, Money(2000), Money(1000).Mul(2))
	assert.Equal(t, Money(0), Money(1000).Mul(0))
}

func TestMoney_MulPercent(t *testing.T) {
	assert.Equal(t, Money(100), Money(1000).MulPercent(10))
	assert.Equal(t, Money(888), Money(10000).MulPercent(8.875))
	assert.Equal(t, Money(0), Money(1000).MulPercent(0))
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(Money(2000))
	require.NoError(t, err)
	assert.Equal(t, `"20.00"`, string(data))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"10.50"`), &m))
	assert.Equal(t, Money(1050), m)
}
