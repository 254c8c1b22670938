package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_FromFloat64(t *testing.T) {
	assert.Equal(t, Quantity(25000), NewQuantityFromFloat64(2.5))
	assert.Equal(t, Quantity(-25000), NewQuantityFromFloat64(-2.5))
	assert.Equal(t, Quantity(1), NewQuantityFromFloat64(0.0001))
	// Rounds to the nearest fixed-point step.
	assert.Equal(t, Quantity(1), NewQuantityFromFloat64(0.00006))
	assert.Equal(t, Quantity(0), NewQuantityFromFloat64(0.00004))
}

func TestQuantity_String(t *testing.T) {
	tests := []struct {
		q    Quantity
		want string
	}{
		{0, "0.0000"},
		{25000, "2.5000"},
		{-25000, "-2.5000"},
		{1, "0.0001"},
		{-1, "-0.0001"},
		{1234567, "123.4567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.q.String())
	}
}

func TestQuantity_Mul(t *testing.T) {
	// 4 units x 2.5 per unit = 10
	assert.Equal(t, NewQuantityFromFloat64(10), NewQuantityFromFloat64(4).Mul(NewQuantityFromFloat64(2.5)))
	assert.Equal(t, NewQuantityFromFloat64(-96), NewQuantityFromFloat64(4).Mul(NewQuantityFromFloat64(24)).Neg())
	assert.Equal(t, Quantity(0), NewQuantityFromFloat64(5).Mul(0))
}

func TestQuantity_Arithmetic(t *testing.T) {
	a := NewQuantityFromFloat64(3)
	b := NewQuantityFromFloat64(1.25)

	assert.Equal(t, NewQuantityFromFloat64(4.25), a.Add(b))
	assert.Equal(t, NewQuantityFromFloat64(1.75), a.Sub(b))
	assert.Equal(t, NewQuantityFromFloat64(1.25), b.Neg().Abs())
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, b.Neg().IsNegative())
}

func TestQuantity_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewQuantityFromFloat64(2.5))
	require.NoError(t, err)
	assert.Equal(t, "2.5000", string(data))
}

func TestQuantity_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Quantity
	}{
		{"number", `2.5`, 25000},
		{"integer", `7`, 70000},
		{"string", `"2.5"`, 25000},
		{"negative", `-0.0001`, -1},
		{"null", `null`, 0},
		{"excess digits truncated", `1.00005`, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quantity
			require.NoError(t, json.Unmarshal([]byte(tt.input), &q))
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestQuantity_UnmarshalJSON_Invalid(t *testing.T) {
	var q Quantity
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &q))
}

func TestMoney(t *testing.T) {
	m := MustMoney("249.00")
	assert.True(t, m.Equal(NewMoney(249)))
	assert.True(t, Zero().IsZero())

	_, err := NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}
