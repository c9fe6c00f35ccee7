package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petmarket/PSM-BookingGateway/pkg/ptr"
)

func TestFinalPrice(t *testing.T) {
	cases := []struct {
		name     string
		price    *float64
		discount float64
		want     float64
	}{
		{"no discount", ptr.Ptr(1000.0), 0, 1000.0},
		{"regular discount", ptr.Ptr(1000.0), 25, 750.0},
		{"half discount", ptr.Ptr(200.0), 50, 100.0},
		{"nil price treated as zero", nil, 30, 0},
		{"nil price without discount", nil, 0, 0},
		{"negative discount ignored", ptr.Ptr(500.0), -10, 500.0},
		{"discount above hundred clamps to zero", ptr.Ptr(500.0), 150, 0},
		{"full discount", ptr.Ptr(500.0), 100, 0},
		{"negative price treated as zero", ptr.Ptr(-100.0), 20, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinalPrice(tt.price, tt.discount))
		})
	}
}

// Итоговая цена никогда не превышает базовую и не бывает отрицательной,
// какой бы процент скидки ни пришёл из справочных данных
func TestFinalPriceBounds(t *testing.T) {
	prices := []float64{0, 1, 99.99, 1500, 100000}
	discounts := []float64{-50, 0, 1, 33.3, 99, 100, 250}

	for _, p := range prices {
		for _, d := range discounts {
			got := FinalPrice(ptr.Ptr(p), d)

			assert.GreaterOrEqual(t, got, 0.0, "price=%v discount=%v", p, d)
			assert.LessOrEqual(t, got, p, "price=%v discount=%v", p, d)

			if d == 0 {
				assert.Equal(t, p, got, "zero discount must keep base price")
			}
		}
	}
}
