package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPrice(t *testing.T) {
	cases := []struct {
		period string
		price  float64
		want   float64
	}{
		{PeriodMonthly, 899, 899},
		{PeriodQuarterly, 2400, 800},
		{PeriodYearly, 8400, 700},
		{"desconocido", 500, 500},
	}

	for _, tc := range cases {
		p := Plan{Price: tc.price, Period: tc.period}
		assert.InDelta(t, tc.want, p.MonthlyPrice(), 0.001, "period %s", tc.period)
	}
}
