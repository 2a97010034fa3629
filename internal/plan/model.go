package plan

import (
	"time"

	"github.com/lib/pq"
)

const (
	PeriodMonthly   = "mes"
	PeriodQuarterly = "trimestre"
	PeriodYearly    = "año"
)

type Plan struct {
	ID          int            `db:"id" json:"id"`
	GymID       int            `db:"gym_id" json:"gymId"`
	Name        string         `db:"name" json:"name"`
	Price       float64        `db:"price" json:"price"`
	Period      string         `db:"period" json:"period"`
	Description *string        `db:"description" json:"description,omitempty"`
	Features    pq.StringArray `db:"features" json:"features"`
	Popular     bool           `db:"popular" json:"popular"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
}

// MonthlyPrice normalizes quarterly and yearly prices to a monthly figure.
func (p Plan) MonthlyPrice() float64 {
	switch p.Period {
	case PeriodQuarterly:
		return p.Price / 3
	case PeriodYearly:
		return p.Price / 12
	default:
		return p.Price
	}
}

type CreatePlanRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Period      string   `json:"period" binding:"required,oneof=mes trimestre año"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}

type UpdatePlanRequest = CreatePlanRequest
