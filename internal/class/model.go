package class

import (
	"strings"
	"time"
)

type Class struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Instructor  string    `db:"instructor" json:"instructor"`
	DayOfWeek   string    `db:"day_of_week" json:"dayOfWeek"`
	Time        string    `db:"time" json:"time"`
	Duration    int       `db:"duration" json:"duration"`
	Capacity    int       `db:"capacity" json:"capacity"`
	Description *string   `db:"description" json:"description,omitempty"`
	ClassType   *string   `db:"class_type" json:"classType,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type CreateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Instructor  string `json:"instructor" binding:"required"`
	DayOfWeek   string `json:"dayOfWeek" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Description string `json:"description"`
	ClassType   string `json:"classType"`
}

type UpdateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Instructor  string `json:"instructor" binding:"required"`
	DayOfWeek   string `json:"dayOfWeek" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	Description string `json:"description"`
	ClassType   string `json:"classType"`
}

var displayDays = map[string]string{
	"lunes":     "Lunes",
	"martes":    "Martes",
	"miercoles": "Miércoles",
	"miércoles": "Miércoles",
	"jueves":    "Jueves",
	"viernes":   "Viernes",
	"sabado":    "Sábado",
	"sábado":    "Sábado",
	"domingo":   "Domingo",
}

// DisplayDay maps a stored day token to its display form. Unknown values
// pass through untouched.
func DisplayDay(day string) string {
	if d, ok := displayDays[strings.ToLower(day)]; ok {
		return d
	}
	return day
}
