package gym

import (
	"regexp"
	"strings"
	"time"
)

type Gym struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Location     string    `db:"location" json:"location"`
	Phone        string    `db:"phone" json:"phone"`
	Email        string    `db:"email" json:"email"`
	Hours        string    `db:"hours" json:"hours"`
	Image        *string   `db:"image" json:"image,omitempty"`
	AdminCode    string    `db:"admin_code" json:"adminCode,omitempty"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Public strips credentials before the record leaves an unauthenticated
// endpoint.
func (g Gym) Public() Gym {
	g.AdminCode = ""
	g.PasswordHash = nil
	return g
}

// Schedule is one weekly operating-hours entry.
type Schedule struct {
	ID        int    `db:"id" json:"id"`
	GymID     int    `db:"gym_id" json:"gymId"`
	DayOfWeek string `db:"day_of_week" json:"dayOfWeek"`
	OpenTime  string `db:"open_time" json:"openTime"`
	CloseTime string `db:"close_time" json:"closeTime"`
	IsClosed  bool   `db:"is_closed" json:"isClosed"`
}

type CreateGymRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Hours    string `json:"hours" binding:"required"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`
}

type UpdateGymRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Hours    string `json:"hours" binding:"required"`
	Image    string `json:"image"`
	Slug     string `json:"slug"`
}

type LoginRequest struct {
	AdminCode string `json:"adminCode" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type VerifyAccessRequest struct {
	AccessID string `json:"accessId" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

type ScheduleInput struct {
	DayOfWeek string `json:"dayOfWeek" binding:"required"`
	OpenTime  string `json:"openTime" binding:"required"`
	CloseTime string `json:"closeTime" binding:"required"`
	IsClosed  bool   `json:"isClosed"`
}

type UpdateSchedulesRequest struct {
	Schedules []ScheduleInput `json:"schedules" binding:"required,dive"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)

// Slugify derives a URL slug from a display name: "Tessalp Centro" becomes
// "tessalp-centro".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	return slugStrip.ReplaceAllString(s, "")
}
