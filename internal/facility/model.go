package facility

import (
	"time"

	"github.com/lib/pq"
)

type Facility struct {
	ID          int            `db:"id" json:"id"`
	GymID       int            `db:"gym_id" json:"gymId"`
	Name        string         `db:"name" json:"name"`
	Description *string        `db:"description" json:"description,omitempty"`
	Image       *string        `db:"image" json:"image,omitempty"`
	Features    pq.StringArray `db:"features" json:"features"`
	SortOrder   int            `db:"sort_order" json:"order"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
}

type Amenity struct {
	ID    int     `db:"id" json:"id"`
	GymID int     `db:"gym_id" json:"gymId"`
	Name  string  `db:"name" json:"name"`
	Icon  *string `db:"icon" json:"icon,omitempty"`
}

type CreateFacilityRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	Order       int      `json:"order"`
}

type UpdateFacilityRequest = CreateFacilityRequest

type AmenityInput struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

type ReplaceAmenitiesRequest struct {
	Amenities []AmenityInput `json:"amenities" binding:"required,dive"`
}

// ListResponse is the combined read the gym pages consume.
type ListResponse struct {
	Facilities []Facility `json:"facilities"`
	Amenities  []Amenity  `json:"amenities"`
}
