package instructor

import (
	"strings"
	"time"
)

type Instructor struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Specialty      string    `db:"specialty" json:"specialty"`
	Email          string    `db:"email" json:"email"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Experience     *string   `db:"experience" json:"experience,omitempty"`
	Certifications *string   `db:"certifications" json:"-"`
	Bio            *string   `db:"bio" json:"bio,omitempty"`
	Rating         float64   `db:"rating" json:"rating"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// View is the API shape, with certifications split into a list.
type View struct {
	Instructor
	Certifications []string `json:"certifications"`
}

// AsView splits the stored comma-separated certifications.
func (i Instructor) AsView() View {
	certs := []string{}
	if i.Certifications != nil {
		for _, c := range strings.Split(*i.Certifications, ",") {
			if c = strings.TrimSpace(c); c != "" {
				certs = append(certs, c)
			}
		}
	}
	return View{Instructor: i, Certifications: certs}
}

type CreateInstructorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialty      string   `json:"specialty" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications"`
	Bio            string   `json:"bio"`
	Rating         float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

type UpdateInstructorRequest = CreateInstructorRequest
