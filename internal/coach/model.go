package coach

import "time"

type Profile struct {
	ID        int       `db:"id" json:"id"`
	AccountID int       `db:"account_id" json:"accountId"`
	Specialty string    `db:"specialty" json:"specialty"`
	Bio       *string   `db:"bio" json:"bio,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ProfileWithAccount joins the portal account's display fields.
type ProfileWithAccount struct {
	Profile
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// ManagedMember is a roster entry the coach was approved to manage.
type ManagedMember struct {
	MemberID       int        `db:"member_id" json:"memberId"`
	Name           string     `db:"name" json:"name"`
	Email          string     `db:"email" json:"email"`
	MembershipType string     `db:"membership_type" json:"membershipType"`
	MembershipEnd  *time.Time `db:"membership_end" json:"membershipEnd,omitempty"`
	ApprovedAt     *time.Time `db:"approved_at" json:"approvedAt,omitempty"`
}

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Specialty string `json:"specialty" binding:"required"`
	Bio       string `json:"bio" binding:"max=1000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type DashboardResponse struct {
	Coach   ProfileWithAccount `json:"coach"`
	Members []ManagedMember    `json:"members"`
}
