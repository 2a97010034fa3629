package member

import "time"

// UserAccount is a portal login (member or coach).
type UserAccount struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Member is a gym roster entry. AccountID is set once the member links a
// portal login; walk-in members created from the admin dashboard have none.
type Member struct {
	ID             int        `db:"id" json:"id"`
	GymID          int        `db:"gym_id" json:"gymId"`
	AccountID      *int       `db:"account_id" json:"accountId,omitempty"`
	Name           string     `db:"name" json:"name"`
	Email          string     `db:"email" json:"email"`
	MembershipType string     `db:"membership_type" json:"membershipType"`
	MembershipEnd  *time.Time `db:"membership_end" json:"membershipEnd,omitempty"`
	Status         string     `db:"status" json:"status"`
	CheckinCode    string     `db:"checkin_code" json:"checkinCode"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

// Purchase is a server-persisted membership purchase record.
type Purchase struct {
	ID          int       `db:"id" json:"id"`
	AccountID   int       `db:"account_id" json:"accountId"`
	GymID       *int      `db:"gym_id" json:"gymId,omitempty"`
	PlanName    string    `db:"plan_name" json:"planName"`
	Price       float64   `db:"price" json:"price"`
	Period      string    `db:"period" json:"period"`
	PurchasedAt time.Time `db:"purchased_at" json:"purchasedAt"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	User UserAccount `json:"user"`
}

type CreateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	MembershipType string `json:"membershipType" binding:"required"`
	MembershipEnd  string `json:"membershipEnd"`
	Status         string `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

type UpdateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	MembershipType string `json:"membershipType" binding:"required"`
	MembershipEnd  string `json:"membershipEnd"`
	Status         string `json:"status" binding:"required,oneof=active inactive suspended"`
}

type CreatePurchaseRequest struct {
	GymID    int     `json:"gymId" binding:"omitempty,gt=0"`
	PlanName string  `json:"planName" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Period   string  `json:"period" binding:"required,oneof=mes trimestre año"`
}
