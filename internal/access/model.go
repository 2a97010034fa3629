package access

import "time"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Request struct {
	ID          int        `db:"id" json:"id"`
	CoachID     int        `db:"coach_id" json:"coachId"`
	MemberID    int        `db:"member_id" json:"memberId"`
	Status      string     `db:"status" json:"status"`
	Notes       *string    `db:"notes" json:"notes,omitempty"`
	RequestedAt time.Time  `db:"requested_at" json:"requestedAt"`
	RespondedAt *time.Time `db:"responded_at" json:"respondedAt,omitempty"`
}

// MemberView is a request as the member sees it, joined with the coach.
type MemberView struct {
	Request
	CoachName  string `db:"coach_name" json:"coachName"`
	CoachEmail string `db:"coach_email" json:"coachEmail"`
}

// CoachView is a request as the coach sees it, joined with the member.
type CoachView struct {
	Request
	MemberName  string `db:"member_name" json:"memberName"`
	MemberEmail string `db:"member_email" json:"memberEmail"`
}

type CreateRequest struct {
	MemberID int    `json:"memberId" binding:"required,gt=0"`
	Notes    string `json:"notes" binding:"max=400"`
}

type RespondRequest struct {
	RequestID int    `json:"requestId" binding:"required,gt=0"`
	Action    string `json:"action" binding:"required"`
}

type RespondResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
