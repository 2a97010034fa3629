package checkin

import "time"

type Checkin struct {
	ID          int       `db:"id" json:"id"`
	GymID       int       `db:"gym_id" json:"gymId"`
	MemberID    int       `db:"member_id" json:"memberId"`
	CheckinTime time.Time `db:"checkin_time" json:"checkinTime"`
}

// Entry is a check-in joined with the member for the dashboard list.
type Entry struct {
	Checkin
	MemberName     string `db:"member_name" json:"memberName"`
	MembershipType string `db:"membership_type" json:"membershipType"`
}

type RecordRequest struct {
	Code string `json:"code" binding:"required,uuid"`
}

type RecordResponse struct {
	Message    string  `json:"message"`
	MemberName string  `json:"memberName"`
	Checkin    Checkin `json:"checkin"`
}
