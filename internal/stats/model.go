package stats

// Metric is a value with its percentage trend versus the prior period.
type Metric struct {
	Value float64 `json:"value"`
	Trend float64 `json:"trend"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type Dashboard struct {
	ActiveMembers    Metric     `json:"activeMembers"`
	TodayCheckins    Metric     `json:"todayCheckins"`
	MonthlyRevenue   Metric     `json:"monthlyRevenue"`
	NewMemberships   Metric     `json:"newMemberships"`
	WeeklyAttendance []DayCount `json:"weeklyAttendance"`
	TotalMembers     int        `json:"totalMembers"`
}
