package domain

import "time"

// ActivityLog holds the day's movement totals for a user.
type ActivityLog struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Date           time.Time `json:"date"`
	Steps          *int      `json:"steps"`
	ActiveMinutes  *int      `json:"activeMinutes"`
	CaloriesBurned *int      `json:"caloriesBurned"`
}

type NewActivityLog struct {
	UserID         int64     `json:"userId"`
	Date           Timestamp `json:"date"`
	Steps          *int      `json:"steps"`
	ActiveMinutes  *int      `json:"activeMinutes"`
	CaloriesBurned *int      `json:"caloriesBurned"`
}

func (n NewActivityLog) Validate() error {
	var v validator
	v.requireID("userId", n.UserID)
	v.requireTime("date", n.Date)
	v.nonNegative("steps", n.Steps)
	v.nonNegative("activeMinutes", n.ActiveMinutes)
	v.nonNegative("caloriesBurned", n.CaloriesBurned)
	return v.err()
}

func (n NewActivityLog) ActivityLog() ActivityLog {
	return ActivityLog{
		UserID:         n.UserID,
		Date:           NormalizeTime(n.Date.Time),
		Steps:          n.Steps,
		ActiveMinutes:  n.ActiveMinutes,
		CaloriesBurned: n.CaloriesBurned,
	}
}

type ActivityLogPatch struct {
	UserID         *int64     `json:"userId"`
	Date           *Timestamp `json:"date"`
	Steps          *int       `json:"steps"`
	ActiveMinutes  *int       `json:"activeMinutes"`
	CaloriesBurned *int       `json:"caloriesBurned"`
}

func (p ActivityLogPatch) Validate() error {
	var v validator
	if p.UserID != nil {
		v.requireID("userId", *p.UserID)
	}
	v.optionalTime("date", p.Date)
	v.nonNegative("steps", p.Steps)
	v.nonNegative("activeMinutes", p.ActiveMinutes)
	v.nonNegative("caloriesBurned", p.CaloriesBurned)
	return v.err()
}

func (p ActivityLogPatch) Apply(l ActivityLog) ActivityLog {
	if p.UserID != nil {
		l.UserID = *p.UserID
	}
	if p.Date != nil {
		l.Date = NormalizeTime(p.Date.Time)
	}
	if p.Steps != nil {
		l.Steps = p.Steps
	}
	if p.ActiveMinutes != nil {
		l.ActiveMinutes = p.ActiveMinutes
	}
	if p.CaloriesBurned != nil {
		l.CaloriesBurned = p.CaloriesBurned
	}
	return l
}
