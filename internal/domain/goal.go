package domain

import (
	"encoding/json"
	"math"
	"time"
)

// Goal statuses offered by the client.
const (
	GoalStatusInProgress = "in-progress"
	GoalStatusCompleted  = "completed"
	GoalStatusAbandoned  = "abandoned"
)

// Goal is a measurable target a user works toward.
type Goal struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	TargetDate   time.Time `json:"targetDate"`
	CurrentValue float64   `json:"currentValue"`
	TargetValue  float64   `json:"targetValue"`
	Unit         string    `json:"unit"`
	Status       string    `json:"status"`
}

// maxProgress caps Progress for a current value far beyond a tiny target.
const maxProgress = math.MaxInt32

// Progress is the rounded percentage of the target reached so far, clamped to
// [0, maxProgress].
func (g Goal) Progress() int {
	if g.TargetValue <= 0 {
		return 0
	}
	pct := math.Round(g.CurrentValue / g.TargetValue * 100)
	switch {
	case math.IsNaN(pct) || pct <= 0:
		return 0
	case pct >= maxProgress:
		return maxProgress
	}
	return int(pct)
}

// MarshalJSON adds the derived progress to the stored fields.
func (g Goal) MarshalJSON() ([]byte, error) {
	type stored Goal
	return json.Marshal(struct {
		stored
		Progress int `json:"progress"`
	}{stored: stored(g), Progress: g.Progress()})
}

type NewGoal struct {
	UserID       int64     `json:"userId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	TargetDate   Timestamp `json:"targetDate"`
	CurrentValue *Decimal  `json:"currentValue"`
	TargetValue  *Decimal  `json:"targetValue"`
	Unit         string    `json:"unit"`
	Status       string    `json:"status"`
}

func (n NewGoal) Validate() error {
	var v validator
	v.requireID("userId", n.UserID)
	v.requireString("name", n.Name)
	v.requireString("description", n.Description)
	v.requireTime("targetDate", n.TargetDate)
	if n.CurrentValue == nil {
		v.add("currentValue", "is required")
	}
	v.nonNegativeDecimal("currentValue", n.CurrentValue)
	validateTargetValue(&v, n.TargetValue, true)
	v.requireString("unit", n.Unit)
	v.requireString("status", n.Status)
	return v.err()
}

func validateTargetValue(v *validator, value *Decimal, required bool) {
	switch {
	case value == nil:
		if required {
			v.add("targetValue", "is required")
		}
	case *value <= 0:
		v.add("targetValue", "must be greater than 0")
	}
}

func (n NewGoal) Goal() Goal {
	g := Goal{
		UserID:      n.UserID,
		Name:        n.Name,
		Description: n.Description,
		TargetDate:  NormalizeTime(n.TargetDate.Time),
		Unit:        n.Unit,
		Status:      n.Status,
	}
	if n.CurrentValue != nil {
		g.CurrentValue = float64(*n.CurrentValue)
	}
	if n.TargetValue != nil {
		g.TargetValue = float64(*n.TargetValue)
	}
	return g
}

type GoalPatch struct {
	UserID       *int64     `json:"userId"`
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	TargetDate   *Timestamp `json:"targetDate"`
	CurrentValue *Decimal   `json:"currentValue"`
	TargetValue  *Decimal   `json:"targetValue"`
	Unit         *string    `json:"unit"`
	Status       *string    `json:"status"`
}

func (p GoalPatch) Validate() error {
	var v validator
	if p.UserID != nil {
		v.requireID("userId", *p.UserID)
	}
	v.optionalString("name", p.Name)
	v.optionalString("description", p.Description)
	v.optionalTime("targetDate", p.TargetDate)
	v.nonNegativeDecimal("currentValue", p.CurrentValue)
	validateTargetValue(&v, p.TargetValue, false)
	v.optionalString("unit", p.Unit)
	v.optionalString("status", p.Status)
	return v.err()
}

func (p GoalPatch) Apply(g Goal) Goal {
	if p.UserID != nil {
		g.UserID = *p.UserID
	}
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.TargetDate != nil {
		g.TargetDate = NormalizeTime(p.TargetDate.Time)
	}
	if p.CurrentValue != nil {
		g.CurrentValue = float64(*p.CurrentValue)
	}
	if p.TargetValue != nil {
		g.TargetValue = float64(*p.TargetValue)
	}
	if p.Unit != nil {
		g.Unit = *p.Unit
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	return g
}
