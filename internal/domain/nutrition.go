package domain

import "time"

// NutritionEntry records food intake at a point in time. Macros are grams.
type NutritionEntry struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Date     time.Time `json:"date"`
	Calories int       `json:"calories"`
	Protein  *float64  `json:"protein"`
	Carbs    *float64  `json:"carbs"`
	Fat      *float64  `json:"fat"`
	Notes    *string   `json:"notes"`
}

type NewNutritionEntry struct {
	UserID   int64     `json:"userId"`
	Date     Timestamp `json:"date"`
	Calories int       `json:"calories"`
	Protein  *Decimal  `json:"protein"`
	Carbs    *Decimal  `json:"carbs"`
	Fat      *Decimal  `json:"fat"`
	Notes    *string   `json:"notes"`
}

func (n NewNutritionEntry) Validate() error {
	var v validator
	v.requireID("userId", n.UserID)
	v.requireTime("date", n.Date)
	v.minInt("calories", n.Calories, 1)
	v.nonNegativeDecimal("protein", n.Protein)
	v.nonNegativeDecimal("carbs", n.Carbs)
	v.nonNegativeDecimal("fat", n.Fat)
	return v.err()
}

func (n NewNutritionEntry) NutritionEntry() NutritionEntry {
	return NutritionEntry{
		UserID:   n.UserID,
		Date:     NormalizeTime(n.Date.Time),
		Calories: n.Calories,
		Protein:  decimalPtr(n.Protein),
		Carbs:    decimalPtr(n.Carbs),
		Fat:      decimalPtr(n.Fat),
		Notes:    n.Notes,
	}
}

type NutritionEntryPatch struct {
	UserID   *int64     `json:"userId"`
	Date     *Timestamp `json:"date"`
	Calories *int       `json:"calories"`
	Protein  *Decimal   `json:"protein"`
	Carbs    *Decimal   `json:"carbs"`
	Fat      *Decimal   `json:"fat"`
	Notes    *string    `json:"notes"`
}

func (p NutritionEntryPatch) Validate() error {
	var v validator
	if p.UserID != nil {
		v.requireID("userId", *p.UserID)
	}
	v.optionalTime("date", p.Date)
	if p.Calories != nil {
		v.minInt("calories", *p.Calories, 1)
	}
	v.nonNegativeDecimal("protein", p.Protein)
	v.nonNegativeDecimal("carbs", p.Carbs)
	v.nonNegativeDecimal("fat", p.Fat)
	return v.err()
}

func (p NutritionEntryPatch) Apply(e NutritionEntry) NutritionEntry {
	if p.UserID != nil {
		e.UserID = *p.UserID
	}
	if p.Date != nil {
		e.Date = NormalizeTime(p.Date.Time)
	}
	if p.Calories != nil {
		e.Calories = *p.Calories
	}
	if p.Protein != nil {
		e.Protein = decimalPtr(p.Protein)
	}
	if p.Carbs != nil {
		e.Carbs = decimalPtr(p.Carbs)
	}
	if p.Fat != nil {
		e.Fat = decimalPtr(p.Fat)
	}
	if p.Notes != nil {
		e.Notes = p.Notes
	}
	return e
}
