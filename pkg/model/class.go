package model

import "time"

// FitnessClass is a scheduled class with a fixed capacity. IDs are
// assigned externally by the seeding path and never change. StartTime
// is the single source-of-truth instant, stored in UTC; the IST display
// value is derived from it, never stored separately.
type FitnessClass struct {
	ID              int       `json:"id" bson:"_id" validate:"required,min=1"`
	Name            string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Instructor      string    `json:"instructor" bson:"instructor" validate:"required,min=2,max=100"`
	StartTime       time.Time `json:"start_time" bson:"start_time" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes" validate:"required,min=1"`
	TotalSlots      int       `json:"total_slots" bson:"total_slots" validate:"required,min=1"`
	AvailableSlots  int       `json:"available_slots" bson:"available_slots" validate:"min=0"`
}

func (c *FitnessClass) IsAvailable() bool {
	return c.AvailableSlots > 0
}

// HasStarted reports whether the class is no longer bookable. A class
// starting exactly now counts as started, matching the strict "> now"
// rule used for listings.
func (c *FitnessClass) HasStarted(now time.Time) bool {
	return !c.StartTime.After(now)
}

// ClassView is the JSON shape served to clients. Both datetime fields
// render the one stored instant.
type ClassView struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DatetimeIST     string `json:"datetime_ist"`
	DatetimeUTC     string `json:"datetime_utc"`
	Instructor      string `json:"instructor"`
	AvailableSlots  int    `json:"available_slots"`
	TotalSlots      int    `json:"total_slots"`
	DurationMinutes int    `json:"duration_minutes"`
	IsAvailable     bool   `json:"is_available"`
}

func NewClassView(c *FitnessClass, display *time.Location) ClassView {
	return ClassView{
		ID:              c.ID,
		Name:            c.Name,
		DatetimeIST:     c.StartTime.In(display).Format(time.RFC3339),
		DatetimeUTC:     c.StartTime.UTC().Format(time.RFC3339),
		Instructor:      c.Instructor,
		AvailableSlots:  c.AvailableSlots,
		TotalSlots:      c.TotalSlots,
		DurationMinutes: c.DurationMinutes,
		IsAvailable:     c.IsAvailable(),
	}
}
