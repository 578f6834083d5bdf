package types

import (
	"time"

	"github.com/google/uuid"
)

// PlanHistoryRecord is the persisted summary of a generated plan.
type PlanHistoryRecord struct {
	ID                uuid.UUID `json:"id"`
	City              string    `json:"city"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	Travelers         int       `json:"travelers"`
	TotalAttractions  int       `json:"total_attractions"`
	TotalEvents       int       `json:"total_events"`
	ModerateTripTotal float64   `json:"moderate_trip_total"`
	Currency          string    `json:"currency"`
	CreatedAt         time.Time `json:"created_at"`
}
