// Package activity holds submitted activity records: an append-only store
// with JSON persistence and the aggregation over stored footprints.
package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/rshade/ecohub/internal/carbon"
)

// TimestampFormat is the record timestamp layout.
const TimestampFormat = "2006-01-02 15:04:05"

// Record is one submitted activity. Details carries the raw input fields
// exactly as provided; CarbonFootprint is the computed monthly kg CO2e,
// nil when calculation failed. Records are immutable once appended.
type Record struct {
	ID              string          `json:"id"`
	Timestamp       string          `json:"timestamp"`
	Category        carbon.Category `json:"category"`
	Details         map[string]any  `json:"activity_details"`
	CarbonFootprint *float64        `json:"carbon_footprint"`
}

// NewRecord builds a Record for a computed footprint, stamped with the
// current time and a fresh id.
func NewRecord(category carbon.Category, details map[string]any, kgCO2e float64) Record {
	fp := kgCO2e
	return Record{
		ID:              uuid.NewString(),
		Timestamp:       time.Now().Format(TimestampFormat),
		Category:        category,
		Details:         details,
		CarbonFootprint: &fp,
	}
}
