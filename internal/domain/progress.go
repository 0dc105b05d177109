package domain

import "time"

// Metric identifies which measurement of a progress entry is being charted.
type Metric string

const (
	MetricWeight  Metric = "weight"
	MetricBodyFat Metric = "bodyFat"
)

// IsValid reports whether m is a chartable metric.
func (m Metric) IsValid() bool {
	return m == MetricWeight || m == MetricBodyFat
}

// Measurements are optional body measurements recorded with a progress entry,
// all in centimeters.
type Measurements struct {
	Chest  *float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist  *float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips   *float64 `bson:"hips,omitempty" json:"hips,omitempty"`
	Arms   *float64 `bson:"arms,omitempty" json:"arms,omitempty"`
	Thighs *float64 `bson:"thighs,omitempty" json:"thighs,omitempty"`
}

// ProgressEntry is one dated measurement snapshot for a client. Entries are
// append-only; there is no edit or delete path.
type ProgressEntry struct {
	ID           string        `bson:"id" json:"id"`
	ClientID     string        `bson:"clientId" json:"clientId"`
	Date         time.Time     `bson:"date" json:"date"`
	Weight       *float64      `bson:"weight,omitempty" json:"weight,omitempty"`   // kg
	BodyFat      *float64      `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"` // percent
	Notes        string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Measurements *Measurements `bson:"measurements,omitempty" json:"measurements,omitempty"`
}

// MetricValue returns the entry's value for the given metric, or nil when the
// metric was not recorded.
func (p *ProgressEntry) MetricValue(m Metric) *float64 {
	switch m {
	case MetricWeight:
		return p.Weight
	case MetricBodyFat:
		return p.BodyFat
	default:
		return nil
	}
}
