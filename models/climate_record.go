package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar date format used by forms, JSON payloads and
// the weather adapter.
const DateLayout = "2006-01-02"

// ClimateRecord is a single climate observation for a country/region on a
// calendar date. Records are not owned by any account.
type ClimateRecord struct {
	// ID is the generated unique identifier of the record.
	ID int64 `json:"id"`

	Country string `json:"country"`
	Region  string `json:"region"`

	// Date is a calendar date; any time-of-day component is ignored.
	Date time.Time `json:"date"`

	// Temperature in degrees Celsius.
	Temperature float64 `json:"temperature"`
	// Rainfall in millimetres.
	Rainfall float64 `json:"rainfall"`
	// CO2 concentration in ppm.
	CO2 float64 `json:"co2"`
	// Humidity in percent.
	Humidity float64 `json:"humidity"`
}

// TableName returns the name of the database table
// associated with the ClimateRecord model.
func (r ClimateRecord) TableName() string {
	return "climate_data"
}

// MarshalJSON renders Date as YYYY-MM-DD.
func (r ClimateRecord) MarshalJSON() ([]byte, error) {
	type alias ClimateRecord
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{
		alias: alias(r),
		Date:  r.Date.Format(DateLayout),
	})
}

// NormalizeDate truncates t to a UTC calendar date.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
