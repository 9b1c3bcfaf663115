package http

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/climate-dashboard/models"
)

// recordForm echoes a submitted climate record back to the client when it
// cannot be parsed.
type recordForm struct {
	Country     string `json:"country"`
	Region      string `json:"region"`
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	Rainfall    string `json:"rainfall"`
	CO2         string `json:"co2"`
	Humidity    string `json:"humidity"`
}

func readRecordForm(r *http.Request) recordForm {
	return recordForm{
		Country:     strings.TrimSpace(r.PostFormValue("country")),
		Region:      strings.TrimSpace(r.PostFormValue("region")),
		Date:        strings.TrimSpace(r.PostFormValue("date")),
		Temperature: strings.TrimSpace(r.PostFormValue("temperature")),
		Rainfall:    strings.TrimSpace(r.PostFormValue("rainfall")),
		CO2:         strings.TrimSpace(r.PostFormValue("co2")),
		Humidity:    strings.TrimSpace(r.PostFormValue("humidity")),
	}
}

// record parses the form. The first field that fails is reported as a
// [*RecordFieldError].
func (f recordForm) record() (models.ClimateRecord, error) {
	var record models.ClimateRecord

	if f.Country == "" {
		return record, &RecordFieldError{Field: "country"}
	}
	if f.Region == "" {
		return record, &RecordFieldError{Field: "region"}
	}
	record.Country = f.Country
	record.Region = f.Region

	date, err := time.Parse(models.DateLayout, f.Date)
	if err != nil {
		return record, &RecordFieldError{Field: "date"}
	}
	record.Date = models.NormalizeDate(date)

	numbers := []struct {
		field string
		value string
		dst   *float64
	}{
		{"temperature", f.Temperature, &record.Temperature},
		{"rainfall", f.Rainfall, &record.Rainfall},
		{"co2", f.CO2, &record.CO2},
		{"humidity", f.Humidity, &record.Humidity},
	}
	for _, n := range numbers {
		v, err := strconv.ParseFloat(n.value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return record, &RecordFieldError{Field: n.field}
		}
		*n.dst = v
	}

	return record, nil
}

func recordID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, ErrInvalidRecordID
	}
	return id, nil
}
