package models

// Summary is the single-row aggregate shown on the dashboard.
// Averages are nil when the store is empty.
type Summary struct {
	TotalRecords   int64    `json:"total_records"`
	AvgTemp        *float64 `json:"avg_temp"`
	AvgCO2         *float64 `json:"avg_co2"`
	AvgHumidity    *float64 `json:"avg_humidity"`
	TotalCountries int64    `json:"total_countries"`
}

// CountryReport holds per-country averages.
type CountryReport struct {
	Country     string   `json:"country"`
	AvgTemp     *float64 `json:"avg_temp"`
	AvgCO2      *float64 `json:"avg_co2"`
	AvgHumidity *float64 `json:"avg_humidity"`
	AvgRainfall *float64 `json:"avg_rainfall"`
	TotalRows   int64    `json:"total_rows"`
}

// ChartSeries is the per-country report reshaped into parallel arrays for a
// charting front end. Index i of every slice belongs to Labels[i].
type ChartSeries struct {
	Labels      []string   `json:"labels"`
	Temperature []*float64 `json:"temperature"`
	CO2         []*float64 `json:"co2"`
	Humidity    []*float64 `json:"humidity"`
	Rainfall    []*float64 `json:"rainfall"`
}

// NewChartSeries reshapes rows, preserving their order.
func NewChartSeries(rows []CountryReport) ChartSeries {
	series := ChartSeries{
		Labels:      make([]string, 0, len(rows)),
		Temperature: make([]*float64, 0, len(rows)),
		CO2:         make([]*float64, 0, len(rows)),
		Humidity:    make([]*float64, 0, len(rows)),
		Rainfall:    make([]*float64, 0, len(rows)),
	}

	for _, row := range rows {
		series.Labels = append(series.Labels, row.Country)
		series.Temperature = append(series.Temperature, row.AvgTemp)
		series.CO2 = append(series.CO2, row.AvgCO2)
		series.Humidity = append(series.Humidity, row.AvgHumidity)
		series.Rainfall = append(series.Rainfall, row.AvgRainfall)
	}

	return series
}

// Profile is the payload of the profile page.
type Profile struct {
	User         Researcher `json:"user"`
	TotalRecords int64      `json:"total_records"`
}
