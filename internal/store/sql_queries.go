// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/climate-dashboard/models"
	sq "github.com/Masterminds/squirrel"
)

// usersColumns is the canonical column order for scanning a [models.User].
var usersColumns = []string{"id", "name", "email", "password", "role"}

// climateColumns is the canonical column order for scanning a
// [models.ClimateRecord].
var climateColumns = []string{
	"id", "country", "region", "date",
	"temperature", "rainfall", "co2", "humidity",
}

// roundedAvg renders ROUND(AVG(column), places) in a form accepted by both
// PostgreSQL and SQLite. PostgreSQL only rounds NUMERIC to a given scale,
// so the average is cast first.
func roundedAvg(column string, places int) string {
	return fmt.Sprintf("ROUND(CAST(AVG(%s) AS NUMERIC), %d)", column, places)
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, string(user.Role)).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(usersColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(usersColumns...).
		From(models.User{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildUpdateUserProfileQuery(b sq.StatementBuilderType, userID int64, name, email string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("name", name).
		Set("email", email).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateUserPasswordQuery(b sq.StatementBuilderType, userID int64, password string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("password", password).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertRecordQuery(b sq.StatementBuilderType, record models.ClimateRecord) (string, []any, error) {
	return b.Insert(models.ClimateRecord{}.TableName()).
		Columns("country", "region", "date", "temperature", "rainfall", "co2", "humidity").
		Values(
			record.Country,
			record.Region,
			models.NormalizeDate(record.Date),
			record.Temperature,
			record.Rainfall,
			record.CO2,
			record.Humidity,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectRecordQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(climateColumns...).
		From(models.ClimateRecord{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectRecentRecordsQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	return b.Select(climateColumns...).
		From(models.ClimateRecord{}.TableName()).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
}

func buildUpdateRecordQuery(b sq.StatementBuilderType, record models.ClimateRecord) (string, []any, error) {
	return b.Update(models.ClimateRecord{}.TableName()).
		SetMap(map[string]any{
			"country":     record.Country,
			"region":      record.Region,
			"date":        models.NormalizeDate(record.Date),
			"temperature": record.Temperature,
			"rainfall":    record.Rainfall,
			"co2":         record.CO2,
			"humidity":    record.Humidity,
		}).
		Where(sq.Eq{"id": record.ID}).
		ToSql()
}

func buildDeleteRecordQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.ClimateRecord{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCountRecordsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(models.ClimateRecord{}.TableName()).
		ToSql()
}

func buildSummaryQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(
		"COUNT(*)",
		roundedAvg("temperature", 1),
		roundedAvg("co2", 1),
		roundedAvg("humidity", 1),
		"COUNT(DISTINCT country)",
	).
		From(models.ClimateRecord{}.TableName()).
		ToSql()
}

// buildCountryReportQuery groups records by country, rounding averages to
// places decimals, hottest country first.
func buildCountryReportQuery(b sq.StatementBuilderType, places int) (string, []any, error) {
	return b.Select(
		"country",
		roundedAvg("temperature", places)+" AS avg_temp",
		roundedAvg("co2", places)+" AS avg_co2",
		roundedAvg("humidity", places)+" AS avg_humidity",
		roundedAvg("rainfall", places)+" AS avg_rainfall",
		"COUNT(*) AS total_rows",
	).
		From(models.ClimateRecord{}.TableName()).
		GroupBy("country").
		OrderBy("avg_temp DESC").
		ToSql()
}
