package utils

import (
	"strings"
	"time"

	"coderfest/models"
)

// RegistrationExportHeaders are the columns of the admin export, in order
var RegistrationExportHeaders = []string{
	"Registration ID",
	"Team Leader Name",
	"Contact Number",
	"Team Name",
	"College",
	"Email",
	"Registration Date",
	"Status",
}

// RegistrationExportRow flattens one registration into export cells
func RegistrationExportRow(reg models.Registration) []string {
	return []string{
		reg.RegistrationID,
		reg.LeaderName,
		reg.LeaderContact,
		reg.TeamName,
		reg.CollegeName,
		reg.LeaderEmail,
		FormatRegisteredAt(reg.RegisteredAt),
		reg.Status,
	}
}

// RegistrationsToCSV renders registrations as CSV, one header line plus one
// line per registration, no trailing newline.
func RegistrationsToCSV(registrations []models.Registration) string {
	lines := make([]string, 0, len(registrations)+1)
	lines = append(lines, csvLine(RegistrationExportHeaders))
	for _, reg := range registrations {
		lines = append(lines, csvLine(RegistrationExportRow(reg)))
	}
	return strings.Join(lines, "\n")
}

// csvLine quotes every cell unconditionally; encoding/csv only quotes cells
// that need it, and the dashboard's download contract quotes all of them.
func csvLine(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// FormatRegisteredAt renders the stored RFC 3339 timestamp as a locale-style
// date-time. Unparseable values pass through untouched.
func FormatRegisteredAt(registeredAt string) string {
	t, err := time.Parse(time.RFC3339, registeredAt)
	if err != nil {
		return registeredAt
	}
	return t.Format("02/01/2006, 15:04:05")
}
