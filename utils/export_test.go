package utils

import (
	"strings"
	"testing"

	"coderfest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationsToCSVShape(t *testing.T) {
	regs := []models.Registration{
		{RegistrationID: "REG-1-a", LeaderName: "Asha", TeamName: "Null Pointers", RegisteredAt: "2025-11-20T10:30:00Z", Status: "confirmed"},
		{RegistrationID: "REG-2-b", LeaderName: "Ravi", TeamName: "Byte Club", RegisteredAt: "2025-11-21T09:00:00Z", Status: "confirmed"},
	}

	csv := RegistrationsToCSV(regs)
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, len(RegistrationExportHeaders), strings.Count(lines[0], ",")+1)
	assert.Contains(t, lines[1], `"20/11/2025, 10:30:00"`)
}

func TestRegistrationsToCSVEscapesQuotes(t *testing.T) {
	regs := []models.Registration{
		{RegistrationID: "REG-1-a", TeamName: `Team "Quoted"`, RegisteredAt: "2025-11-20T10:30:00Z"},
	}

	csv := RegistrationsToCSV(regs)
	assert.Contains(t, csv, `"Team ""Quoted"""`)
}

func TestRegistrationsToCSVEmptySet(t *testing.T) {
	csv := RegistrationsToCSV(nil)
	assert.Len(t, strings.Split(csv, "\n"), 1, "header only")
}

func TestFormatRegisteredAt(t *testing.T) {
	assert.Equal(t, "20/11/2025, 10:30:00", FormatRegisteredAt("2025-11-20T10:30:00Z"))
	assert.Equal(t, "garbage", FormatRegisteredAt("garbage"), "unparseable timestamps pass through")
}
