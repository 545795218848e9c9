package registrations

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"coderfest/models"
	"coderfest/services"
	"coderfest/utils"
	"coderfest/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// FilterRegistrations keeps the records matching the search term on leader
// name, leader contact or team name. An empty term keeps everything. Name
// matching is case-insensitive, contact matching is literal, mirroring the
// dashboard search box.
func FilterRegistrations(registrations []models.Registration, term string) []models.Registration {
	if term == "" {
		return registrations
	}
	lowered := strings.ToLower(term)
	filtered := make([]models.Registration, 0, len(registrations))
	for _, reg := range registrations {
		if strings.Contains(strings.ToLower(reg.LeaderName), lowered) ||
			strings.Contains(reg.LeaderContact, term) ||
			strings.Contains(strings.ToLower(reg.TeamName), lowered) {
			filtered = append(filtered, reg)
		}
	}
	return filtered
}

// ExportRegistrations downloads the (optionally filtered) registration set
// @Summary Export registrations
// @Description Streams the registration set as CSV or XLSX, optionally filtered by a search term over leader name, contact and team name
// @Tags Registrations
// @Produce octet-stream
// @Param format query string false "Export format: csv (default) or xlsx"
// @Param q query string false "Search term"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /registrations/export [get]
// @Security Bearer
func ExportRegistrations(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		response.Error(c, http.StatusBadRequest, ErrUnsupportedFormat)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DatabaseTimeout)
	defer cancel()

	registrations, err := services.ListRegistrations(ctx)
	if err != nil {
		log.Printf("Error fetching registrations for export: %v", err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrFetchFailed, err.Error())
		return
	}
	registrations = FilterRegistrations(registrations, c.Query("q"))

	filename := fmt.Sprintf("coderfest-registrations-%d.%s", time.Now().UnixMilli(), format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if format == "csv" {
		c.Data(http.StatusOK, "text/csv", []byte(utils.RegistrationsToCSV(registrations)))
		return
	}

	if err := writeXLSX(c, registrations); err != nil {
		log.Printf("Error writing XLSX export: %v", err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrExportFailed, err.Error())
	}
}

func writeXLSX(c *gin.Context, registrations []models.Registration) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range utils.RegistrationExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	for row, reg := range registrations {
		for col, value := range utils.RegistrationExportRow(reg) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	_, err := f.WriteTo(c.Writer)
	return err
}
