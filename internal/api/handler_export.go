package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"arrivals-backend/internal/export"
)

// ExportReport streams a report's guest records as a downloadable XLSX
// workbook or CSV file, selected by the format query parameter.
func (h *Handler) ExportReport(c *gin.Context) {
	reportID := c.Param("report_id")

	rpt, err := h.store.GetReport(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		}
		return
	}

	guests, err := h.store.ListGuests(c.Request.Context(), reportID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve guests"})
		return
	}

	switch format := c.DefaultQuery("format", "xlsx"); format {
	case "xlsx":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rpt.FileName+".xlsx"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := export.WriteXLSX(c.Writer, rpt, guests); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
		}
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rpt.FileName+".csv"))
		c.Header("Content-Type", "text/csv")
		if err := export.WriteCSV(c.Writer, rpt, guests); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write csv"})
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported export format %q", format)})
	}
}
