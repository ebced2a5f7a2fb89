package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"arrivals-backend/internal/ingest"
)

type postReportRequest struct {
	FileName string   `json:"file_name" binding:"required"`
	Lines    []string `json:"lines" binding:"required"`
}

// PostReport ingests an arrivals report submitted over the API. The body is
// either a JSON document with the file name and lines, or the raw report text
// with the file name passed as a query parameter.
func (h *Handler) PostReport(c *gin.Context) {
	var fileName string
	var lines []string

	if strings.HasPrefix(c.ContentType(), "text/plain") {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
			return
		}
		fileName = c.Query("file_name")
		if fileName == "" {
			fileName = "upload.txt"
		}
		lines = strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	} else {
		var req postReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		fileName = req.FileName
		lines = req.Lines
	}

	rpt, err := h.ingest.IngestLines(c.Request.Context(), fileName, lines)
	if err != nil {
		if errors.Is(err, ingest.ErrNoGuestRecords) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rpt)
}

// GetReports lists all ingested reports, newest first.
func (h *Handler) GetReports(c *gin.Context) {
	reports, err := h.store.ListReports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport returns a single report by its ID.
func (h *Handler) GetReport(c *gin.Context) {
	rpt, err := h.store.GetReport(c.Request.Context(), c.Param("report_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		}
		return
	}
	c.JSON(http.StatusOK, rpt)
}

// GetReportGuests returns the guest records of a report in ingestion order.
func (h *Handler) GetReportGuests(c *gin.Context) {
	reportID := c.Param("report_id")
	if _, err := h.store.GetReport(c.Request.Context(), reportID); err != nil {
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
	c.JSON(http.StatusOK, guests)
}

// DeleteReport removes a report and all of its guest records.
func (h *Handler) DeleteReport(c *gin.Context) {
	err := h.store.DeleteReport(c.Request.Context(), c.Param("report_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
