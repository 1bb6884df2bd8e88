package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mr-thop/recruit-edge-api/internal/export"
	"github.com/mr-thop/recruit-edge-api/internal/roster"
	"github.com/mr-thop/recruit-edge-api/internal/scheduler"
	"github.com/mr-thop/recruit-edge-api/internal/store"
)

// startDateLayout is the format the front-end submits in the
// start_date form field.
const startDateLayout = "2006-01-02 15:04"

// handleSchedule computes an interview schedule from an uploaded
// candidate file and the scheduling parameters, and dispatches
// invitations
func (s *Server) handleSchedule(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a candidate file is required", "details": err.Error()})
		return
	}

	start, err := time.Parse(startDateLayout, c.PostForm("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be in YYYY-MM-DD HH:MM format", "details": err.Error()})
		return
	}

	slotLength, err := strconv.Atoi(c.PostForm("slot_length"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot_length must be an integer number of minutes"})
		return
	}
	breakTime, err := strconv.Atoi(c.PostForm("break_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "break_time must be an integer number of minutes"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file", "details": err.Error()})
		return
	}
	defer file.Close()

	candidates, err := roster.Parse(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse candidate file", "details": err.Error()})
		return
	}

	record, err := s.scheduling.ScheduleInterviews(c.Request.Context(), candidates, scheduler.Params{
		Start:      start,
		SlotLength: slotLength,
		Break:      breakTime,
	})
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidParameters) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("scheduling request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule interviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedule_id": record.ID,
		"file_url":    fmt.Sprintf("%s/api/schedule/%s/export", s.baseURL, record.ID),
		"slots":       record.Slots,
	})
}

// handleGetSchedule returns a stored schedule as JSON
func (s *Server) handleGetSchedule(c *gin.Context) {
	record, err := s.scheduling.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found or expired"})
			return
		}
		s.logger.Error("failed to load schedule", zap.String("scheduleID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// handleExportSchedule streams a stored schedule as a CSV download, or
// as an Excel workbook with ?format=xlsx
func (s *Server) handleExportSchedule(c *gin.Context) {
	record, err := s.scheduling.GetSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found or expired"})
			return
		}
		s.logger.Error("failed to load schedule", zap.String("scheduleID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	switch c.Query("format") {
	case "xlsx":
		c.Header("Content-Disposition", `attachment; filename="interview_schedule.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := export.WriteExcel(c.Writer, record.Slots); err != nil {
			s.logger.Error("failed to export schedule", zap.String("scheduleID", record.ID), zap.Error(err))
		}
	case "", "csv":
		c.Header("Content-Disposition", `attachment; filename="interview_schedule.csv"`)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		if err := export.WriteCSV(c.Writer, record.Slots); err != nil {
			s.logger.Error("failed to export schedule", zap.String("scheduleID", record.ID), zap.Error(err))
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
	}
}
