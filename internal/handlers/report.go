package handlers

import (
	"net/http"
	"strconv"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSessionReport godoc
// @Summary      Get the after-class report for a session
// @Description  Attendance, poll tallies and the final leaderboard
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} services.SessionReport
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/report [get]
func (h *ReportHandler) GetSessionReport(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	report, err := h.reportService.BuildSessionReport(uint(sessionID), teacherID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
