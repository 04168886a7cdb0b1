package handlers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/models"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/services"
	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/ws"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
	hub            *ws.Hub
}

func NewSessionHandler(sessionService *services.SessionService, hub *ws.Hub) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, hub: hub}
}

type ShareContentRequest struct {
	ContentType string `json:"content_type" binding:"required" example:"presentation"`
	ContentID   *uint  `json:"content_id" example:"1"`
}

type SetSlideRequest struct {
	Index int `json:"index" example:"2"`
}

type SessionSettingRequest struct {
	Type  string `json:"type" binding:"required" example:"timer"`
	Value any    `json:"value" binding:"required"`
}

type JoinSessionRequest struct {
	Code   string `json:"code" binding:"required" example:"42"`
	Name   string `json:"name" binding:"required,min=1,max=100" example:"Hari"`
	RollNo string `json:"rollno" binding:"required" example:"45"`
	RegNo  string `json:"regno" binding:"required" example:"21CS001"`
}

// CreateSession godoc
// @Summary      Start a live session
// @Description  Create an active session; its id doubles as the join code
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} models.Session
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")

	session, err := h.sessionService.CreateSession(teacherID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions godoc
// @Summary      List the teacher's sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Session
// @Router       /api/v1/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")

	sessions, err := h.sessionService.ListSessions(teacherID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetSession godoc
// @Summary      Get session state
// @Description  Durable session record; late joiners seed their display from this
// @Tags         sessions
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {object} models.Session
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.GetSession(uint(sessionID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// StopSession godoc
// @Summary      Stop a session
// @Description  Sets active=false; the session row is kept for reports
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} models.Session
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/stop [post]
func (h *SessionHandler) StopSession(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.StopSession(uint(sessionID), teacherID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.broadcast(session.ID, ws.SessionStopped{SessionID: session.ID})
	c.JSON(http.StatusOK, session)
}

// ShareContent godoc
// @Summary      Share a content item with the session
// @Description  Persists the shared reference, then announces it on the room channel. A null content_id clears the share.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body ShareContentRequest true "Content reference"
// @Success      200 {object} models.Session
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/share [post]
func (h *SessionHandler) ShareContent(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req ShareContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.ShareContent(uint(sessionID), teacherID, req.ContentType, req.ContentID)
	if err != nil {
		// Persist failed: the broadcast is suppressed, viewers keep what
		// they were showing.
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.broadcast(session.ID, ws.ContentShared{
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
	})
	c.JSON(http.StatusOK, session)
}

// SetSlide godoc
// @Summary      Advance the shared presentation
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body SetSlideRequest true "Slide index"
// @Success      200 {object} models.Session
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/slide [post]
func (h *SessionHandler) SetSlide(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req SetSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.SetSlide(uint(sessionID), teacherID, req.Index)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.broadcast(session.ID, ws.SlideChanged{
		PresentationID: *session.PresentationID,
		Index:          session.SlideIndex,
	})
	c.JSON(http.StatusOK, session)
}

// UpdateSetting godoc
// @Summary      Update a session setting
// @Description  type "timer" takes minutes, type "leaderboard" takes a boolean
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body SessionSettingRequest true "Setting"
// @Success      200 {object} models.Session
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/settings [post]
func (h *SessionHandler) UpdateSetting(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req SessionSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var session *models.Session
	var event ws.Event
	switch req.Type {
	case "timer":
		minutes, ok := req.Value.(float64)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "timer value must be a number"})
			return
		}
		session, err = h.sessionService.SetTimeout(uint(sessionID), teacherID, int(minutes))
		event = ws.TimerUpdated{Minutes: int(minutes)}
	case "leaderboard":
		visible, ok := req.Value.(bool)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "leaderboard value must be boolean"})
			return
		}
		session, err = h.sessionService.SetLeaderboardVisible(uint(sessionID), teacherID, visible)
		event = ws.LeaderboardToggled{Visible: visible}
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid setting type"})
		return
	}
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.broadcast(session.ID, event)
	c.JSON(http.StatusOK, session)
}

// JoinSession godoc
// @Summary      Join a session as a student
// @Description  Validates the code, records attendance and returns the room id to subscribe to
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body JoinSessionRequest true "Student info"
// @Success      200 {object} services.JoinResult
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions/join [post]
func (h *SessionHandler) JoinSession(c *gin.Context) {
	var req JoinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.sessionService.JoinSession(req.Code, req.Name, req.RollNo, req.RegNo)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if !result.IsRejoin {
		h.hub.Broadcast(result.RoomID, ws.ParticipantJoined{
			RegNo: result.Attendance.RegNo,
			Name:  result.Attendance.Name,
		})
	}

	c.JSON(http.StatusOK, result)
}

// Attendance godoc
// @Summary      List attendance for a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {array} models.Attendance
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/attendance [get]
func (h *SessionHandler) Attendance(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	records, err := h.sessionService.Attendance(uint(sessionID), teacherID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// ExportAttendance godoc
// @Summary      Export attendance as CSV
// @Tags         sessions
// @Produce      text/csv
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {string} string "CSV file"
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/attendance/export [get]
func (h *SessionHandler) ExportAttendance(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	records, err := h.sessionService.Attendance(uint(sessionID), teacherID)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=attendance-%d.csv", sessionID))

	// csv.Writer errors are sticky; one check after Flush covers every write.
	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"RegNo", "RollNo", "Name", "JoinedAt"})
	for _, r := range records {
		_ = w.Write([]string{r.RegNo, r.RollNo, r.Name, r.CreatedAt.Format(time.RFC3339)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("attendance export for session %d failed: %v", sessionID, err)
	}
}

func (h *SessionHandler) broadcast(sessionID uint, event ws.Event) {
	roomID, err := h.sessionService.RoomID(sessionID)
	if err != nil {
		return
	}
	h.hub.Broadcast(roomID, event)
}

func statusFor(err error) int {
	switch err {
	case services.ErrNotOwner:
		return http.StatusForbidden
	case services.ErrSessionInactive:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
