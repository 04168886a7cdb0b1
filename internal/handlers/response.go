package handlers

import (
	"net/http"
	"strconv"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/services"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	responseService    *services.ResponseService
	leaderboardService *services.LeaderboardService
	sessionService     *services.SessionService
}

func NewResponseHandler(responseService *services.ResponseService, leaderboardService *services.LeaderboardService, sessionService *services.SessionService) *ResponseHandler {
	return &ResponseHandler{
		responseService:    responseService,
		leaderboardService: leaderboardService,
		sessionService:     sessionService,
	}
}

type PollAnswerRequest struct {
	RegNo       string `json:"regno" binding:"required" example:"21CS001"`
	PollID      uint   `json:"poll_id" binding:"required" example:"3"`
	SessionID   uint   `json:"session_id" binding:"required" example:"42"`
	OptionIndex *int   `json:"option_index" binding:"required" example:"1"`
}

type QuizScoreRequest struct {
	RegNo          string `json:"regno" binding:"required" example:"21CS001"`
	BankID         uint   `json:"bank_id" binding:"required" example:"7"`
	SessionID      uint   `json:"session_id" binding:"required" example:"42"`
	TotalScore     *int   `json:"total_score" binding:"required" example:"4"`
	ElapsedSeconds int    `json:"elapsed_seconds" example:"95"`
}

// SubmitPollAnswer godoc
// @Summary      Submit or change a poll answer
// @Description  Upsert keyed by (regno, poll, session); last write wins
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        request body PollAnswerRequest true "Answer"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/responses/poll [post]
func (h *ResponseHandler) SubmitPollAnswer(c *gin.Context) {
	var req PollAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.responseService.SubmitPollAnswer(req.RegNo, req.PollID, req.SessionID, *req.OptionIndex); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "answer recorded"})
}

// GetTally godoc
// @Summary      Get vote counts for a poll in a session
// @Tags         responses
// @Produce      json
// @Param        id path int true "Poll ID"
// @Param        session_id query int true "Session ID"
// @Success      200 {array} int
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/polls/{id}/tally [get]
func (h *ResponseHandler) GetTally(c *gin.Context) {
	pollID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid poll id"})
		return
	}
	sessionID, err := strconv.ParseUint(c.Query("session_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session_id required"})
		return
	}

	counts, err := h.responseService.Tally(uint(pollID), uint(sessionID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, counts)
}

// SubmitQuizScore godoc
// @Summary      Submit an aggregate quiz score
// @Description  Insert-if-absent keyed by (regno, bank, session); a duplicate is a silent no-op
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        request body QuizScoreRequest true "Score"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/responses/score [post]
func (h *ResponseHandler) SubmitQuizScore(c *gin.Context) {
	var req QuizScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.responseService.SubmitQuizScore(req.RegNo, req.BankID, req.SessionID, *req.TotalScore, req.ElapsedSeconds); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "score recorded"})
}

// GetLeaderboard godoc
// @Summary      Get the ranked leaderboard for a session
// @Description  Bank id descending, then score descending, then elapsed time ascending. Hidden from participants until the teacher toggles visibility.
// @Tags         responses
// @Produce      json
// @Param        id path int true "Session ID"
// @Success      200 {array} services.LeaderboardEntry
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/leaderboard [get]
func (h *ResponseHandler) GetLeaderboard(c *gin.Context) {
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

	// The owner always sees the board; participants only once it is toggled
	// visible.
	if !session.LeaderboardVisible {
		teacherID := c.GetUint("teacher_id")
		if teacherID != session.TeacherID {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "leaderboard is not visible"})
			return
		}
	}

	entries, err := h.leaderboardService.GetLeaderboard(uint(sessionID))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
