package handlers

import (
	"net/http"
	"strconv"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/services"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type CreatePresentationRequest struct {
	Title  string   `json:"title" binding:"required,min=1,max=255"`
	Slides []string `json:"slides" binding:"required,min=1"`
}

type CreatePollRequest struct {
	Title    string   `json:"title" binding:"required,min=1,max=255"`
	ImageURL string   `json:"image_url"`
	Options  []string `json:"options" binding:"required,min=2"`
}

type CreateBankRequest struct {
	Title     string                   `json:"title" binding:"required,min=1,max=255"`
	Questions []services.QuestionInput `json:"questions" binding:"required,min=1"`
}

// CreatePresentation godoc
// @Summary      Create a presentation
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePresentationRequest true "Presentation data"
// @Success      201 {object} models.Presentation
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/presentations [post]
func (h *ContentHandler) CreatePresentation(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")

	var req CreatePresentationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	presentation, err := h.contentService.CreatePresentation(teacherID, req.Title, req.Slides)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, presentation)
}

// GetPresentation godoc
// @Summary      Get a presentation with its ordered slides
// @Tags         content
// @Produce      json
// @Param        id path int true "Presentation ID"
// @Success      200 {object} models.Presentation
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/presentations/{id} [get]
func (h *ContentHandler) GetPresentation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	presentation, err := h.contentService.GetPresentation(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, presentation)
}

func (h *ContentHandler) DeletePresentation(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.contentService.DeletePresentation(uint(id), teacherID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "presentation deleted"})
}

// CreatePoll godoc
// @Summary      Create a poll
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePollRequest true "Poll data"
// @Success      201 {object} models.Poll
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/polls [post]
func (h *ContentHandler) CreatePoll(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")

	var req CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	poll, err := h.contentService.CreatePoll(teacherID, req.Title, req.ImageURL, req.Options)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, poll)
}

// GetPoll godoc
// @Summary      Get a poll with its ordered options
// @Tags         content
// @Produce      json
// @Param        id path int true "Poll ID"
// @Success      200 {object} models.Poll
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/polls/{id} [get]
func (h *ContentHandler) GetPoll(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	poll, err := h.contentService.GetPoll(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, poll)
}

func (h *ContentHandler) DeletePoll(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.contentService.DeletePoll(uint(id), teacherID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "poll deleted"})
}

// CreateBank godoc
// @Summary      Create a question bank
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateBankRequest true "Question bank data"
// @Success      201 {object} models.QuestionBank
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/banks [post]
func (h *ContentHandler) CreateBank(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")

	var req CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	bank, err := h.contentService.CreateQuestionBank(teacherID, req.Title, req.Questions)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bank)
}

// GetBank godoc
// @Summary      Get a question bank with its ordered questions
// @Tags         content
// @Produce      json
// @Param        id path int true "Bank ID"
// @Success      200 {object} models.QuestionBank
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/banks/{id} [get]
func (h *ContentHandler) GetBank(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	bank, err := h.contentService.GetQuestionBank(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, bank)
}

func (h *ContentHandler) DeleteBank(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.contentService.DeleteQuestionBank(uint(id), teacherID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "question bank deleted"})
}

// ListSaved godoc
// @Summary      List the teacher's saved content
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.SavedContent
// @Router       /api/v1/content [get]
func (h *ContentHandler) ListSaved(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")

	saved, err := h.contentService.ListSaved(teacherID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, saved)
}
