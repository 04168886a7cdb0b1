package handlers

import (
	"io"
	"net/http"

	"github.com/Hemanth-Krishna-A-B/presenting-IT/internal/services"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

type UploadResponse struct {
	URL string `json:"url" example:"https://bucket.s3.ap-south-1.amazonaws.com/uploads/abc-slide.png"`
}

// UploadImage godoc
// @Summary      Upload a slide or poll image
// @Tags         content
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file"
// @Success      201 {object} UploadResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/upload [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	url, err := h.uploadService.UploadImage(data, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{URL: url})
}
