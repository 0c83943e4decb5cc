package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"atleti-backend/service"
)

// UploadHandler exposes the image upload routes.
type UploadHandler struct {
	svc *service.UploadService
}

func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// UploadCover handles POST /s3/upload/article-cover.
func (h *UploadHandler) UploadCover(c *gin.Context) {
	h.upload(c, service.CategoryCover)
}

// UploadImage handles POST /s3/upload/article-image.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	h.upload(c, service.CategoryContent)
}

func (h *UploadHandler) upload(c *gin.Context, category service.FileCategory) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, "open upload", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(c, "read upload", err)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	result, err := h.svc.Upload(c.Request.Context(), category, fileHeader.Filename, mimeType, data)
	if err != nil {
		writeError(c, "upload "+string(category), err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
