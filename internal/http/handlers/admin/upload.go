package admin

import (
	"github.com/paikari-bazar/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Upload stores a panel asset such as a category image and returns its
// URL.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "file is required", err)
		return
	}
	scene := c.DefaultPostForm("scene", "common")

	url, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		respondError(c, response.CodeBadRequest, err.Error(), nil)
		return
	}
	response.Success(c, gin.H{"url": url})
}
