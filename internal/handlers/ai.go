package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"digital-prescription-server/internal/ai"

	"github.com/gin-gonic/gin"
)

// AIHandler handles AI prescription processing requests.
type AIHandler struct {
	Extractor ai.Extractor
	UploadDir string
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(extractor ai.Extractor, uploadDir string) *AIHandler {
	return &AIHandler{Extractor: extractor, UploadDir: uploadDir}
}

// ProcessPrescription accepts an uploaded prescription image and runs it
// through the extractor. The response body shape is a compatibility
// contract with existing clients and deliberately not wrapped in the
// standard envelope.
func (h *AIHandler) ProcessPrescription(c *gin.Context) {
	file, err := c.FormFile("prescriptionFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	dir := filepath.Join(h.UploadDir, "ai")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("failed to create AI upload directory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "AI Processing Failed"})
		return
	}

	dst := filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Printf("failed to store AI upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "AI Processing Failed"})
		return
	}

	upload, err := file.Open()
	if err != nil {
		log.Printf("failed to open AI upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "AI Processing Failed"})
		return
	}
	defer upload.Close()

	result, err := h.Extractor.Process(c.Request.Context(), upload)
	if err != nil {
		log.Printf("AI extraction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "AI Processing Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "AI Processing Complete",
		"filePath": dst,
		"data":     result,
	})
}
