package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brasiliaimoveis/server/internal/database"
	"brasiliaimoveis/server/internal/models"
	"brasiliaimoveis/server/internal/storage"
)

func validPriceType(priceType string) bool {
	return priceType == "" || priceType == models.PriceTypeSale || priceType == models.PriceTypeRent
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var req models.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	if !validPriceType(req.PriceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de preço deve ser sale ou rent"})
		return
	}

	property := req.ToProperty()
	if err := h.db.CreateProperty(property); err != nil {
		h.logger.WithError(err).Error("Failed to create property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}

	c.JSON(http.StatusCreated, property)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id := c.Param("id")

	var req models.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	if !validPriceType(req.PriceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de preço deve ser sale ou rent"})
		return
	}

	property, err := h.db.UpdateProperty(id, req.ToPatch())
	if err != nil {
		h.logger.WithError(err).Error("Failed to update property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Propriedade não encontrada"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty removes the listing and then its stored images. Image
// removal is best-effort: a failed file removal does not undo the delete.
func (h *Handler) DeleteProperty(c *gin.Context) {
	id := c.Param("id")

	property, err := h.db.GetPropertyByID(id)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Propriedade não encontrada"})
		return
	}

	if err := h.db.DeleteProperty(id); err != nil {
		if errors.Is(err, database.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Propriedade não encontrada"})
			return
		}
		h.logger.WithError(err).Error("Failed to delete property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}

	if paths := storedPaths(h.store, property.Images); len(paths) > 0 {
		for _, removeErr := range h.store.Remove(paths) {
			h.logger.WithError(removeErr).Warn("Failed to remove property image")
		}
	}

	c.Status(http.StatusNoContent)
}

// storedPaths maps public image URLs back to their storage paths,
// skipping URLs served from elsewhere.
func storedPaths(store *storage.ImageStore, urls []string) []string {
	prefix := store.PublicURL("")
	var paths []string
	for _, url := range urls {
		if strings.HasPrefix(url, prefix) {
			paths = append(paths, strings.TrimPrefix(url, prefix))
		}
	}
	return paths
}

func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.aggregator.Stats(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to aggregate dashboard stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UploadImages stores each file from the multipart "images" field and
// reports a per-file result. The batch is best-effort: one bad file does
// not fail the others, and the caller decides what to do with the
// successful subset.
func (h *Handler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhuma imagem enviada"})
		return
	}

	results := make([]storage.UploadResult, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			h.logger.WithError(err).Error("Failed to open uploaded file")
			results = append(results, storage.UploadResult{
				FileName: file.Filename,
				Error:    "erro interno no upload",
			})
			continue
		}

		result := h.store.Upload(file.Filename, file.Header.Get("Content-Type"), file.Size, src)
		src.Close()
		results = append(results, result)
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

type removeImagesRequest struct {
	Paths []string `json:"paths" binding:"required"`
}

func (h *Handler) RemoveImages(c *gin.Context) {
	var req removeImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
		return
	}

	var failed []string
	for _, removeErr := range h.store.Remove(req.Paths) {
		h.logger.WithError(removeErr).Error("Failed to remove image")
		failed = append(failed, removeErr.Error())
	}
	if len(failed) > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao remover imagens", "details": failed})
		return
	}

	c.Status(http.StatusNoContent)
}
