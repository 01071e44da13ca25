package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/osociohoteleiro/praiabela/models"
	"github.com/osociohoteleiro/praiabela/services"
	"github.com/osociohoteleiro/praiabela/utils"
)

type GalleryController struct {
	GallerySvc *services.GalleryService
}

func NewGalleryController(svc *services.GalleryService) *GalleryController {
	return &GalleryController{GallerySvc: svc}
}

type galleryPayload struct {
	URL          string `json:"url"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (p galleryPayload) toModel() models.GalleryImage {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return models.GalleryImage{
		URL:          p.URL,
		Caption:      p.Caption,
		DisplayOrder: p.DisplayOrder,
		IsActive:     active,
	}
}

// GET /api/gallery
func (gc *GalleryController) ListPublic(c *gin.Context) {
	images, err := gc.GallerySvc.ListPublic()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar galeria")
		return
	}
	c.JSON(http.StatusOK, images)
}

// GET /api/gallery/admin/all
func (gc *GalleryController) ListAdmin(c *gin.Context) {
	images, err := gc.GallerySvc.ListAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar galeria")
		return
	}
	c.JSON(http.StatusOK, images)
}

// POST /api/gallery
func (gc *GalleryController) Create(c *gin.Context) {
	var payload galleryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	payload.URL = strings.TrimSpace(payload.URL)
	if payload.URL == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "URL da imagem é obrigatória")
		return
	}

	image := payload.toModel()
	if err := gc.GallerySvc.Create(&image); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao adicionar imagem")
		return
	}
	c.JSON(http.StatusCreated, image)
}

// PUT /api/gallery/:id
func (gc *GalleryController) Update(c *gin.Context) {
	id, ok := paramID(c, "Imagem não encontrada")
	if !ok {
		return
	}

	var payload galleryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	image, err := gc.GallerySvc.Update(id, payload.toModel())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Imagem não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao atualizar imagem")
		return
	}
	c.JSON(http.StatusOK, image)
}

// DELETE /api/gallery/:id
func (gc *GalleryController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Imagem não encontrada")
	if !ok {
		return
	}

	if err := gc.GallerySvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Imagem não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao remover imagem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Imagem removida com sucesso"})
}

// PUT /api/gallery/reorder/batch
func (gc *GalleryController) Reorder(c *gin.Context) {
	var payload reorderPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Items == nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Items deve ser um array")
		return
	}

	if err := gc.GallerySvc.Reorder(payload.ids()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao reordenar galeria")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ordem atualizada com sucesso"})
}
