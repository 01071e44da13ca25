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

type ExperienceController struct {
	ExperienceSvc *services.ExperienceService
}

func NewExperienceController(svc *services.ExperienceService) *ExperienceController {
	return &ExperienceController{ExperienceSvc: svc}
}

type experiencePayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (p experiencePayload) toModel() models.Experience {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return models.Experience{
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		DisplayOrder: p.DisplayOrder,
		IsActive:     active,
	}
}

type reorderPayload struct {
	Items []reorderItem `json:"items"`
}

type reorderItem struct {
	ID           uint `json:"id"`
	DisplayOrder int  `json:"display_order"`
}

// ids in request order; the position in the list is what gets persisted.
func (p reorderPayload) ids() []uint {
	ids := make([]uint, 0, len(p.Items))
	for _, item := range p.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// GET /api/experiences
func (ec *ExperienceController) ListPublic(c *gin.Context) {
	experiences, err := ec.ExperienceSvc.ListPublic()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar experiências")
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// GET /api/experiences/admin/all
func (ec *ExperienceController) ListAdmin(c *gin.Context) {
	experiences, err := ec.ExperienceSvc.ListAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar experiências")
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// GET /api/experiences/:id
func (ec *ExperienceController) GetByID(c *gin.Context) {
	id, ok := paramID(c, "Experiência não encontrada")
	if !ok {
		return
	}

	exp, err := ec.ExperienceSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Experiência não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar experiência")
		return
	}
	c.JSON(http.StatusOK, exp)
}

// POST /api/experiences
func (ec *ExperienceController) Create(c *gin.Context) {
	var payload experiencePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" || payload.Description == "" || payload.ImageURL == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Título, descrição e imagem são obrigatórios")
		return
	}

	exp := payload.toModel()
	if err := ec.ExperienceSvc.Create(&exp); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao criar experiência")
		return
	}
	c.JSON(http.StatusCreated, exp)
}

// PUT /api/experiences/:id
func (ec *ExperienceController) Update(c *gin.Context) {
	id, ok := paramID(c, "Experiência não encontrada")
	if !ok {
		return
	}

	var payload experiencePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	exp, err := ec.ExperienceSvc.Update(id, payload.toModel())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Experiência não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao atualizar experiência")
		return
	}
	c.JSON(http.StatusOK, exp)
}

// DELETE /api/experiences/:id
func (ec *ExperienceController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Experiência não encontrada")
	if !ok {
		return
	}

	if err := ec.ExperienceSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Experiência não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao remover experiência")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experiência removida com sucesso"})
}

// PUT /api/experiences/reorder/batch
func (ec *ExperienceController) Reorder(c *gin.Context) {
	var payload reorderPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Items == nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Items deve ser um array")
		return
	}

	if err := ec.ExperienceSvc.Reorder(payload.ids()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao reordenar experiências")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ordem atualizada com sucesso"})
}
