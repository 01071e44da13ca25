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

type PromotionController struct {
	PromotionSvc *services.PromotionService
}

func NewPromotionController(svc *services.PromotionService) *PromotionController {
	return &PromotionController{PromotionSvc: svc}
}

type promotionPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Discount    *int    `json:"discount"`
	ValidUntil  *string `json:"valid_until"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

func (p promotionPayload) toModel() models.Promotion {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	var discount int
	if p.Discount != nil {
		discount = *p.Discount
	}
	return models.Promotion{
		Title:       p.Title,
		Description: p.Description,
		Discount:    discount,
		ValidUntil:  p.ValidUntil,
		ImageURL:    p.ImageURL,
		IsActive:    active,
	}
}

// GET /api/promotions
func (pc *PromotionController) ListPublic(c *gin.Context) {
	promotions, err := pc.PromotionSvc.ListPublic()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar promoções")
		return
	}
	c.JSON(http.StatusOK, promotions)
}

// GET /api/promotions/admin
func (pc *PromotionController) ListAdmin(c *gin.Context) {
	promotions, err := pc.PromotionSvc.ListAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar promoções")
		return
	}
	c.JSON(http.StatusOK, promotions)
}

// GET /api/promotions/:id
func (pc *PromotionController) GetByID(c *gin.Context) {
	id, ok := paramID(c, "Promoção não encontrada")
	if !ok {
		return
	}

	promo, err := pc.PromotionSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Promoção não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar promoção")
		return
	}
	c.JSON(http.StatusOK, promo)
}

// POST /api/promotions
func (pc *PromotionController) Create(c *gin.Context) {
	var payload promotionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" || payload.Description == "" || payload.Discount == nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Campos obrigatórios faltando")
		return
	}
	if *payload.Discount < 1 || *payload.Discount > 100 {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Desconto deve estar entre 1 e 100")
		return
	}

	promo := payload.toModel()
	if err := pc.PromotionSvc.Create(&promo); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao criar promoção")
		return
	}
	c.JSON(http.StatusCreated, promo)
}

// PUT /api/promotions/:id
func (pc *PromotionController) Update(c *gin.Context) {
	id, ok := paramID(c, "Promoção não encontrada")
	if !ok {
		return
	}

	var payload promotionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}
	if payload.Discount != nil && (*payload.Discount < 1 || *payload.Discount > 100) {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Desconto deve estar entre 1 e 100")
		return
	}

	promo, err := pc.PromotionSvc.Update(id, payload.toModel())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Promoção não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao atualizar promoção")
		return
	}
	c.JSON(http.StatusOK, promo)
}

// DELETE /api/promotions/:id
func (pc *PromotionController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Promoção não encontrada")
	if !ok {
		return
	}

	if err := pc.PromotionSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Promoção não encontrada")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao deletar promoção")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promoção deletada com sucesso"})
}
