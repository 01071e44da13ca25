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

type PackageController struct {
	PackageSvc *services.PackageService
}

func NewPackageController(svc *services.PackageService) *PackageController {
	return &PackageController{PackageSvc: svc}
}

type packagePayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Inclusions  []string `json:"inclusions"`
	ImageURLs   []string `json:"image_urls"`
	IsFeatured  bool     `json:"is_featured"`
	IsActive    *bool    `json:"is_active"`
}

func (p packagePayload) toModel() models.Package {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	var price float64
	if p.Price != nil {
		price = *p.Price
	}
	return models.Package{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Inclusions:  models.JSONArray(p.Inclusions),
		ImageURLs:   models.JSONArray(p.ImageURLs),
		IsFeatured:  p.IsFeatured,
		IsActive:    active,
	}
}

// GET /api/packages
func (pc *PackageController) ListPublic(c *gin.Context) {
	packages, err := pc.PackageSvc.ListPublic()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar pacotes")
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/admin/all
func (pc *PackageController) ListAdmin(c *gin.Context) {
	packages, err := pc.PackageSvc.ListAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar pacotes")
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/:id
func (pc *PackageController) GetByID(c *gin.Context) {
	id, ok := paramID(c, "Pacote não encontrado")
	if !ok {
		return
	}

	pkg, err := pc.PackageSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Pacote não encontrado")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar pacote")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// POST /api/packages
func (pc *PackageController) Create(c *gin.Context) {
	var payload packagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" || payload.Description == "" || payload.Price == nil || len(payload.Inclusions) == 0 {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Campos obrigatórios faltando")
		return
	}

	pkg := payload.toModel()
	if err := pc.PackageSvc.Create(&pkg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao criar pacote")
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// PUT /api/packages/:id
func (pc *PackageController) Update(c *gin.Context) {
	id, ok := paramID(c, "Pacote não encontrado")
	if !ok {
		return
	}

	var payload packagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	pkg, err := pc.PackageSvc.Update(id, payload.toModel())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Pacote não encontrado")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao atualizar pacote")
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DELETE /api/packages/:id
func (pc *PackageController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Pacote não encontrado")
	if !ok {
		return
	}

	if err := pc.PackageSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Pacote não encontrado")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao deletar pacote")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pacote deletado com sucesso"})
}
