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

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type roomPayload struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Capacity    *int     `json:"capacity"`
	Size        string   `json:"size"`
	Price       float64  `json:"price"`
	Amenities   []string `json:"amenities"`
	ImageURLs   []string `json:"image_urls"`
	IsActive    *bool    `json:"is_active"`
}

func (p roomPayload) toModel() models.Room {
	capacity := 2
	if p.Capacity != nil {
		capacity = *p.Capacity
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return models.Room{
		Name:        p.Name,
		Description: p.Description,
		Capacity:    capacity,
		Size:        p.Size,
		Price:       p.Price,
		Amenities:   models.JSONArray(p.Amenities),
		ImageURLs:   models.JSONArray(p.ImageURLs),
		IsActive:    active,
	}
}

// GET /api/rooms
func (rc *RoomController) ListPublic(c *gin.Context) {
	rooms, err := rc.RoomSvc.ListPublic()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar quartos")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/admin/all
func (rc *RoomController) ListAdmin(c *gin.Context) {
	rooms, err := rc.RoomSvc.ListAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar quartos")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (rc *RoomController) GetByID(c *gin.Context) {
	id, ok := paramID(c, "Quarto não encontrado")
	if !ok {
		return
	}

	room, err := rc.RoomSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Quarto não encontrado")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar quarto")
		return
	}
	c.JSON(http.StatusOK, room)
}

// POST /api/rooms
func (rc *RoomController) Create(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" || payload.Description == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Campos obrigatórios faltando")
		return
	}

	room := payload.toModel()
	if err := rc.RoomSvc.Create(&room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao criar quarto")
		return
	}
	c.JSON(http.StatusCreated, room)
}

// PUT /api/rooms/:id
func (rc *RoomController) Update(c *gin.Context) {
	id, ok := paramID(c, "Quarto não encontrado")
	if !ok {
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	room, err := rc.RoomSvc.Update(id, payload.toModel())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Quarto não encontrado")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao atualizar quarto")
		return
	}
	c.JSON(http.StatusOK, room)
}

// DELETE /api/rooms/:id
func (rc *RoomController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Quarto não encontrado")
	if !ok {
		return
	}

	if err := rc.RoomSvc.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Quarto não encontrado")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao deletar quarto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quarto deletado com sucesso"})
}
