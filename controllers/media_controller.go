package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osociohoteleiro/praiabela/services"
	"github.com/osociohoteleiro/praiabela/utils"
)

type MediaController struct {
	MediaSvc *services.MediaService
}

func NewMediaController(svc *services.MediaService) *MediaController {
	return &MediaController{MediaSvc: svc}
}

// GET /api/media?type=&category=
func (mc *MediaController) List(c *gin.Context) {
	media, err := mc.MediaSvc.List(c.Query("type"), c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar mídia")
		return
	}
	c.JSON(http.StatusOK, media)
}
