package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osociohoteleiro/praiabela/models"
	"github.com/osociohoteleiro/praiabela/services"
	"github.com/osociohoteleiro/praiabela/utils"
)

type SiteInfoController struct {
	SiteInfoSvc *services.SiteInfoService
}

func NewSiteInfoController(svc *services.SiteInfoService) *SiteInfoController {
	return &SiteInfoController{SiteInfoSvc: svc}
}

type siteInfoPayload struct {
	AboutText      string  `json:"about_text"`
	ContactEmail   string  `json:"contact_email"`
	ContactPhone   string  `json:"contact_phone"`
	ContactAddress string  `json:"contact_address"`
	CheckInTime    string  `json:"check_in_time"`
	CheckOutTime   string  `json:"check_out_time"`
	FacebookURL    *string `json:"facebook_url"`
	InstagramURL   *string `json:"instagram_url"`
	WhatsappNumber *string `json:"whatsapp_number"`
	HeroVideoURL   *string `json:"hero_video_url"`
	LogoURL        *string `json:"logo_url"`
}

// GET /api/site-info
func (sc *SiteInfoController) Get(c *gin.Context) {
	info, err := sc.SiteInfoSvc.Get()
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Informações do site não encontradas")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao buscar informações do site")
		return
	}
	c.JSON(http.StatusOK, info)
}

// PUT /api/site-info
func (sc *SiteInfoController) Update(c *gin.Context) {
	var payload siteInfoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	info, err := sc.SiteInfoSvc.Update(models.SiteInfo{
		AboutText:      payload.AboutText,
		ContactEmail:   payload.ContactEmail,
		ContactPhone:   payload.ContactPhone,
		ContactAddress: payload.ContactAddress,
		CheckInTime:    payload.CheckInTime,
		CheckOutTime:   payload.CheckOutTime,
		FacebookURL:    payload.FacebookURL,
		InstagramURL:   payload.InstagramURL,
		WhatsappNumber: payload.WhatsappNumber,
		HeroVideoURL:   payload.HeroVideoURL,
		LogoURL:        payload.LogoURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Informações do site não encontradas")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao atualizar informações do site")
		return
	}
	c.JSON(http.StatusOK, info)
}
