package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/osociohoteleiro/praiabela/middleware"
	"github.com/osociohoteleiro/praiabela/services"
	"github.com/osociohoteleiro/praiabela/utils"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Payload inválido")
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, utils.CodeValidationError, "Email e senha são obrigatórios")
		return
	}

	token, admin, err := ac.AuthSvc.Login(email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, utils.CodeInvalidCredentials, "Credenciais inválidas")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao fazer login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
		},
	})
}

// GET /api/auth/verify
func (ac *AuthController) Verify(c *gin.Context) {
	id, ok := middleware.AdminID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, utils.CodeUnauthorized, "Não autorizado")
		return
	}

	admin, err := ac.AuthSvc.AdminByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Admin não encontrado")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, utils.CodeStorageFailure, "Erro ao verificar token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
