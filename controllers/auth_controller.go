package controllers

import (
	"errors"

	"github.com/Naveendeworks/emergent/pkg/resp"
	"github.com/Naveendeworks/emergent/services"
	"github.com/Naveendeworks/emergent/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"username":     user.Username,
		"role":         user.Role,
	})
}

// GET /auth/verify — valid token implied by reaching the handler.
func (ac *AuthController) Verify(c *gin.Context) {
	resp.OK(c, gin.H{"username": utils.CurrentUsername(c), "valid": true})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.service.Me(utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, user)
}
