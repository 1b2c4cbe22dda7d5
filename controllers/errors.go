package controllers

import (
	"errors"

	"github.com/Naveendeworks/emergent/pkg/resp"
	"github.com/Naveendeworks/emergent/services"
	"github.com/gin-gonic/gin"
)

// respondError translates the service error taxonomy into HTTP codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidState):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
