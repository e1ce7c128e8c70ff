package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitara-dev/habitara-api/internal/models"
	"github.com/habitara-dev/habitara-api/internal/service"
	appErrors "github.com/habitara-dev/habitara-api/pkg/errors"
	"github.com/habitara-dev/habitara-api/pkg/response"
)

type userGateway interface {
	ChangeRole(ctx context.Context, actor *models.JWTClaims, req service.ChangeUserRoleRequest, meta models.RequestMeta) (*models.Profile, error)
	SetActive(ctx context.Context, actor *models.JWTClaims, req service.SetUserActiveRequest, meta models.RequestMeta) (*models.Profile, error)
	UpdateOwnProfile(ctx context.Context, actor *models.JWTClaims, req service.UpdateProfileRequest, meta models.RequestMeta) (*models.Profile, error)
}

// UserHandler handles user administration and self-service profile endpoints.
type UserHandler struct {
	service userGateway
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc userGateway) *UserHandler {
	return &UserHandler{service: svc}
}

// ChangeRole godoc
// @Summary Change a user's role
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.ChangeUserRoleRequest true "Target user and role code"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users/role [post]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	var req service.ChangeUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	profile, err := h.service.ChangeRole(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profile, "Rol actualizado")
}

// SetActive godoc
// @Summary Toggle a user account
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.SetUserActiveRequest true "Target user and flag"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/active [post]
func (h *UserHandler) SetActive(c *gin.Context) {
	var req service.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "El estado activo debe ser booleano"))
		return
	}

	profile, err := h.service.SetActive(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profile)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.UpdateProfileRequest true "Display fields"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos inválidos"))
		return
	}

	profile, err := h.service.UpdateOwnProfile(c.Request.Context(), claimsFromContext(c), req, requestMeta(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, profile, "Perfil actualizado")
}
