package nurseryserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	userhttpmapper "github.com/Mitesh0126/nursery-haven/internal/domains/users/adapters/http/mapper"
	userapp "github.com/Mitesh0126/nursery-haven/internal/domains/users/application"
	userports "github.com/Mitesh0126/nursery-haven/internal/domains/users/ports"
)

// AuthAPI implements registration and login.
type AuthAPI struct {
	service userports.Service
}

// NewAuthAPI wires dependencies.
func NewAuthAPI(service userports.Service) AuthAPI {
	return AuthAPI{service: service}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    userhttpmapper.User `json:"user"`
}

// Post /api/auth/register
// Create a customer account and sign it in
func (api *AuthAPI) Register(c *gin.Context) {
	var payload registerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := api.service.Register(c.Request.Context(), userports.RegisterInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Phone:    payload.Phone,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    userhttpmapper.FromDomainUser(result.User),
	})
}

// Post /api/auth/login
// Verify credentials and return a fresh token
func (api *AuthAPI) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := api.service.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    userhttpmapper.FromDomainUser(result.User),
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, userports.ErrEmailTaken):
		respondError(c, http.StatusConflict, err)
	case errors.Is(err, userapp.ErrAuthentication):
		respondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
	case errors.Is(err, userapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, userports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
