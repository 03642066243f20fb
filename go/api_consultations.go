package nurseryserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	consultationhttpmapper "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/adapters/http/mapper"
	consultationapp "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/application"
	consultationsdomain "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
	consultationports "github.com/Mitesh0126/nursery-haven/internal/domains/consultations/ports"
)

// ConsultationAPI implements the plant-care consultation endpoints.
type ConsultationAPI struct {
	service consultationports.Service
}

// NewConsultationAPI wires dependencies.
func NewConsultationAPI(service consultationports.Service) ConsultationAPI {
	return ConsultationAPI{service: service}
}

type submitConsultationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type updateConsultationRequest struct {
	Status string `json:"status"`
}

// Post /api/consultations
// Public form: submit an advice request
func (api *ConsultationAPI) Submit(c *gin.Context) {
	var payload submitConsultationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	_, err := api.service.Submit(c.Request.Context(), consultationports.SubmitInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Message: payload.Message,
	})
	if err != nil {
		respondConsultationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Consultation request submitted successfully"})
}

// Get /api/consultations
// List all requests, newest first (admin)
func (api *ConsultationAPI) List(c *gin.Context) {
	consultations, err := api.service.List(c.Request.Context())
	if err != nil {
		respondConsultationError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultationhttpmapper.FromDomainConsultations(consultations))
}

// Put /api/consultations/:id
// Move a request to a new handling state (admin)
func (api *ConsultationAPI) UpdateStatus(c *gin.Context) {
	var payload updateConsultationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.UpdateStatus(c.Request.Context(), c.Param("id"), consultationsdomain.Status(payload.Status))
	if err != nil {
		respondConsultationError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultationhttpmapper.FromDomainConsultation(updated))
}

// Delete /api/consultations/:id
// Remove a request (admin)
func (api *ConsultationAPI) Delete(c *gin.Context) {
	if err := api.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondConsultationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consultation deleted successfully"})
}

func respondConsultationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, consultationports.ErrNotFound):
		respondError(c, http.StatusNotFound, errors.New("consultation not found"))
	case errors.Is(err, consultationapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
