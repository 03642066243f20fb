package mapper

import (
	"time"

	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
)

// Consultation is the transport representation of an advice request.
type Consultation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainConsultation converts a domain consultation to the transport representation.
func FromDomainConsultation(consultation *domain.Consultation) Consultation {
	if consultation == nil {
		return Consultation{}
	}
	return Consultation{
		ID:        consultation.ID,
		Name:      consultation.Name,
		Email:     consultation.Email,
		Message:   consultation.Message,
		Status:    string(consultation.Status),
		CreatedAt: consultation.CreatedAt,
	}
}

// FromDomainConsultations converts a slice of domain consultations.
func FromDomainConsultations(consultations []*domain.Consultation) []Consultation {
	out := make([]Consultation, 0, len(consultations))
	for _, consultation := range consultations {
		out = append(out, FromDomainConsultation(consultation))
	}
	return out
}
