package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyMessage  = errors.New("message is required")
	ErrInvalidStatus = errors.New("status must be pending, contacted, or resolved")
)

// Status tracks how far the nursery team has taken a consultation request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusContacted Status = "contacted"
	StatusResolved  Status = "resolved"
)

// Consultation is a plant-care advice request submitted from the storefront.
type Consultation struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Status    Status
	CreatedAt time.Time
}

// NewConsultation builds a pending request from the public form.
func NewConsultation(id, name, email, message string) (*Consultation, error) {
	consultation := &Consultation{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(message),
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	if err := consultation.Validate(); err != nil {
		return nil, err
	}
	return consultation, nil
}

// Validate re-applies core invariants for persistence.
func (c *Consultation) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmptyEmail
	}
	if strings.TrimSpace(c.Message) == "" {
		return ErrEmptyMessage
	}
	switch c.Status {
	case StatusPending, StatusContacted, StatusResolved:
		return nil
	default:
		return ErrInvalidStatus
	}
}

// SetStatus moves the request to a new handling state.
func (c *Consultation) SetStatus(status Status) error {
	switch status {
	case StatusPending, StatusContacted, StatusResolved:
		c.Status = status
		return nil
	default:
		return ErrInvalidStatus
	}
}
