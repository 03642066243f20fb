package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/consultations/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists consultation requests in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB
// lifecycle; schema comes from internal/platform/migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type consultationRecord struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Message   string    `gorm:"column:message;type:text"`
	Status    string    `gorm:"column:status;type:varchar(16);index"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (consultationRecord) TableName() string { return "consultations" }

// Save upserts a consultation keyed by primary key.
func (r *Repository) Save(ctx context.Context, consultation *domain.Consultation) (*domain.Consultation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, errors.New("consultation is nil")
	}
	if err := consultation.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(consultation)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "message", "status", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Consultation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record consultationRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all requests, newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Consultation, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []consultationRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	consultations := make([]*domain.Consultation, 0, len(records))
	for i := range records {
		consultations = append(consultations, records[i].toDomain())
	}
	return consultations, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&consultationRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres consultation repository not configured")
	}
	return nil
}

func toRecord(consultation *domain.Consultation) consultationRecord {
	return consultationRecord{
		ID:        consultation.ID,
		Name:      consultation.Name,
		Email:     consultation.Email,
		Message:   consultation.Message,
		Status:    string(consultation.Status),
		CreatedAt: consultation.CreatedAt,
	}
}

func (r consultationRecord) toDomain() *domain.Consultation {
	return &domain.Consultation{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		Status:    domain.Status(r.Status),
		CreatedAt: r.CreatedAt,
	}
}
