package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists products in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB
// lifecycle; schema comes from internal/platform/migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// productRecord maps the product aggregate to a relational table.
type productRecord struct {
	ID               string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name             string    `gorm:"column:name;index"`
	Price            float64   `gorm:"column:price"`
	OriginalPrice    float64   `gorm:"column:original_price"`
	Description      string    `gorm:"column:description"`
	Category         string    `gorm:"column:category;type:varchar(64);index"`
	Image            string    `gorm:"column:image"`
	Stock            int       `gorm:"column:stock"`
	Status           string    `gorm:"column:status;type:varchar(16);index"`
	CareInstructions string    `gorm:"column:care_instructions"`
	IsPopular        bool      `gorm:"column:is_popular"`
	CreatedAt        time.Time `gorm:"column:created_at;index"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Save inserts or updates a product. The conflict assignments deliberately
// omit the stock column: a stale aggregate carried through an admin edit must
// not overwrite a level that concurrent checkouts have already moved.
func (r *Repository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := toRecord(product)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":              record.Name,
				"price":             record.Price,
				"original_price":    record.OriginalPrice,
				"description":       record.Description,
				"category":          record.Category,
				"image":             record.Image,
				"status":            record.Status,
				"care_instructions": record.CareInstructions,
				"is_popular":        record.IsPopular,
				"updated_at":        gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns a newest-first page of matching products plus the total count.
func (r *Repository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Product, int64, error) {
	if err := r.ensureDB(); err != nil {
		return nil, 0, err
	}
	query := r.db.WithContext(ctx).Model(&productRecord{})
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}
	var records []productRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, total, nil
}

// Delete removes a product by identifier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&productRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// DecrementStock guards the decrement with a single conditional UPDATE so
// concurrent checkouts cannot both pass the stock check.
func (r *Repository) DecrementStock(ctx context.Context, id string, qty int) (ports.StockLevel, error) {
	if err := r.ensureDB(); err != nil {
		return ports.StockLevel{}, err
	}
	result := r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		return ports.StockLevel{}, result.Error
	}
	if result.RowsAffected == 0 {
		product, err := r.GetByID(ctx, id)
		if err != nil {
			return ports.StockLevel{}, err
		}
		return ports.StockLevel{Old: product.Stock, New: product.Stock}, ports.ErrInsufficientStock
	}
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return ports.StockLevel{}, err
	}
	return ports.StockLevel{Old: product.Stock + qty, New: product.Stock}, nil
}

// IncrementStock restores stock released by a cancelled order.
func (r *Repository) IncrementStock(ctx context.Context, id string, qty int) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// SetStock overwrites the stock level in a single UPDATE, so an admin restock
// serializes with checkout decrements instead of racing a read-modify-write.
func (r *Repository) SetStock(ctx context.Context, id string, stock int) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, domain.ErrNegativeStock
	}
	result := r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id = ?", id).
		UpdateColumn("stock", stock)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:               product.ID,
		Name:             product.Name,
		Price:            product.Price,
		OriginalPrice:    product.OriginalPrice,
		Description:      product.Description,
		Category:         product.Category,
		Image:            product.Image,
		Stock:            product.Stock,
		Status:           string(product.Status),
		CareInstructions: product.CareInstructions,
		IsPopular:        product.IsPopular,
		CreatedAt:        product.CreatedAt,
	}
}

func (r productRecord) toDomain() *domain.Product {
	return &domain.Product{
		ID:               r.ID,
		Name:             r.Name,
		Price:            r.Price,
		OriginalPrice:    r.OriginalPrice,
		Description:      r.Description,
		Category:         r.Category,
		Image:            r.Image,
		Stock:            r.Stock,
		Status:           domain.Status(r.Status),
		CareInstructions: r.CareInstructions,
		IsPopular:        r.IsPopular,
		CreatedAt:        r.CreatedAt,
	}
}
