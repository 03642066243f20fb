package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB
// lifecycle; schema comes from internal/platform/migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate to a relational table. Line items and
// schedule details are purchase-time snapshots, stored as JSON documents.
type orderRecord struct {
	ID            string                  `gorm:"primaryKey;column:id;type:varchar(64)"`
	OrderID       string                  `gorm:"column:order_id;uniqueIndex"`
	TransactionID string                  `gorm:"column:transaction_id;uniqueIndex"`
	CustomerID    string                  `gorm:"column:customer_id;type:varchar(64);index"`
	CustomerName  string                  `gorm:"column:customer_name"`
	CustomerEmail string                  `gorm:"column:customer_email"`
	Items         []domain.LineItem       `gorm:"column:items;serializer:json"`
	Subtotal      float64                 `gorm:"column:subtotal"`
	BulkDiscount  float64                 `gorm:"column:bulk_discount"`
	Tax           float64                 `gorm:"column:tax"`
	Shipping      float64                 `gorm:"column:shipping"`
	CODCharge     float64                 `gorm:"column:cod_charge"`
	Total         float64                 `gorm:"column:total"`
	PaymentMethod string                  `gorm:"column:payment_method;type:varchar(16)"`
	PaymentStatus string                  `gorm:"column:payment_status;type:varchar(16);index"`
	Status        string                  `gorm:"column:status;type:varchar(16);index"`
	Delivery      *domain.DeliveryDetails `gorm:"column:delivery;serializer:json"`
	Pickup        *domain.PickupDetails   `gorm:"column:pickup;serializer:json"`
	CreatedAt     time.Time               `gorm:"column:created_at;index"`
	UpdatedAt     time.Time               `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Create inserts a new order.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByID fetches an order by primary key.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByOrderID resolves the human-readable ORD-... identifier.
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns matching orders newest first.
func (r *Repository) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	query := r.db.WithContext(ctx).Model(&orderRecord{}).Order("created_at DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	var records []orderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Update overwrites an existing order.
func (r *Repository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	result := r.db.WithContext(ctx).Model(&orderRecord{}).Where("id = ?", record.ID).Updates(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, record.ID)
}

// Delete removes an order by primary key.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, "id = ?", id)
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
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	return orderRecord{
		ID:            order.ID,
		OrderID:       order.OrderID,
		TransactionID: order.TransactionID,
		CustomerID:    order.CustomerID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Items:         order.Items,
		Subtotal:      order.Totals.Subtotal,
		BulkDiscount:  order.Totals.BulkDiscount,
		Tax:           order.Totals.Tax,
		Shipping:      order.Totals.Shipping,
		CODCharge:     order.Totals.CODCharge,
		Total:         order.Totals.Total,
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentStatus),
		Status:        string(order.Status),
		Delivery:      order.Delivery,
		Pickup:        order.Pickup,
		CreatedAt:     order.CreatedAt,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:            r.ID,
		OrderID:       r.OrderID,
		TransactionID: r.TransactionID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Items:         r.Items,
		Totals: domain.Totals{
			Subtotal:     r.Subtotal,
			BulkDiscount: r.BulkDiscount,
			Tax:          r.Tax,
			Shipping:     r.Shipping,
			CODCharge:    r.CODCharge,
			Total:        r.Total,
		},
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		PaymentStatus: domain.PaymentStatus(r.PaymentStatus),
		Status:        domain.Status(r.Status),
		Delivery:      r.Delivery,
		Pickup:        r.Pickup,
		CreatedAt:     r.CreatedAt,
	}
}
