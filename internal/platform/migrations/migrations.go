package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&orderRecord{},
		&userRecord{},
		&sessionRecord{},
		&consultationRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID               string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name             string    `gorm:"column:name"`
	Price            float64   `gorm:"column:price"`
	OriginalPrice    float64   `gorm:"column:original_price"`
	Description      string    `gorm:"column:description;type:text"`
	Category         string    `gorm:"column:category;index"`
	Image            string    `gorm:"column:image"`
	Stock            int       `gorm:"column:stock"`
	Status           string    `gorm:"column:status;type:varchar(16);index"`
	CareInstructions string    `gorm:"column:care_instructions;type:text"`
	IsPopular        bool      `gorm:"column:is_popular"`
	CreatedAt        time.Time `gorm:"column:created_at;index"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the orders Postgres adapter. Line items and schedule
// details are JSON snapshots.
type orderRecord struct {
	ID            string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	OrderID       string    `gorm:"column:order_id;uniqueIndex"`
	TransactionID string    `gorm:"column:transaction_id;uniqueIndex"`
	CustomerID    string    `gorm:"column:customer_id;type:varchar(64);index"`
	CustomerName  string    `gorm:"column:customer_name"`
	CustomerEmail string    `gorm:"column:customer_email"`
	Items         string    `gorm:"column:items;type:jsonb"`
	Subtotal      float64   `gorm:"column:subtotal"`
	BulkDiscount  float64   `gorm:"column:bulk_discount"`
	Tax           float64   `gorm:"column:tax"`
	Shipping      float64   `gorm:"column:shipping"`
	CODCharge     float64   `gorm:"column:cod_charge"`
	Total         float64   `gorm:"column:total"`
	PaymentMethod string    `gorm:"column:payment_method;type:varchar(16)"`
	PaymentStatus string    `gorm:"column:payment_status;type:varchar(16);index"`
	Status        string    `gorm:"column:status;type:varchar(16);index"`
	Delivery      string    `gorm:"column:delivery;type:jsonb"`
	Pickup        string    `gorm:"column:pickup;type:jsonb"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(64)"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Phone        string    `gorm:"column:phone"`
	UserType     string    `gorm:"column:user_type;type:varchar(16);index"`
	RegisteredAt time.Time `gorm:"column:registered_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "users" }

// Session schema mirrors the session store.
type sessionRecord struct {
	Token     string     `gorm:"primaryKey;column:token;size:512"`
	Email     string     `gorm:"column:email;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at;index"`
}

func (sessionRecord) TableName() string { return "user_sessions" }

// Consultation schema mirrors the consultations Postgres adapter.
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
