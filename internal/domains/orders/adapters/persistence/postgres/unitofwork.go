package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	catalogpostgres "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/adapters/persistence/postgres"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork runs a function against transaction-bound repositories. GORM
// opens a database transaction, commits on nil, and rolls back on error, so
// stock deductions and the order insert land or vanish together.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos ports.TxRepos) error) error {
	if u == nil || u.db == nil {
		return errors.New("postgres unit of work not configured")
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := ports.TxRepos{
			Catalog: catalogpostgres.NewRepository(tx),
			Orders:  NewRepository(tx),
		}
		return fn(ctx, repos)
	})
}
