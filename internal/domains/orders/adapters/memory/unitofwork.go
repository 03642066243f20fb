package memory

import (
	"context"
	"sync"

	catalogdomain "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/domain"
	catalogports "github.com/Mitesh0126/nursery-haven/internal/domains/catalog/ports"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/domain"
	"github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork gives the in-memory stores transactional behavior through an
// in-process saga: every write records a compensating action, and a failed
// unit replays the compensations in reverse. A process-wide mutex serializes
// units, so no other checkout observes a half-applied state.
type UnitOfWork struct {
	mu      sync.Mutex
	catalog catalogports.Repository
	orders  ports.Repository
}

func NewUnitOfWork(catalog catalogports.Repository, orders ports.Repository) *UnitOfWork {
	return &UnitOfWork{catalog: catalog, orders: orders}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos ports.TxRepos) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	tx := &compensationLog{}
	repos := ports.TxRepos{
		Catalog: &compensatingCatalog{inner: u.catalog, log: tx},
		Orders:  &compensatingOrders{inner: u.orders, log: tx},
	}
	if err := fn(ctx, repos); err != nil {
		tx.rollback(ctx)
		return err
	}
	return nil
}

type compensationLog struct {
	undo []func(context.Context)
}

func (l *compensationLog) push(fn func(context.Context)) {
	l.undo = append(l.undo, fn)
}

func (l *compensationLog) rollback(ctx context.Context) {
	for i := len(l.undo) - 1; i >= 0; i-- {
		l.undo[i](ctx)
	}
}

// compensatingCatalog records the inverse of each stock mutation.
type compensatingCatalog struct {
	inner catalogports.Repository
	log   *compensationLog
}

func (c *compensatingCatalog) Save(ctx context.Context, product *catalogdomain.Product) (*catalogdomain.Product, error) {
	return c.inner.Save(ctx, product)
}

func (c *compensatingCatalog) GetByID(ctx context.Context, id string) (*catalogdomain.Product, error) {
	return c.inner.GetByID(ctx, id)
}

func (c *compensatingCatalog) List(ctx context.Context, filter catalogports.ListFilter) ([]*catalogdomain.Product, int64, error) {
	return c.inner.List(ctx, filter)
}

func (c *compensatingCatalog) Delete(ctx context.Context, id string) error {
	return c.inner.Delete(ctx, id)
}

func (c *compensatingCatalog) DecrementStock(ctx context.Context, id string, qty int) (catalogports.StockLevel, error) {
	level, err := c.inner.DecrementStock(ctx, id, qty)
	if err == nil {
		c.log.push(func(ctx context.Context) {
			_ = c.inner.IncrementStock(ctx, id, qty)
		})
	}
	return level, err
}

func (c *compensatingCatalog) SetStock(ctx context.Context, id string, stock int) (*catalogdomain.Product, error) {
	before, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product, err := c.inner.SetStock(ctx, id, stock)
	if err == nil {
		old := before.Stock
		c.log.push(func(ctx context.Context) {
			_, _ = c.inner.SetStock(ctx, id, old)
		})
	}
	return product, err
}

func (c *compensatingCatalog) IncrementStock(ctx context.Context, id string, qty int) error {
	err := c.inner.IncrementStock(ctx, id, qty)
	if err == nil {
		c.log.push(func(ctx context.Context) {
			_, _ = c.inner.DecrementStock(ctx, id, qty)
		})
	}
	return err
}

// compensatingOrders records the inverse of order creation and deletion.
type compensatingOrders struct {
	inner ports.Repository
	log   *compensationLog
}

func (o *compensatingOrders) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	created, err := o.inner.Create(ctx, order)
	if err == nil {
		id := created.ID
		o.log.push(func(ctx context.Context) {
			_ = o.inner.Delete(ctx, id)
		})
	}
	return created, err
}

func (o *compensatingOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return o.inner.GetByID(ctx, id)
}

func (o *compensatingOrders) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	return o.inner.GetByOrderID(ctx, orderID)
}

func (o *compensatingOrders) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Order, error) {
	return o.inner.List(ctx, filter)
}

func (o *compensatingOrders) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	return o.inner.Update(ctx, order)
}

func (o *compensatingOrders) Delete(ctx context.Context, id string) error {
	order, err := o.inner.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := o.inner.Delete(ctx, id); err != nil {
		return err
	}
	o.log.push(func(ctx context.Context) {
		_, _ = o.inner.Create(ctx, order)
	})
	return nil
}
