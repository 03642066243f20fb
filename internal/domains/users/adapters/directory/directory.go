package directory

import (
	"context"

	ordersports "github.com/Mitesh0126/nursery-haven/internal/domains/orders/ports"
	"github.com/Mitesh0126/nursery-haven/internal/domains/users/ports"
)

var _ ordersports.CustomerDirectory = (*Directory)(nil)

// Directory lets the orders context look up customer identity without
// depending on the users domain model.
type Directory struct {
	users ports.Repository
}

func New(users ports.Repository) *Directory {
	return &Directory{users: users}
}

func (d *Directory) GetCustomer(ctx context.Context, id string) (ordersports.Customer, error) {
	user, err := d.users.GetByID(ctx, id)
	if err != nil {
		return ordersports.Customer{}, err
	}
	return ordersports.Customer{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
