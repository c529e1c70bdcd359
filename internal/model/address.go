package model

import "context"

// AddressStore defines persistence operations for addresses.
type AddressStore interface {
	ListByUserID(ctx context.Context, userID int64) ([]Address, error)
	GetByID(ctx context.Context, id int64) (Address, error)
	Create(ctx context.Context, address Address) (Address, error)
	Update(ctx context.Context, address Address) (Address, error)
	Delete(ctx context.Context, id int64) error
}

// Address represents a stored address owned by a user. Rows are
// removed by the database when the owning user is deleted.
type Address struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}
