package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmontufar/usuarios-service/internal/model"
)

var _ model.AddressStore = (*AddressRepository)(nil)

type AddressRepository struct {
	db *Connection
}

func NewAddressRepository(db *Connection) *AddressRepository {
	return &AddressRepository{
		db: db,
	}
}

func (r *AddressRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	query := `SELECT id, user_id, street, city, postal_code FROM addresses WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	var addresses []model.Address
	for rows.Next() {
		var address model.Address
		if err := rows.Scan(&address.ID, &address.UserID, &address.Street, &address.City, &address.PostalCode); err != nil {
			return nil, fmt.Errorf("failed to scan address row: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate address rows: %w", err)
	}

	return addresses, nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id int64) (model.Address, error) {
	var address model.Address
	query := `SELECT id, user_id, street, city, postal_code FROM addresses WHERE id = ?`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&address.ID, &address.UserID, &address.Street, &address.City, &address.PostalCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Address{}, model.ErrNotFound
		}
		return model.Address{}, fmt.Errorf("failed to get address by id: %w", err)
	}

	return address, nil
}

func (r *AddressRepository) Create(ctx context.Context, address model.Address) (model.Address, error) {
	query := `INSERT INTO addresses (user_id, street, city, postal_code) VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, address.UserID, address.Street, address.City, address.PostalCode)
	if err != nil {
		return model.Address{}, fmt.Errorf("failed to create address: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Address{}, fmt.Errorf("failed to get inserted address id: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update replaces street, city and postal code. The owning user is
// validated by the service but never rewritten.
func (r *AddressRepository) Update(ctx context.Context, address model.Address) (model.Address, error) {
	query := `UPDATE addresses SET street = ?, city = ?, postal_code = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, address.Street, address.City, address.PostalCode, address.ID); err != nil {
		return model.Address{}, fmt.Errorf("failed to update address: %w", err)
	}

	return r.GetByID(ctx, address.ID)
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM addresses WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}
