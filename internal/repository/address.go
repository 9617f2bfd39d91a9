package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const addressColumns = `id, user_id, line1, city, postcode, created_at`

type AddressRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAddressRepo(db *dbpg.DB) *AddressRepository {
	return &AddressRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanAddress(row rowScanner) (*domain.Address, error) {
	var a domain.Address
	err := row.Scan(&a.ID, &a.UserID, &a.Line1, &a.City, &a.Postcode, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Create(ctx context.Context, addr *domain.Address) error {
	query := `INSERT INTO addresses (id, user_id, line1, city, postcode, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		addr.ID, addr.UserID, addr.Line1, addr.City, addr.Postcode, addr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}

	return nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get address: %w", err)
	}

	addr, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("scan address: %w", err)
	}

	return addr, nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Address, error) {
	query := `SELECT ` + addressColumns + `
			  FROM addresses
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Address
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		res = append(res, addr)
	}

	return res, rows.Err()
}
