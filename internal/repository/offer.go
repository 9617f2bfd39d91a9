package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const offerColumns = `id, worker_id, service_id, price, experience, description, active, created_at`

type OfferRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOfferRepo(db *dbpg.DB) *OfferRepository {
	return &OfferRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanOffer(row rowScanner) (*domain.WorkerOffer, error) {
	var o domain.WorkerOffer
	err := row.Scan(
		&o.ID, &o.WorkerID, &o.ServiceID, &o.Price,
		&o.Experience, &o.Description, &o.Active, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.WorkerOffer) error {
	query := `INSERT INTO worker_services
			  (id, worker_id, service_id, price, experience, description, active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.WorkerID, o.ServiceID, o.Price,
		o.Experience, o.Description, o.Active, o.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrOfferExists
		}
		return fmt.Errorf("insert worker offer: %w", err)
	}

	return nil
}

// GetActive returns the worker's active offer for a service. This is the
// qualification check behind accept authorization and booking conversion.
func (r *OfferRepository) GetActive(ctx context.Context, workerID, serviceID string) (*domain.WorkerOffer, error) {
	query := `SELECT ` + offerColumns + `
			  FROM worker_services
			  WHERE worker_id = $1 AND service_id = $2 AND active`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, workerID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get active offer: %w", err)
	}

	offer, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("scan offer: %w", err)
	}

	return offer, nil
}

// ListQualified returns active offers for a service excluding the given
// worker ids (the request's exclusion set).
func (r *OfferRepository) ListQualified(ctx context.Context, serviceID string, excluding []string) ([]*domain.WorkerOffer, error) {
	query := `SELECT ` + offerColumns + `
			  FROM worker_services
			  WHERE service_id = $1 AND active AND worker_id <> ALL($2)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, serviceID, exclusionArray(excluding))
	if err != nil {
		return nil, fmt.Errorf("list qualified offers: %w", err)
	}
	defer rows.Close()

	return collectOffers(rows)
}

func (r *OfferRepository) ListByWorker(ctx context.Context, workerID string) ([]*domain.WorkerOffer, error) {
	query := `SELECT ` + offerColumns + `
			  FROM worker_services
			  WHERE worker_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("list offers by worker: %w", err)
	}
	defer rows.Close()

	return collectOffers(rows)
}

func (r *OfferRepository) ListByService(ctx context.Context, serviceID string) ([]*domain.WorkerOffer, error) {
	query := `SELECT ` + offerColumns + `
			  FROM worker_services
			  WHERE service_id = $1 AND active
			  ORDER BY price`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list offers by service: %w", err)
	}
	defer rows.Close()

	return collectOffers(rows)
}

func (r *OfferRepository) SetActive(ctx context.Context, id, workerID string, active bool) (*domain.WorkerOffer, error) {
	query := `UPDATE worker_services
			  SET active = $3
			  WHERE id = $1 AND worker_id = $2
			  RETURNING ` + offerColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, workerID, active)
	if err != nil {
		return nil, fmt.Errorf("toggle offer: %w", err)
	}

	offer, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("scan offer: %w", err)
	}

	return offer, nil
}

// exclusionArray binds an empty exclusion set as '{}' rather than NULL:
// `<> ALL(NULL)` evaluates to NULL in Postgres and matches no rows.
func exclusionArray(ids []string) pq.StringArray {
	if ids == nil {
		ids = []string{}
	}
	return pq.StringArray(ids)
}

func collectOffers(rows *sql.Rows) ([]*domain.WorkerOffer, error) {
	var res []*domain.WorkerOffer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		res = append(res, offer)
	}

	return res, rows.Err()
}
