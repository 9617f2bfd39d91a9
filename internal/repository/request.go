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

const requestColumns = `id, customer_id, service_id, service_category_id, description,
		preferred_datetime, address_id, status, accepted_by_worker_id, accepted_at,
		booking_id, expires_at, created_at, updated_at`

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.ServiceRequest, error) {
	var (
		r          domain.ServiceRequest
		acceptedBy sql.NullString
		acceptedAt sql.NullTime
		bookingID  sql.NullString
	)
	err := row.Scan(
		&r.ID, &r.CustomerID, &r.ServiceID, &r.ServiceCategoryID, &r.Description,
		&r.PreferredDateTime, &r.AddressID, &r.Status, &acceptedBy, &acceptedAt,
		&bookingID, &r.ExpiresAt, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if acceptedBy.Valid {
		r.AcceptedBy = &domain.Acceptance{
			WorkerID:  acceptedBy.String,
			Timestamp: acceptedAt.Time,
		}
	}
	if bookingID.Valid {
		r.BookingID = &bookingID.String
	}
	return &r, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	query := `INSERT INTO service_requests
			  (id, customer_id, service_id, service_category_id, description,
			   preferred_datetime, address_id, status, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		req.ID, req.CustomerID, req.ServiceID, req.ServiceCategoryID, req.Description,
		req.PreferredDateTime, req.AddressID, req.Status, req.ExpiresAt,
		req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service request: %w", err)
	}

	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service request: %w", err)
	}

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan service request: %w", err)
	}

	if err = r.attachRejections(ctx, []*domain.ServiceRequest{req}); err != nil {
		return nil, err
	}

	return req, nil
}

// Accept is the acceptance compare-and-swap: the transition is applied only
// if the request is still pending and unexpired. Of two racing workers
// exactly one update matches; the loser gets a status conflict. A pending
// request past its deadline is settled to expired here, and the expired
// request is returned alongside the conflict so the caller can notify the
// customer exactly once.
func (r *RequestRepository) Accept(ctx context.Context, id, workerID string, at time.Time) (*domain.ServiceRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE service_requests
			  SET status = $3, accepted_by_worker_id = $2, accepted_at = $4, updated_at = now()
			  WHERE id = $1 AND status = $5 AND expires_at > $4`
	res, err := tx.ExecContext(
		ctx, query, id, workerID,
		domain.RequestStatusAccepted, at, domain.RequestStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("accept request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("accept rows affected: %w", err)
	}
	if rows == 0 {
		var (
			status    domain.RequestStatus
			expiresAt time.Time
		)
		checkQuery := `SELECT status, expires_at FROM service_requests WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status, &expiresAt); scanErr != nil {
			return nil, domain.ErrRequestNotFound
		}
		if status == domain.RequestStatusPending && !expiresAt.After(at) {
			// The request outlived its window; settle it lazily.
			expireQuery := `UPDATE service_requests SET status = $2, updated_at = now()
						    WHERE id = $1 AND status = $3`
			expRes, expErr := tx.ExecContext(ctx, expireQuery, id,
				domain.RequestStatusExpired, domain.RequestStatusPending)
			if expErr != nil {
				return nil, fmt.Errorf("expire overdue request: %w", expErr)
			}
			if commitErr := tx.Commit(); commitErr != nil {
				return nil, fmt.Errorf("commit expire: %w", commitErr)
			}
			// Only the call that performed the flip reports the request back,
			// so the customer is notified once.
			if flipped, raErr := expRes.RowsAffected(); raErr == nil && flipped > 0 {
				if req, getErr := r.GetByID(ctx, id); getErr == nil {
					return req, domain.NewStatusConflict(domain.RequestStatusExpired)
				}
			}
			return nil, domain.NewStatusConflict(domain.RequestStatusExpired)
		}
		return nil, domain.NewStatusConflict(status)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit accept: %w", err)
	}

	return r.GetByID(ctx, id)
}

// RejectByWorker appends the worker to the exclusion set and either keeps
// the request pending (remaining qualified workers returned for re-fan-out)
// or expires it when the set is exhausted. Single transaction. A pending
// request past its deadline is settled to expired instead, the same lazy
// path Accept takes, with the expired request returned for notification.
func (r *RequestRepository) RejectByWorker(ctx context.Context, id, workerID, reason string) (*domain.ServiceRequest, []string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		status    domain.RequestStatus
		serviceID string
		overdue   bool
	)
	lockQuery := `SELECT status, service_id, expires_at <= now()
				  FROM service_requests
				  WHERE id = $1
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&status, &serviceID, &overdue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrRequestNotFound
		}
		return nil, nil, fmt.Errorf("lock request: %w", err)
	}
	if status != domain.RequestStatusPending {
		return nil, nil, domain.NewStatusConflict(status)
	}
	if overdue {
		// The row is locked, so this call owns the flip.
		expireQuery := `UPDATE service_requests SET status = $2, updated_at = now() WHERE id = $1`
		if _, err = tx.ExecContext(ctx, expireQuery, id, domain.RequestStatusExpired); err != nil {
			return nil, nil, fmt.Errorf("expire overdue request: %w", err)
		}
		if err = tx.Commit(); err != nil {
			return nil, nil, fmt.Errorf("commit expire: %w", err)
		}
		req, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return nil, nil, domain.NewStatusConflict(domain.RequestStatusExpired)
		}
		return req, nil, domain.NewStatusConflict(domain.RequestStatusExpired)
	}

	if err = r.insertRejection(ctx, tx, id, workerID, reason); err != nil {
		return nil, nil, err
	}

	remaining, err := r.remainingWorkers(ctx, tx, id, serviceID)
	if err != nil {
		return nil, nil, err
	}

	next := domain.RequestStatusPending
	if len(remaining) == 0 {
		next = domain.RequestStatusExpired
	}
	updateQuery := `UPDATE service_requests SET status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id, next); err != nil {
		return nil, nil, fmt.Errorf("update request status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit reject: %w", err)
	}

	req, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return req, remaining, nil
}

// RejectByCustomer excludes the previously accepted worker and re-opens the
// search. The rejected worker id is captured before accepted_by is cleared
// and returned for the rejection notification.
func (r *RequestRepository) RejectByCustomer(ctx context.Context, id, customerID, reason string) (*domain.ServiceRequest, string, []string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		status    domain.RequestStatus
		serviceID string
		workerID  sql.NullString
	)
	lockQuery := `SELECT status, service_id, accepted_by_worker_id
				  FROM service_requests
				  WHERE id = $1 AND customer_id = $2
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id, customerID).Scan(&status, &serviceID, &workerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", nil, domain.ErrRequestNotFound
		}
		return nil, "", nil, fmt.Errorf("lock request: %w", err)
	}
	if status != domain.RequestStatusAccepted || !workerID.Valid {
		return nil, "", nil, domain.NewStatusConflict(status)
	}
	rejectedWorkerID := workerID.String

	if err = r.insertRejection(ctx, tx, id, rejectedWorkerID, "customer rejected: "+reason); err != nil {
		return nil, "", nil, err
	}

	remaining, err := r.remainingWorkers(ctx, tx, id, serviceID)
	if err != nil {
		return nil, "", nil, err
	}

	next := domain.RequestStatusPending
	if len(remaining) == 0 {
		next = domain.RequestStatusExpired
	}
	updateQuery := `UPDATE service_requests
				    SET status = $2, accepted_by_worker_id = NULL, accepted_at = NULL, updated_at = now()
				    WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id, next); err != nil {
		return nil, "", nil, fmt.Errorf("reset request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, "", nil, fmt.Errorf("commit reject worker: %w", err)
	}

	req, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, "", nil, err
	}

	return req, rejectedWorkerID, remaining, nil
}

// Approve converts an accepted request into a booking: customer_approved,
// booking insert and booking_created happen in one transaction. The guard
// also pins the accepted worker so a re-accepted request cannot be approved
// against a stale read.
func (r *RequestRepository) Approve(ctx context.Context, id, customerID, workerID string, booking *domain.Booking) (*domain.ServiceRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	approveQuery := `UPDATE service_requests
					 SET status = $4, updated_at = now()
					 WHERE id = $1 AND customer_id = $2 AND status = $5 AND accepted_by_worker_id = $3`
	res, err := tx.ExecContext(
		ctx, approveQuery, id, customerID, workerID,
		domain.RequestStatusCustomerApproved, domain.RequestStatusAccepted,
	)
	if err != nil {
		return nil, fmt.Errorf("approve request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("approve rows affected: %w", err)
	}
	if rows == 0 {
		var status domain.RequestStatus
		checkQuery := `SELECT status FROM service_requests WHERE id = $1 AND customer_id = $2`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id, customerID).Scan(&status); scanErr != nil {
			return nil, domain.ErrRequestNotFound
		}
		return nil, domain.NewStatusConflict(status)
	}

	bookingQuery := `INSERT INTO bookings
					 (id, customer_id, worker_id, worker_offer_id, address_id, status,
					  booking_date, slot_start, slot_end, total_amount, notes, created_at, updated_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	if _, err = tx.ExecContext(
		ctx, bookingQuery,
		booking.ID, booking.CustomerID, booking.WorkerID, booking.WorkerOfferID,
		booking.AddressID, booking.Status, booking.BookingDate,
		booking.SlotStart, booking.SlotEnd, booking.TotalAmount, booking.Notes,
		booking.CreatedAt, booking.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	finalizeQuery := `UPDATE service_requests
					  SET status = $2, booking_id = $3, updated_at = now()
					  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, finalizeQuery, id, domain.RequestStatusBookingCreated, booking.ID); err != nil {
		return nil, fmt.Errorf("finalize request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit approve: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *RequestRepository) ListForWorker(ctx context.Context, workerID string, now time.Time) ([]*domain.ServiceRequest, error) {
	query := `SELECT ` + qualifiedColumns("sr") + `
			  FROM service_requests sr
			  JOIN worker_services ws
			      ON ws.service_id = sr.service_id
			      AND ws.worker_id = $1
			      AND ws.active
			  WHERE sr.status = $2
			    AND sr.expires_at > $3
			    AND NOT EXISTS (
			        SELECT 1 FROM service_request_rejections rj
			        WHERE rj.request_id = sr.id AND rj.worker_id = $1
			    )
			  ORDER BY sr.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, workerID, domain.RequestStatusPending, now)
	if err != nil {
		return nil, fmt.Errorf("list requests for worker: %w", err)
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

func (r *RequestRepository) ListForCustomer(ctx context.Context, customerID string) ([]*domain.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + `
			  FROM service_requests
			  WHERE customer_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list requests for customer: %w", err)
	}
	defer rows.Close()

	return r.collect(ctx, rows)
}

// ExpireOverdue flips pending requests past their deadline to expired and
// returns them. The lazy checks in Accept and ListForWorker stay correct
// when the sweep is disabled.
func (r *RequestRepository) ExpireOverdue(ctx context.Context, now time.Time) ([]*domain.ServiceRequest, error) {
	query := `UPDATE service_requests
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND expires_at < $3
			  RETURNING ` + requestColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.RequestStatusPending, domain.RequestStatusExpired, now,
	)
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}
	defer rows.Close()

	var res []*domain.ServiceRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expired request: %w", err)
		}
		res = append(res, req)
	}

	return res, rows.Err()
}

func (r *RequestRepository) collect(ctx context.Context, rows *sql.Rows) ([]*domain.ServiceRequest, error) {
	var res []*domain.ServiceRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service request: %w", err)
		}
		res = append(res, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRejections(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *RequestRepository) attachRejections(ctx context.Context, reqs []*domain.ServiceRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	ids := make([]string, 0, len(reqs))
	byID := make(map[string]*domain.ServiceRequest, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
		byID[req.ID] = req
	}

	query := `SELECT request_id, worker_id, reason, created_at
			  FROM service_request_rejections
			  WHERE request_id = ANY($1)
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("load rejections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			requestID string
			rej       domain.Rejection
		)
		if err = rows.Scan(&requestID, &rej.WorkerID, &rej.Reason, &rej.Timestamp); err != nil {
			return fmt.Errorf("scan rejection: %w", err)
		}
		if req, ok := byID[requestID]; ok {
			req.RejectedBy = append(req.RejectedBy, rej)
		}
	}

	return rows.Err()
}

func (r *RequestRepository) insertRejection(ctx context.Context, tx *sql.Tx, requestID, workerID, reason string) error {
	query := `INSERT INTO service_request_rejections (request_id, worker_id, reason, created_at)
			  VALUES ($1, $2, $3, now())`
	if _, err := tx.ExecContext(ctx, query, requestID, workerID, reason); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: request already rejected by this worker", domain.ErrValidation)
		}
		return fmt.Errorf("insert rejection: %w", err)
	}
	return nil
}

func (r *RequestRepository) remainingWorkers(ctx context.Context, tx *sql.Tx, requestID, serviceID string) ([]string, error) {
	query := `SELECT ws.worker_id
			  FROM worker_services ws
			  WHERE ws.service_id = $1
			    AND ws.active
			    AND ws.worker_id NOT IN (
			        SELECT worker_id FROM service_request_rejections WHERE request_id = $2
			    )`

	rows, err := tx.QueryContext(ctx, query, serviceID, requestID)
	if err != nil {
		return nil, fmt.Errorf("remaining workers: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan worker id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

func qualifiedColumns(alias string) string {
	return alias + `.id, ` + alias + `.customer_id, ` + alias + `.service_id, ` +
		alias + `.service_category_id, ` + alias + `.description, ` +
		alias + `.preferred_datetime, ` + alias + `.address_id, ` + alias + `.status, ` +
		alias + `.accepted_by_worker_id, ` + alias + `.accepted_at, ` +
		alias + `.booking_id, ` + alias + `.expires_at, ` + alias + `.created_at, ` +
		alias + `.updated_at`
}
