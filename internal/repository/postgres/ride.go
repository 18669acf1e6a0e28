package postgres

import (
	"context"
	"database/sql"
	"errors"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// RideRepository is a PostgreSQL implementation of repository.RideRepository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// NewRideRepositoryWithTx creates a ride repository using a transaction.
func NewRideRepositoryWithTx(tx *sql.Tx) *RideRepository {
	return &RideRepository{q: tx}
}

const rideColumns = `id, user_id, pickup_location, dropoff_location, date, time, status, vehicle_type, price, payment_status, payment_id, current_location_lat, current_location_lng, estimated_arrival_time, created_at`

// Create persists a new ride.
func (r *RideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	query := `
		INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	var paymentID sql.NullString
	if ride.PaymentID != "" {
		paymentID = sql.NullString{String: ride.PaymentID, Valid: true}
	}

	// Live-tracking fields stay NULL at creation; nothing updates them yet.
	var lat, lng sql.NullFloat64
	if ride.CurrentLocationLat != nil {
		lat = sql.NullFloat64{Float64: *ride.CurrentLocationLat, Valid: true}
	}
	if ride.CurrentLocationLng != nil {
		lng = sql.NullFloat64{Float64: *ride.CurrentLocationLng, Valid: true}
	}
	var eta sql.NullString
	if ride.EstimatedArrivalTime != nil {
		eta = sql.NullString{String: *ride.EstimatedArrivalTime, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		ride.ID,
		ride.UserID,
		ride.PickupLocation,
		ride.DropoffLocation,
		ride.Date,
		ride.Time,
		ride.Status,
		ride.VehicleType,
		ride.Price,
		ride.PaymentStatus,
		paymentID,
		lat,
		lng,
		eta,
		ride.CreatedAt,
	)

	return err
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	ride, err := scanRide(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return ride, nil
}

// ListByUser retrieves a user's rides, most recent first.
func (r *RideRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*domain.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

// UpdateStatus sets the status of an existing ride.
func (r *RideRepository) UpdateStatus(ctx context.Context, id string, status domain.RideStatus) error {
	query := `UPDATE rides SET status = $1 WHERE id = $2`

	result, err := r.q.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanRide.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRide(row rowScanner) (*domain.Ride, error) {
	var ride domain.Ride
	var paymentID sql.NullString
	var lat, lng sql.NullFloat64
	var eta sql.NullString

	err := row.Scan(
		&ride.ID,
		&ride.UserID,
		&ride.PickupLocation,
		&ride.DropoffLocation,
		&ride.Date,
		&ride.Time,
		&ride.Status,
		&ride.VehicleType,
		&ride.Price,
		&ride.PaymentStatus,
		&paymentID,
		&lat,
		&lng,
		&eta,
		&ride.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentID.Valid {
		ride.PaymentID = paymentID.String
	}
	if lat.Valid {
		ride.CurrentLocationLat = &lat.Float64
	}
	if lng.Valid {
		ride.CurrentLocationLng = &lng.Float64
	}
	if eta.Valid {
		ride.EstimatedArrivalTime = &eta.String
	}

	return &ride, nil
}
