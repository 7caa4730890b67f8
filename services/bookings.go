package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"railbook/database"
	"railbook/models"
)

// Bookings reserves seats and reads bookings back.
type Bookings struct {
	db *database.DB
}

func NewBookings(db *database.DB) *Bookings {
	return &Bookings{db: db}
}

// Book reserves one seat on the train for the user. The decrement is
// a single conditional UPDATE so two concurrent calls can never both
// take the last seat; the booking row is inserted in the same
// transaction, so a decrement is never visible without its booking.
func (b *Bookings) Book(ctx context.Context, userID, trainID int) (*models.Booking, error) {
	tx, err := b.db.SQL.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE trains
		SET available_seats = available_seats - 1
		WHERE id = $1 AND available_seats > 0
	`, trainID)
	if err != nil {
		return nil, fmt.Errorf("error reserving seat: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error reserving seat: %w", err)
	}

	if affected == 0 {
		// Seat exhausted or no such train; the distinction only
		// matters on this already-failed path, so probing here
		// cannot reopen the decrement race.
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM trains WHERE id = $1)`, trainID); err != nil {
			return nil, fmt.Errorf("error checking train: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: train %d", ErrNotFound, trainID)
		}
		return nil, fmt.Errorf("%w: train %d", ErrNoSeatsAvailable, trainID)
	}

	booking := models.Booking{
		Ref:     uuid.NewString(),
		UserID:  userID,
		TrainID: trainID,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO bookings (booking_ref, user_id, train_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, booking.Ref, userID, trainID).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing booking: %w", err)
	}

	log.Info().Int("booking_id", booking.ID).Int("user_id", userID).Int("train_id", trainID).
		Msg("seat booked")
	return &booking, nil
}

// Get returns the booking joined with its train, scoped to the
// requesting user. A wrong id and another user's booking are both
// ErrNotFound; the caller cannot tell them apart.
func (b *Bookings) Get(ctx context.Context, bookingID, userID int) (*models.BookingDetail, error) {
	var detail models.BookingDetail
	err := b.db.SQL.GetContext(ctx, &detail, `
		SELECT b.id, b.booking_ref, t.name, t.source, t.destination, b.created_at
		FROM bookings b
		JOIN trains t ON b.train_id = t.id
		WHERE b.id = $1 AND b.user_id = $2
	`, bookingID, userID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("error fetching booking: %w", err)
	}

	return &detail, nil
}
