package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"railbook/database"
	"railbook/models"
)

// Trains manages the train inventory.
type Trains struct {
	db *database.DB
}

func NewTrains(db *database.DB) *Trains {
	return &Trains{db: db}
}

// Add registers a train with available_seats initialized to
// total_seats and returns the new train id.
func (t *Trains) Add(ctx context.Context, name, source, destination string, totalSeats int) (int, error) {
	if totalSeats <= 0 {
		return 0, fmt.Errorf("%w: total_seats must be positive", ErrInvalidArgument)
	}
	if name == "" || source == "" || destination == "" {
		return 0, fmt.Errorf("%w: name, source and destination are required", ErrInvalidArgument)
	}

	var id int
	err := t.db.SQL.QueryRowContext(ctx, `
		INSERT INTO trains (name, source, destination, total_seats, available_seats)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id
	`, name, source, destination, totalSeats).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error adding train: %w", err)
	}

	log.Info().Int("train_id", id).Str("source", source).Str("destination", destination).
		Int("seats", totalSeats).Msg("train added")
	return id, nil
}

// ListAvailability returns all trains on the given route. Matching is
// exact and case-sensitive; no matches is an empty list, not an error.
func (t *Trains) ListAvailability(ctx context.Context, source, destination string) ([]models.Train, error) {
	trains := []models.Train{}
	err := t.db.SQL.SelectContext(ctx, &trains, `
		SELECT id, name, source, destination, total_seats, available_seats
		FROM trains
		WHERE source = $1 AND destination = $2
		ORDER BY id
	`, source, destination)

	if err != nil {
		return nil, fmt.Errorf("error fetching availability: %w", err)
	}

	return trains, nil
}
