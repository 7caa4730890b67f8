package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railbook/services"
)

func TestAddTrain(t *testing.T) {
	t.Run("initializes available seats to total", func(t *testing.T) {
		db, mock := newMockDB(t)
		trains := services.NewTrains(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trains")).
			WithArgs("Express1", "NYC", "BOS", 120).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		id, err := trains.Add(context.Background(), "Express1", "NYC", "BOS", 120)
		require.NoError(t, err)
		assert.Equal(t, 4, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects non-positive seat counts", func(t *testing.T) {
		db, _ := newMockDB(t)
		trains := services.NewTrains(db)

		_, err := trains.Add(context.Background(), "Express1", "NYC", "BOS", 0)
		assert.ErrorIs(t, err, services.ErrInvalidArgument)

		_, err = trains.Add(context.Background(), "Express1", "NYC", "BOS", -3)
		assert.ErrorIs(t, err, services.ErrInvalidArgument)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		db, _ := newMockDB(t)
		trains := services.NewTrains(db)

		_, err := trains.Add(context.Background(), "", "NYC", "BOS", 10)
		assert.ErrorIs(t, err, services.ErrInvalidArgument)
	})
}

func TestListAvailability(t *testing.T) {
	routeRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name", "source", "destination", "total_seats", "available_seats"}).
			AddRow(1, "Express1", "NYC", "BOS", 120, 37).
			AddRow(2, "Express2", "NYC", "BOS", 80, 0)
	}

	t.Run("returns trains on the route", func(t *testing.T) {
		db, mock := newMockDB(t)
		trains := services.NewTrains(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM trains")).
			WithArgs("NYC", "BOS").
			WillReturnRows(routeRows())

		result, err := trains.ListAvailability(context.Background(), "NYC", "BOS")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Express1", result[0].Name)
		assert.Equal(t, 37, result[0].AvailableSeats)
		assert.Equal(t, 0, result[1].AvailableSeats)
	})

	t.Run("repeated reads return identical results", func(t *testing.T) {
		db, mock := newMockDB(t)
		trains := services.NewTrains(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM trains")).WillReturnRows(routeRows())
		mock.ExpectQuery(regexp.QuoteMeta("FROM trains")).WillReturnRows(routeRows())

		first, err := trains.ListAvailability(context.Background(), "NYC", "BOS")
		require.NoError(t, err)
		second, err := trains.ListAvailability(context.Background(), "NYC", "BOS")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown route is an empty list, not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		trains := services.NewTrains(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM trains")).
			WithArgs("NYC", "LAX").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "source", "destination", "total_seats", "available_seats"}))

		result, err := trains.ListAvailability(context.Background(), "NYC", "LAX")
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
