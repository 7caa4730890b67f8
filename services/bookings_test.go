package services_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railbook/services"
)

func TestBook(t *testing.T) {
	t.Run("decrements seat and inserts booking in one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		bookings := services.NewBookings(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trains")).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
			WithArgs(sqlmock.AnyArg(), 2, 5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))
		mock.ExpectCommit()

		booking, err := bookings.Book(context.Background(), 2, 5)
		require.NoError(t, err)
		assert.Equal(t, 11, booking.ID)
		assert.Equal(t, 2, booking.UserID)
		assert.Equal(t, 5, booking.TrainID)
		assert.NotEmpty(t, booking.Ref)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exhausted train rolls back and reports no seats", func(t *testing.T) {
		db, mock := newMockDB(t)
		bookings := services.NewBookings(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trains")).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := bookings.Book(context.Background(), 2, 5)
		assert.ErrorIs(t, err, services.ErrNoSeatsAvailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown train rolls back and reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		bookings := services.NewBookings(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trains")).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		_, err := bookings.Book(context.Background(), 2, 99)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back the decrement", func(t *testing.T) {
		db, mock := newMockDB(t)
		bookings := services.NewBookings(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE trains")).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := bookings.Book(context.Background(), 2, 5)
		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrNoSeatsAvailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGet(t *testing.T) {
	t.Run("returns the owner's booking joined with its train", func(t *testing.T) {
		db, mock := newMockDB(t)
		bookings := services.NewBookings(db)

		booked := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b")).
			WithArgs(11, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "booking_ref", "name", "source", "destination", "created_at"}).
				AddRow(11, "ref-1", "Express1", "NYC", "BOS", booked))

		detail, err := bookings.Get(context.Background(), 11, 2)
		require.NoError(t, err)
		assert.Equal(t, 11, detail.BookingID)
		assert.Equal(t, "Express1", detail.TrainName)
		assert.Equal(t, "NYC", detail.Source)
		assert.Equal(t, "BOS", detail.Destination)
	})

	t.Run("another user's booking is not found, not forbidden", func(t *testing.T) {
		db, mock := newMockDB(t)
		bookings := services.NewBookings(db)

		// Scoping by user id makes a foreign booking scan as no rows.
		mock.ExpectQuery(regexp.QuoteMeta("FROM bookings b")).
			WithArgs(11, 3).
			WillReturnError(sql.ErrNoRows)

		_, err := bookings.Get(context.Background(), 11, 3)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.NotErrorIs(t, err, services.ErrForbidden)
	})
}
