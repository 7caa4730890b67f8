package models

import "time"

// Booking represents a confirmed seat reservation
type Booking struct {
	ID        int       `db:"id" json:"id"`
	Ref       string    `db:"booking_ref" json:"booking_ref"`
	UserID    int       `db:"user_id" json:"user_id"`
	TrainID   int       `db:"train_id" json:"train_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// BookingDetail is a booking joined with its train, as returned to
// the owning user.
type BookingDetail struct {
	BookingID   int       `db:"id" json:"booking_id"`
	Ref         string    `db:"booking_ref" json:"booking_ref"`
	TrainName   string    `db:"name" json:"train_name"`
	Source      string    `db:"source" json:"source"`
	Destination string    `db:"destination" json:"destination"`
	BookedAt    time.Time `db:"created_at" json:"booked_at"`
}

// BookSeatRequest represents a seat booking request
type BookSeatRequest struct {
	TrainID int `json:"train_id" binding:"required"`
}
