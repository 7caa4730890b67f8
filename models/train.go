package models

// Train represents a train with its seat inventory
type Train struct {
	ID             int    `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Source         string `db:"source" json:"source"`
	Destination    string `db:"destination" json:"destination"`
	TotalSeats     int    `db:"total_seats" json:"total_seats"`
	AvailableSeats int    `db:"available_seats" json:"available_seats"`
}

// AddTrainRequest represents a train registration request
type AddTrainRequest struct {
	Name        string `json:"name" binding:"required"`
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	TotalSeats  int    `json:"total_seats" binding:"required"`
}
