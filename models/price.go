package models

import "time"

// Price is one sampled spread price for a pair, written by the analytics job.
type Price struct {
	ID        int       `db:"id" json:"id"`
	Pair      string    `db:"pair" json:"pair"`
	Price     float64   `db:"price" json:"price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
