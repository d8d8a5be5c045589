// Package models holds the rows stored by the remote sink.
package models

import "time"

type Operation struct {
	ID             string    `db:"id"`
	IdempotencyKey string    `db:"idempotency_key"`
	PlotID         string    `db:"plot_id"`
	Type           string    `db:"type"`
	Notes          string    `db:"notes"`
	OccurredAt     time.Time `db:"occurred_at"`
	ImageURL       string    `db:"image_url"`
	CreatedAt      time.Time `db:"created_at"`
}

type Plot struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Crop      string    `db:"crop"`
	AreaHa    float64   `db:"area_ha"`
	UpdatedAt time.Time `db:"updated_at"`
}

// OperationTypes is the set of operation types the sink accepts.
var OperationTypes = map[string]struct{}{
	"irrigation":    {},
	"fertilization": {},
	"pest_control":  {},
	"pruning":       {},
	"harvest":       {},
	"observation":   {},
	"planting":      {},
	"other":         {},
}
