// Package models defines the client-side farm-plot data: field operations,
// queued writes awaiting the remote sink, and cached plots.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/farmsync/internal/common"
)

// OperationType classifies a field operation performed on a plot.
type OperationType string

const (
	OperationIrrigation    OperationType = "irrigation"
	OperationFertilization OperationType = "fertilization"
	OperationPestControl   OperationType = "pest_control"
	OperationPruning       OperationType = "pruning"
	OperationHarvest       OperationType = "harvest"
	OperationObservation   OperationType = "observation"
	OperationPlanting      OperationType = "planting"
	OperationOther         OperationType = "other"
)

// OperationTypes lists every accepted type in display order.
var OperationTypes = []OperationType{
	OperationIrrigation,
	OperationFertilization,
	OperationPestControl,
	OperationPruning,
	OperationHarvest,
	OperationObservation,
	OperationPlanting,
	OperationOther,
}

func (t OperationType) Valid() bool {
	for _, known := range OperationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseOperationType accepts the canonical names case-insensitively.
func ParseOperationType(s string) (OperationType, error) {
	t := OperationType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidOperationType, s)
	}
	return t, nil
}

// Attachment is an image captured together with an operation.
type Attachment struct {
	Data        []byte
	ContentType string
	FileName    string
}

// OperationRecord is the structured row inserted into the remote sink.
type OperationRecord struct {
	IdempotencyKey string
	PlotID         string
	Type           OperationType
	Notes          string
	OccurredAt     time.Time
	ImageURL       string
}

// Operation is a record as stored by the remote sink.
type Operation struct {
	ID string `json:"id"`

	PlotID     string        `json:"plot_id"`
	Type       OperationType `json:"type"`
	Notes      string        `json:"notes,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
	ImageURL   string        `json:"image_url,omitempty"`

	IdempotencyKey string    `json:"idempotency_key"`
	CreatedAt      time.Time `json:"created_at"`
}
