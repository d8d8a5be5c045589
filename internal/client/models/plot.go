package models

import "time"

// Plot is a cultivated parcel as cached locally for offline browsing.
type Plot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Crop      string    `json:"crop,omitempty"`
	AreaHa    float64   `json:"area_ha,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
