package model

import "time"

// PlotStatus enumerates the booking lifecycle states of a plot.  The set
// is closed: any other string is rejected by the schema layer.
type PlotStatus string

const (
	PlotAvailable    PlotStatus = "available"
	PlotBooked       PlotStatus = "booked"
	PlotAgreement    PlotStatus = "agreement"
	PlotRegistration PlotStatus = "registration"
)

// Valid reports whether s is one of the four known plot statuses.
func (s PlotStatus) Valid() bool {
	switch s {
	case PlotAvailable, PlotBooked, PlotAgreement, PlotRegistration:
		return true
	}
	return false
}

// Plot is an individual subdividable unit of land within a layout.
// Row and Col give the zero-based grid position used for visual layout;
// the model does not enforce (row, col) uniqueness within a layout.
//
// Fields:
//  ID         – primary key identifier.
//  PlotNumber – unique plot number rendered as a string.
//  Dimension  – free-text dimension such as "30×40".
//  Area       – numeric area derived from the dimension.
//  Status     – booking lifecycle status, defaults to available.
//  Row, Col   – zero-based grid position.
//  LayoutID   – owning layout.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp (nil when never updated).
type Plot struct {
	ID         int        `json:"id"`
	PlotNumber string     `json:"plot_number"`
	Dimension  string     `json:"dimension"`
	Area       float64    `json:"area"`
	Status     PlotStatus `json:"status"`
	Row        int        `json:"row"`
	Col        int        `json:"col"`
	LayoutID   int        `json:"layout_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
