package model

import "time"

// Layout is a named real-estate development plan containing a fixed set
// of plots.  TotalArea is free text (e.g. "22 acres") rather than a
// number because marketing material quotes it that way.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – unique layout name.
//  TotalArea  – free-text total area.
//  TotalPlots – number of plots in the layout.
//  Plots      – the plots belonging to this layout.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp (nil when never updated).
type Layout struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	TotalArea  string     `json:"total_area"`
	TotalPlots int        `json:"total_plots"`
	Plots      []Plot     `json:"plots"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
