// Package models defines the persistence schema for audit reports.
package models

import "time"

// Run is one persisted audit run with its project-wide totals.
type Run struct {
	// ID is the run's UUID.
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Objects   int `json:"objects"`
	Prefabs   int `json:"prefabs"`
	Materials int `json:"materials"`
	Models    int `json:"models"`
	Shaders   int `json:"shaders"`
	Textures  int `json:"textures"`

	Findings []Finding `gorm:"foreignKey:RunID" json:"findings,omitempty"`
}

// Finding is one emitted record belonging to a run. Properties holds the
// record's ordered property values as a JSON array; their meaning depends
// on the category.
type Finding struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	RunID string `gorm:"size:36;index" json:"run_id"`

	Descriptor string `gorm:"size:64" json:"descriptor"`
	Subject    string `gorm:"size:255" json:"subject"`
	Category   string `gorm:"size:32" json:"category"`
	Path       string `gorm:"size:255" json:"path"`
	Line       int    `json:"line,omitempty"`
	Properties string `gorm:"type:text" json:"properties"`
}
