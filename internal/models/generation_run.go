package models

import "time"

// GenerationRun records one successful generation.
type GenerationRun struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	TargetProject string    `gorm:"size:1024;not null;index" json:"targetProject"`
	ConnectionURL string    `gorm:"size:1024" json:"connectionUrl"`
	Tables        string    `gorm:"type:text" json:"tables"`
	Domains       string    `gorm:"type:text" json:"domains"`
	Author        string    `gorm:"size:255" json:"author"`
	FileCount     int       `json:"fileCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
