package models

import (
	"time"
)

// Group is a topic that posts can optionally belong to. Groups are seeded at
// startup and never managed through the web layer, so the slug stays stable
// once posts reference it.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;size:50;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (g *Group) String() string {
	return g.Title
}
