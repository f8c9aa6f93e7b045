package models

import (
	"time"
)

// previewLen is how many characters of body text the display string keeps.
const previewLen = 15

type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	// Optional topic. Deleting a group orphans its posts instead of
	// deleting them, so the reference is nullable with SET NULL.
	GroupID   *uint     `gorm:"index" json:"group_id"`
	Group     *Group    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`
	Image     string    `json:"image"` // path under the media dir, empty when none
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Not a column, filled in by the feed queries.
	CommentCount int `gorm:"-" json:"comment_count"`
}

func (p *Post) String() string {
	return truncate(p.Text, previewLen)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
