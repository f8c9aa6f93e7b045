package models

import (
	"time"
)

type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	Post     Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Text     string `gorm:"type:text;not null" json:"text"`
	// No UpdatedAt: comments are write-once.
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) String() string {
	return truncate(c.Text, previewLen)
}
