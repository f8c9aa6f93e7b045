package models

import (
	"time"
)

// Follow is a directed edge: User receives Author's posts in their following
// feed. Both invariants live in the schema so racing requests cannot break
// them: the (user, author) pair is unique and a user can never follow
// themselves.
type Follow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_user_author;check:user_author_different,user_id <> author_id" json:"user_id"`
	User     User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	AuthorID uint `gorm:"not null;uniqueIndex:idx_user_author" json:"author_id"`
	Author   User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`

	CreatedAt time.Time `json:"created_at"`
}
