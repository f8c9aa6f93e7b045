package services

import (
	"errors"
	"yatube/internal/db"
	"yatube/internal/models"

	"gorm.io/gorm"
)

// ErrSelfFollow rejects follow edges where both ends are the same user. The
// schema carries a matching check constraint, so the rule holds even for
// writes that bypass this service.
var ErrSelfFollow = errors.New("users cannot follow themselves")

// FollowAuthor creates the follow edge user -> author. Following an author
// twice is a no-op: the insert races against the unique (user, author) index
// and a duplicate-key conflict means the edge already exists.
func FollowAuthor(userID, authorID uint) error {
	if userID == authorID {
		return ErrSelfFollow
	}

	follow := models.Follow{UserID: userID, AuthorID: authorID}
	if err := db.DB.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		if errors.Is(err, gorm.ErrCheckConstraintViolated) {
			return ErrSelfFollow
		}
		return err
	}
	return nil
}

// UnfollowAuthor removes the follow edge if present; absent edges are a no-op.
func UnfollowAuthor(userID, authorID uint) error {
	return db.DB.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether user already follows author.
func IsFollowing(userID, authorID uint) bool {
	var count int64
	db.DB.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
