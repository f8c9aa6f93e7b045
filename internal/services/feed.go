package services

import (
	"yatube/internal/config"
	"yatube/internal/db"
	"yatube/internal/models"
)

// Every feed is a differently filtered view over posts, newest first. The id
// tiebreak keeps ordering stable when posts share a creation timestamp.
const feedOrder = "created_at DESC, id DESC"

// fillCommentCounts batch-loads per-post comment counts for a feed page.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

func perPage() int {
	return config.Get().PostsPerPage
}

// GlobalFeed returns one page of all posts.
func GlobalFeed(pageNum int) ([]models.Post, Page) {
	var total int64
	db.DB.Model(&models.Post{}).Count(&total)

	page := NewPage(total, perPage(), pageNum)

	var posts []models.Post
	db.DB.Preload("Author").Preload("Group").
		Order(feedOrder).
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&posts)

	fillCommentCounts(posts)
	return posts, page
}

// GroupFeed returns one page of the posts assigned to a group.
func GroupFeed(groupID uint, pageNum int) ([]models.Post, Page) {
	var total int64
	db.DB.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&total)

	page := NewPage(total, perPage(), pageNum)

	var posts []models.Post
	db.DB.Preload("Author").Preload("Group").
		Where("group_id = ?", groupID).
		Order(feedOrder).
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&posts)

	fillCommentCounts(posts)
	return posts, page
}

// ProfileFeed returns one page of an author's own posts.
func ProfileFeed(authorID uint, pageNum int) ([]models.Post, Page) {
	var total int64
	db.DB.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&total)

	page := NewPage(total, perPage(), pageNum)

	var posts []models.Post
	db.DB.Preload("Author").Preload("Group").
		Where("author_id = ?", authorID).
		Order(feedOrder).
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&posts)

	fillCommentCounts(posts)
	return posts, page
}

// FollowingFeed returns one page of posts by the authors the viewer follows,
// and nothing else.
func FollowingFeed(viewerID uint, pageNum int) ([]models.Post, Page) {
	followed := db.DB.Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", viewerID)

	var total int64
	db.DB.Model(&models.Post{}).Where("author_id IN (?)", followed).Count(&total)

	page := NewPage(total, perPage(), pageNum)

	var posts []models.Post
	db.DB.Preload("Author").Preload("Group").
		Where("author_id IN (?)", followed).
		Order(feedOrder).
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&posts)

	fillCommentCounts(posts)
	return posts, page
}

// PostComments loads a post's comments, newest first.
func PostComments(postID uint) []models.Comment {
	var comments []models.Comment
	db.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order(feedOrder).
		Find(&comments)
	return comments
}

// AuthorPostCount is shown on post detail and profile pages.
func AuthorPostCount(authorID uint) int64 {
	var count int64
	db.DB.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count)
	return count
}
