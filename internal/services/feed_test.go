package services

import (
	"fmt"
	"testing"
	"time"
	"yatube/internal/db/dbtest"
	"yatube/internal/models"
	"yatube/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// createPostAt pins CreatedAt so ordering assertions are deterministic.
func createPostAt(t *testing.T, conn *gorm.DB, author models.User, text string, groupID *uint, at time.Time) models.Post {
	t.Helper()
	post := models.Post{
		Text:      text,
		AuthorID:  author.ID,
		GroupID:   groupID,
		CreatedAt: at,
	}
	require.NoError(t, conn.Create(&post).Error)
	return post
}

func postTexts(posts []models.Post) []string {
	texts := make([]string, len(posts))
	for i, p := range posts {
		texts[i] = p.Text
	}
	return texts
}

func TestGlobalFeedNewestFirstAndPaginated(t *testing.T) {
	conn := dbtest.Open(t)
	author := createUser(t, conn, "writer")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 23; i++ {
		createPostAt(t, conn, author, fmt.Sprintf("post %02d", i), nil, base.Add(time.Duration(i)*time.Minute))
	}

	posts, page := GlobalFeed(1)
	require.Len(t, posts, 10)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, "post 22", posts[0].Text, "newest post leads the feed")
	assert.Equal(t, "post 13", posts[9].Text)

	posts, page = GlobalFeed(2)
	require.Len(t, posts, 10)
	assert.Equal(t, "post 12", posts[0].Text)

	posts, page = GlobalFeed(3)
	require.Len(t, posts, 3)
	assert.Equal(t, "post 00", posts[2].Text, "oldest post closes the last page")

	// Out-of-range pages clamp instead of coming back empty.
	posts, page = GlobalFeed(99)
	assert.Equal(t, 3, page.Number)
	assert.Len(t, posts, 3)

	posts, page = GlobalFeed(0)
	assert.Equal(t, 1, page.Number)
	assert.Len(t, posts, 10)
}

func TestGlobalFeedPreloadsAuthorAndCounts(t *testing.T) {
	conn := dbtest.Open(t)
	author := createUser(t, conn, "writer")
	reader := createUser(t, conn, "reader")

	post := createPostAt(t, conn, author, "discussed", nil, time.Now().Add(-time.Minute))
	for i := 0; i < 3; i++ {
		comment := models.Comment{PostID: post.ID, AuthorID: reader.ID, Text: fmt.Sprintf("comment %d", i)}
		require.NoError(t, conn.Create(&comment).Error)
	}

	posts, _ := GlobalFeed(1)
	require.Len(t, posts, 1)
	assert.Equal(t, "writer", posts[0].Author.Username)
	assert.Equal(t, 3, posts[0].CommentCount)
}

func TestGroupFeedFiltersByGroup(t *testing.T) {
	conn := dbtest.Open(t)
	author := createUser(t, conn, "writer")

	tech := models.Group{Title: "Tech", Slug: "tech"}
	travel := models.Group{Title: "Travel", Slug: "travel"}
	require.NoError(t, conn.Create(&tech).Error)
	require.NoError(t, conn.Create(&travel).Error)

	base := time.Now().Add(-time.Hour)
	createPostAt(t, conn, author, "tech one", &tech.ID, base)
	createPostAt(t, conn, author, "tech two", &tech.ID, base.Add(time.Minute))
	createPostAt(t, conn, author, "travel one", &travel.ID, base.Add(2*time.Minute))
	createPostAt(t, conn, author, "no group", nil, base.Add(3*time.Minute))

	posts, page := GroupFeed(tech.ID, 1)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, []string{"tech two", "tech one"}, postTexts(posts))
}

func TestProfileFeedFiltersByAuthor(t *testing.T) {
	conn := dbtest.Open(t)
	alice := createUser(t, conn, "alice")
	bob := createUser(t, conn, "bob")

	base := time.Now().Add(-time.Hour)
	createPostAt(t, conn, alice, "alice first", nil, base)
	createPostAt(t, conn, bob, "bob only", nil, base.Add(time.Minute))
	createPostAt(t, conn, alice, "alice second", nil, base.Add(2*time.Minute))

	posts, page := ProfileFeed(alice.ID, 1)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, []string{"alice second", "alice first"}, postTexts(posts))

	assert.EqualValues(t, 2, AuthorPostCount(alice.ID))
	assert.EqualValues(t, 1, AuthorPostCount(bob.ID))
}

func TestFollowingFeedOnlyFollowedAuthors(t *testing.T) {
	conn := dbtest.Open(t)
	viewer := createUser(t, conn, "viewer")
	followed := createUser(t, conn, "followed")
	stranger := createUser(t, conn, "stranger")

	base := time.Now().Add(-time.Hour)
	createPostAt(t, conn, followed, "followed early", nil, base)
	createPostAt(t, conn, stranger, "stranger post", nil, base.Add(time.Minute))
	createPostAt(t, conn, followed, "followed late", nil, base.Add(2*time.Minute))
	createPostAt(t, conn, viewer, "viewer's own", nil, base.Add(3*time.Minute))

	require.NoError(t, FollowAuthor(viewer.ID, followed.ID))

	posts, page := FollowingFeed(viewer.ID, 1)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, []string{"followed late", "followed early"}, postTexts(posts))

	// A non-follower sees nothing from authors they don't follow.
	posts, page = FollowingFeed(stranger.ID, 1)
	assert.EqualValues(t, 0, page.Total)
	assert.Empty(t, posts)
}

func TestFollowingFeedUpdatesAfterUnfollow(t *testing.T) {
	conn := dbtest.Open(t)
	viewer := createUser(t, conn, "viewer")
	author := createUser(t, conn, "author")

	createPostAt(t, conn, author, "a post", nil, time.Now().Add(-time.Minute))

	require.NoError(t, FollowAuthor(viewer.ID, author.ID))
	posts, _ := FollowingFeed(viewer.ID, 1)
	require.Len(t, posts, 1)

	require.NoError(t, UnfollowAuthor(viewer.ID, author.ID))
	posts, _ = FollowingFeed(viewer.ID, 1)
	assert.Empty(t, posts)
}

func TestGlobalFeedCacheStaleReadByDesign(t *testing.T) {
	conn := dbtest.Open(t)
	author := createUser(t, conn, "writer")

	base := time.Now().Add(-time.Hour)
	createPostAt(t, conn, author, "stays", nil, base)
	doomed := createPostAt(t, conn, author, "goes away", nil, base.Add(time.Minute))

	cache := utils.GetCache()
	cache.Flush()

	posts, _ := GlobalFeed(1)
	require.Len(t, posts, 2)
	cache.Set("index:page:1", posts, time.Minute)

	require.NoError(t, conn.Delete(&doomed).Error)

	// Within the TTL the cached page still shows the deleted post.
	cached, ok := cache.Get("index:page:1").([]models.Post)
	require.True(t, ok)
	assert.Equal(t, []string{"goes away", "stays"}, postTexts(cached))

	// An explicit flush makes the next read reflect the deletion.
	cache.Flush()
	assert.Nil(t, cache.Get("index:page:1"))
	posts, _ = GlobalFeed(1)
	assert.Equal(t, []string{"stays"}, postTexts(posts))
}

func TestPostCommentsNewestFirst(t *testing.T) {
	conn := dbtest.Open(t)
	author := createUser(t, conn, "writer")
	reader := createUser(t, conn, "reader")

	post := createPostAt(t, conn, author, "discussed", nil, time.Now().Add(-time.Hour))

	base := time.Now().Add(-30 * time.Minute)
	for i := 0; i < 3; i++ {
		comment := models.Comment{
			PostID:    post.ID,
			AuthorID:  reader.ID,
			Text:      fmt.Sprintf("comment %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, conn.Create(&comment).Error)
	}

	comments := PostComments(post.ID)
	require.Len(t, comments, 3)
	assert.Equal(t, "comment 2", comments[0].Text)
	assert.Equal(t, "comment 0", comments[2].Text)
	assert.Equal(t, "reader", comments[0].Author.Username)
}
