package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"yatube/internal/config"
	"yatube/internal/db"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/services"
	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostsHandler struct{}

func NewPostsHandler() *PostsHandler {
	return &PostsHandler{}
}

// pageParam reads the ?page= query. Absence or garbage means page 1; the
// paginator clamps out-of-range values, so any input yields a valid page.
func pageParam(c *gin.Context) int {
	page := utils.StringToInt(c.Query("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// Index is the global feed. The rendered page data is cached per page number
// and only refreshed when the TTL runs out, so a just-deleted post can keep
// showing up until the entry expires or the cache is flushed.
func (h *PostsHandler) Index(c *gin.Context) {
	page := pageParam(c)

	cacheKey := fmt.Sprintf("index:page:%d", page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			Render(c, http.StatusOK, "posts/index.html", hData)
			return
		}
	}

	posts, pageObj := services.GlobalFeed(page)

	renderData := gin.H{
		"Title": "Latest posts",
		"Posts": posts,
		"Page":  pageObj,
	}

	utils.GetCache().Set(cacheKey, renderData, config.Get().CacheTTL())

	Render(c, http.StatusOK, "posts/index.html", renderData)
}

// GroupList shows one group's feed.
func (h *PostsHandler) GroupList(c *gin.Context) {
	slug := c.Param("slug")

	var group models.Group
	if err := db.DB.Where("slug = ?", slug).First(&group).Error; err != nil {
		RenderNotFound(c)
		return
	}

	posts, pageObj := services.GroupFeed(group.ID, pageParam(c))

	Render(c, http.StatusOK, "posts/group_list.html", gin.H{
		"Title": group.Title,
		"Group": group,
		"Posts": posts,
		"Page":  pageObj,
	})
}

// Profile shows an author's feed plus whether the viewer follows them.
func (h *PostsHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderNotFound(c)
		return
	}

	posts, pageObj := services.ProfileFeed(author.ID, pageParam(c))

	following := false
	if viewer := currentUser(c); viewer != nil {
		following = services.IsFollowing(viewer.ID, author.ID)
	}

	Render(c, http.StatusOK, "posts/profile.html", gin.H{
		"Title":      "Posts by " + author.Username,
		"Author":     author,
		"Posts":      posts,
		"Page":       pageObj,
		"PostsCount": services.AuthorPostCount(author.ID),
		"Following":  following,
	})
}

// Detail shows one post with its comments, newest first.
func (h *PostsHandler) Detail(c *gin.Context) {
	var post models.Post
	if err := db.DB.Preload("Author").Preload("Group").
		First(&post, c.Param("id")).Error; err != nil {
		RenderNotFound(c)
		return
	}

	comments := services.PostComments(post.ID)

	type renderedComment struct {
		models.Comment
		TextHTML template.HTML
	}
	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	Render(c, http.StatusOK, "posts/post_detail.html", gin.H{
		"Title":      post.String(),
		"Post":       post,
		"PostText":   utils.RenderMarkdown(post.Text),
		"Comments":   rendered,
		"PostsCount": services.AuthorPostCount(post.AuthorID),
	})
}

// renderPostForm renders the shared create/edit form. CurrentGroupID drives
// the selected option and must always be a plain uint for the template.
func (h *PostsHandler) renderPostForm(c *gin.Context, code int, obj gin.H) {
	var groups []models.Group
	db.DB.Order("id ASC").Find(&groups)
	obj["Groups"] = groups
	if _, ok := obj["CurrentGroupID"]; !ok {
		obj["CurrentGroupID"] = uint(0)
	}
	Render(c, code, "posts/create_post.html", obj)
}

func (h *PostsHandler) ShowCreate(c *gin.Context) {
	h.renderPostForm(c, http.StatusOK, gin.H{
		"Title": "New post",
	})
}

func (h *PostsHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	text := c.PostForm("text")
	groupIDStr := c.PostForm("group_id")

	if text == "" {
		h.renderPostForm(c, http.StatusBadRequest, gin.H{
			"Title": "New post",
			"Error": "Post text cannot be empty",
		})
		return
	}

	var groupID *uint
	if groupIDStr != "" {
		id := uint(utils.StringToInt(groupIDStr))
		if id > 0 {
			groupID = &id
		}
	}

	imagePath := ""
	if header, err := c.FormFile("image"); err == nil && header != nil {
		path, err := services.SavePostImage(header)
		if err != nil {
			h.renderPostForm(c, http.StatusBadRequest, gin.H{
				"Title": "New post",
				"Error": "Could not store the image: " + err.Error(),
			})
			return
		}
		imagePath = path
	}

	post := models.Post{
		Text:     text,
		AuthorID: user.ID,
		GroupID:  groupID,
		Image:    imagePath,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		h.renderPostForm(c, http.StatusInternalServerError, gin.H{
			"Title": "New post",
			"Error": "Could not save the post",
		})
		return
	}

	// No cache invalidation here: the index is allowed to lag by the TTL.
	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

func (h *PostsHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.First(&post, c.Param("id")).Error; err != nil {
		RenderNotFound(c)
		return
	}

	// Editing someone else's post is a policy redirect to the read-only
	// view, not an error page.
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	currentGroupID := uint(0)
	if post.GroupID != nil {
		currentGroupID = *post.GroupID
	}

	h.renderPostForm(c, http.StatusOK, gin.H{
		"Title":          "Edit post",
		"IsEdit":         true,
		"Post":           post,
		"CurrentGroupID": currentGroupID,
	})
}

func (h *PostsHandler) Edit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.First(&post, c.Param("id")).Error; err != nil {
		RenderNotFound(c)
		return
	}

	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	text := c.PostForm("text")
	groupIDStr := c.PostForm("group_id")

	if text == "" {
		h.renderPostForm(c, http.StatusBadRequest, gin.H{
			"Title":  "Edit post",
			"IsEdit": true,
			"Error":  "Post text cannot be empty",
			"Post":   post,
		})
		return
	}

	var groupID *uint
	if groupIDStr != "" {
		id := uint(utils.StringToInt(groupIDStr))
		if id > 0 {
			groupID = &id
		}
	}

	if header, err := c.FormFile("image"); err == nil && header != nil {
		path, err := services.SavePostImage(header)
		if err == nil {
			post.Image = path
		}
	}

	post.Text = text
	post.GroupID = groupID

	if err := db.DB.Save(&post).Error; err != nil {
		h.renderPostForm(c, http.StatusInternalServerError, gin.H{
			"Title":  "Edit post",
			"IsEdit": true,
			"Error":  "Could not save the post",
			"Post":   post,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// AddComment attaches a comment to a post. Empty text is dropped silently,
// the browser ends up back on the post either way.
func (h *PostsHandler) AddComment(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var post models.Post
	if err := db.DB.First(&post, c.Param("id")).Error; err != nil {
		RenderNotFound(c)
		return
	}

	detailURL := fmt.Sprintf("/posts/%d", post.ID)

	text := c.PostForm("text")
	if text == "" {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Text:     text,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		Render(c, http.StatusInternalServerError, "core/error.html", gin.H{
			"Title": "Something went wrong",
			"Error": "Could not save the comment",
		})
		return
	}

	c.Redirect(http.StatusFound, detailURL)
}

// FollowIndex is the aggregated feed of the authors the viewer follows.
func (h *PostsHandler) FollowIndex(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	posts, pageObj := services.FollowingFeed(user.ID, pageParam(c))

	Render(c, http.StatusOK, "posts/follow.html", gin.H{
		"Title": "Your feed",
		"Posts": posts,
		"Page":  pageObj,
	})
}

func (h *PostsHandler) Follow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderNotFound(c)
		return
	}

	if err := services.FollowAuthor(user.ID, author.ID); err != nil && err != services.ErrSelfFollow {
		Render(c, http.StatusInternalServerError, "core/error.html", gin.H{
			"Title": "Something went wrong",
			"Error": "Could not follow this author",
		})
		return
	}

	// Self-follow attempts fall through to the redirect: rejected, no
	// error page, nothing written.
	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

func (h *PostsHandler) Unfollow(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderNotFound(c)
		return
	}

	if err := services.UnfollowAuthor(user.ID, author.ID); err != nil {
		Render(c, http.StatusInternalServerError, "core/error.html", gin.H{
			"Title": "Something went wrong",
			"Error": "Could not unfollow this author",
		})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}
