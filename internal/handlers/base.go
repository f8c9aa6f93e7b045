package handlers

import (
	"net/http"
	"yatube/internal/middleware"
	"yatube/internal/models"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderNotFound renders the custom 404 page.
func RenderNotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "core/404.html", gin.H{"Title": "Page not found"})
}

// RenderForbidden renders the custom 403 page.
func RenderForbidden(c *gin.Context) {
	Render(c, http.StatusForbidden, "core/403.html", gin.H{"Title": "Forbidden"})
}

// currentUser returns the logged-in user, or nil for anonymous visitors.
func currentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}
