package router

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutesDefinesExpectedPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	RegisterRoutes(r)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /",
		"GET /group/:slug",
		"GET /profile/:username",
		"GET /posts/:id",
		"GET /follow",
		"POST /create",
		"POST /posts/:id/comment",
		"POST /posts/:id/edit",
		"POST /profile/:username/follow",
		"POST /profile/:username/unfollow",
		"POST /auth/signup",
		"POST /auth/login",
		"GET /auth/logout",
		"POST /auth/password_reset",
		"POST /auth/password_reset/confirm",
		"GET /about/author",
		"GET /about/tech",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
