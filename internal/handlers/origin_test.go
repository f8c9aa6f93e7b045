package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func originTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	render := multitemplate.NewRenderer()
	render.AddFromString("core/403.html", "forbidden")
	r.HTMLRender = render

	r.POST("/submit", VerifyOrigin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func postWithHeaders(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/submit", strings.NewReader("text=hi"))
	req.Host = "example.com"
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyOriginAllowsSameHost(t *testing.T) {
	r := originTestEngine()

	w := postWithHeaders(r, map[string]string{"Origin": "http://example.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postWithHeaders(r, map[string]string{"Referer": "http://example.com/posts/1"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyOriginRejectsForeignHost(t *testing.T) {
	r := originTestEngine()

	w := postWithHeaders(r, map[string]string{"Origin": "http://evil.test"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postWithHeaders(r, map[string]string{"Referer": "http://evil.test/form"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyOriginPassesWithoutHeaders(t *testing.T) {
	r := originTestEngine()

	w := postWithHeaders(r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
