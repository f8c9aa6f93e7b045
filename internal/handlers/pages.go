package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static informational pages.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) AboutAuthor(c *gin.Context) {
	Render(c, http.StatusOK, "about/author.html", gin.H{"Title": "About the author"})
}

func (h *PagesHandler) AboutTech(c *gin.Context) {
	Render(c, http.StatusOK, "about/tech.html", gin.H{"Title": "Technologies"})
}

// NotFound backs gin's NoRoute so unknown URLs get the custom 404 page.
func (h *PagesHandler) NotFound(c *gin.Context) {
	RenderNotFound(c)
}
