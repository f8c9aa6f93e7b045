package main

import (
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"
	"yatube/internal/config"
	"yatube/internal/db"
	"yatube/internal/middleware"
	"yatube/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Get()

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions(cfg.SessionName, store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static assets and uploaded media
	r.Static("/static", "./web/static")
	r.Static("/media", cfg.MediaDir)

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	log.Printf("Yatube server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Map view names like "posts/index.html" to [layouts..., includes..., view]
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("2 Jan 2006 15:04")
		},
		"timeAgo": func(t time.Time) string {
			d := time.Since(t)
			switch {
			case d < time.Minute:
				return "just now"
			case d < time.Hour:
				return fmt.Sprintf("%dm ago", int(d.Minutes()))
			case d < 24*time.Hour:
				return fmt.Sprintf("%dh ago", int(d.Hours()))
			default:
				return t.Format("2 Jan 2006")
			}
		},
	}

	views, err := filepath.Glob(templatesDir + "/views/*/*.html")
	if err != nil {
		panic(err)
	}

	for _, view := range views {
		// Template name keeps the section prefix, e.g. "posts/index.html".
		name := filepath.ToSlash(filepath.Join(
			filepath.Base(filepath.Dir(view)), filepath.Base(view)))
		r.AddFromFilesFuncs(name, funcMap, assemble(view)...)
	}

	return r
}
