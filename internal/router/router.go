package router

import (
	"yatube/internal/handlers"
	"yatube/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postsHandler := handlers.NewPostsHandler()
	pagesHandler := handlers.NewPagesHandler()

	// Public routes
	r.GET("/", postsHandler.Index)                       // global feed (cached)
	r.GET("/group/:slug", postsHandler.GroupList)        // group feed
	r.GET("/profile/:username", postsHandler.Profile)    // author feed
	r.GET("/posts/:id", postsHandler.Detail)             // post detail + comments
	r.GET("/about/author", pagesHandler.AboutAuthor)     // static page
	r.GET("/about/tech", pagesHandler.AboutTech)         // static page

	auth := r.Group("/auth")
	{
		auth.GET("/signup", authHandler.ShowSignup)
		auth.POST("/signup", authHandler.Signup)
		auth.GET("/login", authHandler.ShowLogin)
		auth.POST("/login", authHandler.Login)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/password_reset", authHandler.ShowPasswordReset)
		auth.POST("/password_reset", authHandler.PasswordReset)
		auth.GET("/password_reset/confirm", authHandler.ShowPasswordResetConfirm)
		auth.POST("/password_reset/confirm", authHandler.PasswordResetConfirm)
	}

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired(), handlers.VerifyOrigin())
	{
		authorized.GET("/create", postsHandler.ShowCreate)
		authorized.POST("/create", postsHandler.Create)
		authorized.GET("/posts/:id/edit", postsHandler.ShowEdit)
		authorized.POST("/posts/:id/edit", postsHandler.Edit)
		authorized.POST("/posts/:id/comment", postsHandler.AddComment)

		authorized.GET("/follow", postsHandler.FollowIndex)
		authorized.POST("/profile/:username/follow", postsHandler.Follow)
		authorized.POST("/profile/:username/unfollow", postsHandler.Unfollow)
	}

	r.NoRoute(pagesHandler.NotFound)
}
