package handlers

import (
	"net/http"
	"strings"
	"yatube/internal/db"
	"yatube/internal/models"
	"yatube/internal/services"
	"yatube/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	mailService *services.MailService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		mailService: services.NewMailService(),
	}
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	Render(c, http.StatusOK, "auth/signup.html", gin.H{
		"Title":    "Sign up",
		"Username": "",
		"Email":    "",
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	fail := func(message string) {
		Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{
			"Title":    "Sign up",
			"Error":    message,
			"Username": username,
			"Email":    email,
		})
	}

	if username == "" {
		fail("Username is required")
		return
	}
	if !strings.Contains(email, "@") {
		fail("Enter a valid email address")
		return
	}
	if len(password) < 6 {
		fail("Password must be at least 6 characters")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		fail("Could not create the account")
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// The unique indexes on username and email surface here.
		fail("Username or email is already taken")
		return
	}

	h.mailService.SendWelcome(user.Email, user.Username)

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title":    "Log in",
		"Username": "",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user models.User
	err := db.DB.Where("username = ? OR email = ?", username, username).First(&user).Error
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title":    "Log in",
			"Error":    "Wrong username or password",
			"Username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	Render(c, http.StatusOK, "auth/logged_out.html", gin.H{"Title": "Logged out"})
}

func (h *AuthHandler) ShowPasswordReset(c *gin.Context) {
	Render(c, http.StatusOK, "auth/password_reset.html", gin.H{"Title": "Reset password"})
}

// PasswordReset emails a reset code. The response is the same whether or not
// the address is registered, so it cannot be used to probe for accounts.
func (h *AuthHandler) PasswordReset(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err == nil {
		code := utils.RandString(6)
		user.ResetCode = code
		db.DB.Save(&user)
		h.mailService.SendPasswordReset(user.Email, user.Username, code)
	}

	Render(c, http.StatusOK, "auth/password_reset_done.html", gin.H{
		"Title": "Reset password",
	})
}

func (h *AuthHandler) ShowPasswordResetConfirm(c *gin.Context) {
	Render(c, http.StatusOK, "auth/password_reset_confirm.html", gin.H{
		"Title": "Choose a new password",
		"Email": "",
	})
}

func (h *AuthHandler) PasswordResetConfirm(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	code := strings.TrimSpace(c.PostForm("code"))
	password := c.PostForm("password")

	fail := func(message string) {
		Render(c, http.StatusBadRequest, "auth/password_reset_confirm.html", gin.H{
			"Title": "Choose a new password",
			"Error": message,
			"Email": email,
		})
	}

	if len(password) < 6 {
		fail("Password must be at least 6 characters")
		return
	}

	var user models.User
	err := db.DB.Where("email = ? AND reset_code = ?", email, code).First(&user).Error
	if err != nil || code == "" {
		fail("Wrong email or reset code")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		fail("Could not update the password")
		return
	}

	user.Password = hash
	user.ResetCode = ""
	db.DB.Save(&user)

	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title":    "Log in",
		"Success":  "Password updated, you can log in now",
		"Username": user.Username,
	})
}
