package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/issa01818/ClickShop1/render"
	"github.com/issa01818/ClickShop1/session"
	"github.com/issa01818/ClickShop1/store"
)

// GET /register
func ShowRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		render.Page(http.StatusOK, "register.html", nil).Write(c)
	}
}

// POST /register
func Register(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		email := c.PostForm("email")
		password := c.PostForm("password")

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.String(http.StatusInternalServerError, "Registration failed")
			return
		}

		if _, err := st.CreateUser(username, email, string(hash)); err != nil {
			if errors.Is(err, store.ErrDuplicateUser) {
				render.PlainText(http.StatusConflict, "Email already in use!").Write(c)
				return
			}
			c.String(http.StatusInternalServerError, "Registration failed")
			return
		}

		c.Redirect(http.StatusFound, "/login")
	}
}

// GET /login
func ShowLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		render.Page(http.StatusOK, "login.html", nil).Write(c)
	}
}

// POST /login
func Login(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		user, err := st.FindUserByEmail(email)
		if err != nil {
			c.String(http.StatusInternalServerError, "Login failed")
			return
		}
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			render.PlainText(http.StatusUnauthorized, "Invalid email or password").Write(c)
			return
		}

		state := session.Get(c)
		state.UserID = user.ID
		state.Username = user.Username
		if err := session.Save(c, state); err != nil {
			c.String(http.StatusInternalServerError, "Login failed")
			return
		}

		c.Redirect(http.StatusFound, "/")
	}
}
