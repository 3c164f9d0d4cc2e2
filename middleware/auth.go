package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/issa01818/ClickShop1/session"
)

// RequireLogin redirects anonymous sessions to the login page and aborts the
// chain. Routes behind it can assume session.Get(c).UserID is set.
func RequireLogin(c *gin.Context) {
	if !session.Get(c).LoggedIn() {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}
