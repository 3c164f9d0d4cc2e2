package pageControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/issa01818/ClickShop1/render"
	"github.com/issa01818/ClickShop1/session"
)

// GET /
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := session.Get(c)
		render.Page(http.StatusOK, "index.html", gin.H{
			"Username": st.Username,
		}).Write(c)
	}
}

// GET /order/confirmation
func OrderConfirmation() gin.HandlerFunc {
	return func(c *gin.Context) {
		render.Page(http.StatusOK, "confirmation.html", nil).Write(c)
	}
}
