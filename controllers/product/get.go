package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/issa01818/ClickShop1/render"
	"github.com/issa01818/ClickShop1/session"
	"github.com/issa01818/ClickShop1/store"
)

// GET /products
func GetProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.ListProducts()
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to load products")
			return
		}

		state := session.Get(c)
		render.Page(http.StatusOK, "products.html", gin.H{
			"Products": products,
			"Username": state.Username,
		}).Write(c)
	}
}
