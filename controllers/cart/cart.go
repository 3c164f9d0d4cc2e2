package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/issa01818/ClickShop1/models"
	"github.com/issa01818/ClickShop1/render"
	"github.com/issa01818/ClickShop1/session"
	"github.com/issa01818/ClickShop1/store"
)

// POST /cart/add
//
// Appends the product id to the session cart and bounces back to the catalog.
// The id is not checked against the catalog here; checkout does the lookup.
func AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.PostForm("product_id"), 10, 32)
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid product id")
			return
		}

		state := session.Get(c)
		state.Cart = append(state.Cart, uint(productID))
		if err := session.Save(c, state); err != nil {
			c.String(http.StatusInternalServerError, "Failed to update cart")
			return
		}

		c.Redirect(http.StatusFound, "/products")
	}
}

// GET /cart
//
// Resolves each cart id to a product, preserving order and duplicates, and
// renders the line items with their running total. A never-set or empty cart
// gets its own page rather than a zero-total table.
func GetCart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := session.Get(c)
		if len(state.Cart) == 0 {
			render.Page(http.StatusOK, "cart_empty.html", nil).Write(c)
			return
		}

		var items []models.Product
		var total float64
		for _, id := range state.Cart {
			product, err := st.FindProduct(id)
			if err != nil {
				c.String(http.StatusInternalServerError, "Failed to load cart")
				return
			}
			if product == nil {
				continue
			}
			items = append(items, *product)
			total += product.Price
		}

		render.Page(http.StatusOK, "cart.html", gin.H{
			"Items":    items,
			"Total":    total,
			"Username": state.Username,
		}).Write(c)
	}
}
