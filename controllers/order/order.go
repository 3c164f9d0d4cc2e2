package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/issa01818/ClickShop1/render"
	"github.com/issa01818/ClickShop1/session"
	"github.com/issa01818/ClickShop1/store"
)

// POST /checkout
//
// Requires a logged-in session (enforced by middleware.RequireLogin). Writes
// one order row per resolvable cart entry inside a single transaction, then
// clears the cart. Cart ids with no matching product are skipped silently.
// An empty cart still renders the confirmation with nothing recorded.
func Checkout(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := session.Get(c)

		placed, total, err := st.PlaceOrder(state.UserID, state.Cart)
		if err != nil {
			c.String(http.StatusInternalServerError, "Checkout failed")
			return
		}

		// Clear the cart only once the transaction has committed.
		state.Cart = nil
		if err := session.Save(c, state); err != nil {
			c.String(http.StatusInternalServerError, "Checkout failed")
			return
		}

		render.Page(http.StatusOK, "confirmation.html", gin.H{
			"Username": state.Username,
			"Placed":   placed,
			"Total":    total,
		}).Write(c)
	}
}
