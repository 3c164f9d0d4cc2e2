package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/issa01818/ClickShop1/controllers/cart"
	orderControllers "github.com/issa01818/ClickShop1/controllers/order"
	pageControllers "github.com/issa01818/ClickShop1/controllers/pages"
	productControllers "github.com/issa01818/ClickShop1/controllers/product"
	userControllers "github.com/issa01818/ClickShop1/controllers/user"
	"github.com/issa01818/ClickShop1/middleware"
	"github.com/issa01818/ClickShop1/store"
)

// SetupRoutes is the single entry-point that wires every route group.
func SetupRoutes(r *gin.Engine, st *store.Store) {
	// ──────────────── Pages ────────────────
	r.GET("/", pageControllers.Home())
	r.GET("/order/confirmation", pageControllers.OrderConfirmation())

	// ──────────────── Auth ────────────────
	r.GET("/register", userControllers.ShowRegister())
	r.POST("/register", userControllers.Register(st))
	r.GET("/login", userControllers.ShowLogin())
	r.POST("/login", userControllers.Login(st))

	// ──────────────── Catalog ────────────────
	r.GET("/products", productControllers.GetProducts(st))

	// ──────────────── Cart ────────────────
	r.POST("/cart/add", cartControllers.AddToCart())
	r.GET("/cart", cartControllers.GetCart(st))

	// ──────────────── Checkout ────────────────
	r.POST("/checkout", middleware.RequireLogin, orderControllers.Checkout(st))
}
