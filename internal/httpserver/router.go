package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/bistroboss/backend/internal/middleware/auth"
)

type Deps struct {
	AuthMW *authmw.Middleware

	AuthHandler    *AuthHTTP
	UserHandler    *UserHTTP
	MenuHandler    *MenuHTTP
	ReviewHandler  *ReviewHTTP
	CartHandler    *CartHTTP
	PaymentHandler *PaymentHTTP
	StatsHandler   *StatsHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	mw := d.AuthMW

	e.POST("/jwt", d.AuthHandler.IssueToken)

	users := e.Group("/users")
	users.GET("", d.UserHandler.ListUsers, mw.RequireAuth, mw.RequireAdmin)
	users.POST("", d.UserHandler.CreateUser)
	users.GET("/admin/:email", d.AuthHandler.AdminCheck, mw.RequireAuth, mw.RequireSelf("email"))
	users.PATCH("/:id/admin", d.UserHandler.PromoteUser, mw.RequireAuth, mw.RequireAdmin)
	users.DELETE("/:id", d.UserHandler.DeleteUser, mw.RequireAuth, mw.RequireAdmin)

	menu := e.Group("/menu")
	menu.GET("", d.MenuHandler.ListMenu)
	menu.GET("/search", d.MenuHandler.SearchMenu)
	menu.POST("", d.MenuHandler.CreateMenuItem, mw.RequireAuth, mw.RequireAdmin)
	menu.DELETE("/:id", d.MenuHandler.DeleteMenuItem, mw.RequireAuth, mw.RequireAdmin)

	e.GET("/reviews", d.ReviewHandler.ListReviews)
	e.POST("/reviews", d.ReviewHandler.CreateReview)

	carts := e.Group("/carts")
	carts.GET("", d.CartHandler.ListCart, mw.RequireAuth, mw.RequireSelfQuery("email"))
	carts.POST("", d.CartHandler.AddToCart)
	carts.DELETE("/:id", d.CartHandler.DeleteFromCart)

	e.POST("/create-payment-intent", d.PaymentHandler.CreateIntent)
	e.POST("/payments", d.PaymentHandler.SettlePayment)
	e.GET("/payments/:email", d.PaymentHandler.ListPayments, mw.RequireAuth, mw.RequireSelf("email"))

	e.GET("/admin-stats", d.StatsHandler.AdminStats, mw.RequireAuth, mw.RequireAdmin)
}
