package routes

import (
	"net/http"

	"dira-storefront/controllers"
	"dira-storefront/i18n"
	"dira-storefront/middleware"
	"dira-storefront/session"
	"dira-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Controllers bundles every handler the router serves
type Controllers struct {
	Landing  *controllers.LandingController
	Product  *controllers.ProductController
	Cart     *controllers.CartController
	Order    *controllers.OrderController
	Language *controllers.LanguageController
}

// Infra is what the router needs besides the controllers
type Infra struct {
	Sessions   *session.Manager
	Translator *i18n.Translator
	Metrics    *utils.Metrics
	Gatherer   prometheus.Gatherer
	Logger     *zap.Logger
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers, infra Infra) {
	router.Use(middleware.Instrument(infra.Metrics), middleware.RequestLogger(infra.Logger))
	// mux skips router middleware when nothing matches
	router.NotFoundHandler = middleware.Instrument(infra.Metrics)(
		middleware.RequestLogger(infra.Logger)(controllers.NotFound(infra.Translator)),
	)

	// Operational routes
	router.HandleFunc("/healthz", controllers.Health).Methods("GET")
	router.Handle("/metrics", utils.MetricsHandler(infra.Gatherer)).Methods("GET")

	// Storefront routes run inside a shopper session
	store := router.PathPrefix("/").Subrouter()
	store.Use(middleware.SessionMiddleware(infra.Sessions, infra.Logger))

	store.HandleFunc("/", c.Landing.Home).Methods("GET")

	// Shop routes
	store.HandleFunc("/shop", c.Product.GetProducts).Methods("GET")
	store.HandleFunc("/shop/products/{id}", c.Product.GetProductByID).Methods("GET")
	store.HandleFunc("/shop/products/{id}/add", c.Product.AddToCart).Methods("POST")

	// Cart routes
	store.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	store.HandleFunc("/cart", c.Cart.ClearCart).Methods("DELETE")
	store.HandleFunc("/cart/open", c.Cart.OpenCart).Methods("POST")
	store.HandleFunc("/cart/close", c.Cart.CloseCart).Methods("POST")
	store.HandleFunc("/cart/toggle", c.Cart.ToggleCart).Methods("POST")
	store.HandleFunc("/cart/items/{id}", c.Cart.RemoveFromCart).Methods("DELETE")
	store.HandleFunc("/cart/items/{id}/increment", c.Cart.IncrementItem).Methods("POST")
	store.HandleFunc("/cart/items/{id}/decrement", c.Cart.DecrementItem).Methods("POST")

	// Checkout routes
	store.HandleFunc("/checkout", c.Order.GetQuote).Methods("GET")
	store.HandleFunc("/checkout", c.Order.PlaceOrder).Methods("POST")
	store.HandleFunc("/checkout/delivery", c.Order.SetDeliveryMethod).Methods("PUT")
	store.HandleFunc("/checkout/promo", c.Order.ApplyPromo).Methods("POST")
	store.HandleFunc("/checkout/promo", c.Order.RemovePromo).Methods("DELETE")

	// Order confirmation routes
	store.HandleFunc("/order-confirmation", c.Order.GetConfirmation).Methods("GET")
	store.HandleFunc("/order-confirmation", c.Order.PostConfirmation).Methods("POST")

	// Language routes
	store.HandleFunc("/language", c.Language.GetLanguage).Methods("GET")
	store.HandleFunc("/language", c.Language.SetLanguage).Methods("PUT")
	store.HandleFunc("/language/toggle", c.Language.ToggleLanguage).Methods("POST")
	store.HandleFunc("/i18n/{key}", c.Language.Translate).Methods("GET")
}

// NewRouter returns a router with every route registered
func NewRouter(c Controllers, infra Infra) http.Handler {
	router := mux.NewRouter()
	RegisterRoutes(router, c, infra)
	return router
}
