package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tdhoang/marketgraph/internal/config"
	"github.com/tdhoang/marketgraph/internal/handlers"
	"github.com/tdhoang/marketgraph/internal/middleware"
	"github.com/tdhoang/marketgraph/internal/repo"
	"github.com/tdhoang/marketgraph/internal/token"
)

// pinger reports database reachability for /ready.
type pinger interface {
	Ping(ctx context.Context) error
}

// stores bundles what the handlers need; tests swap in in-memory versions.
type stores struct {
	users    handlers.UserStore
	products handlers.ProductStore
	cart     handlers.CartStore
}

// The graph-backed repos satisfy the handler store interfaces.
var (
	_ handlers.UserStore    = (*repo.UserRepo)(nil)
	_ handlers.ProductStore = (*repo.ProductRepo)(nil)
	_ handlers.CartStore    = (*repo.CartRepo)(nil)
)

func newRouter(st stores, db pinger, cfg config.Config) http.Handler {
	tokens := token.NewService([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	authH := &handlers.AuthHandler{Users: st.users, Tokens: tokens}
	productH := &handlers.ProductHandler{Products: st.products}
	cartH := &handlers.CartHandler{Cart: st.cart}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			handlers.JSONError(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public auth endpoints, rate limited so credential stuffing cannot
	// hammer bcrypt.
	authLimiter := middleware.AuthRateLimiter()
	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
		r.Post("/signup", authH.Signup)
		r.Post("/signin", authH.Signin)
	})

	// Public search
	r.Get("/products/search", productH.Search)

	// Bearer-token protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens))
		r.Use(middleware.MaxBytes(middleware.DefaultMaxBodyBytes))
		r.Post("/products", productH.Create)
		r.Post("/cart/add", cartH.Add)
		r.Get("/cart", cartH.List)
		r.Post("/cart/checkout", cartH.Checkout)
	})

	return r
}
