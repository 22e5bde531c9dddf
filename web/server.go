// Package web exposes the storefront and admin HTTP surface over the
// in-memory stores. It is presentation glue: every mutation goes through the
// store package's operations.
package web

import (
	"log"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bakeshop/config"
	"bakeshop/store"
)

// Server serves the storefront API, the admin API and the static pages.
type Server struct {
	state    *store.State
	cfg      *config.Config
	metrics  *metrics
	registry *prometheus.Registry
	decoder  *schema.Decoder
	uploader Uploader
}

// NewServer wires a server over the given state. Image uploads are enabled
// when the config carries a Cloudinary URL.
func NewServer(state *store.State, cfg *config.Config) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	registry := prometheus.NewRegistry()
	s := &Server{
		state:    state,
		cfg:      cfg,
		metrics:  newMetrics(registry),
		registry: registry,
		decoder:  decoder,
	}
	if cfg.Media.CloudinaryURL != "" {
		up, err := NewCloudinaryUploader(cfg.Media.CloudinaryURL)
		if err != nil {
			log.Printf("warning: image uploads disabled: %v", err)
		} else {
			s.uploader = up
		}
	}
	return s
}

// Routes registers all handlers on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/login", s.handleLogin)
	mux.HandleFunc("/api/logout", s.handleLogout)

	mux.HandleFunc("/api/products", s.handleProducts)
	mux.HandleFunc("/api/products/", s.handleProductItem)
	mux.HandleFunc("/api/cart", s.handleCart)
	mux.HandleFunc("/api/cart/", s.handleCartItem)
	mux.HandleFunc("/api/checkout", s.handleCheckout)
	mux.HandleFunc("/api/content", s.handleContent)
	mux.HandleFunc("/api/orders", s.handleOrders)
	mux.HandleFunc("/api/admin/export", s.handleExport)
	mux.HandleFunc("/api/admin/import", s.handleImport)

	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// Static assets and pages, index.html at the root.
	fs := http.FileServer(http.Dir(s.cfg.Server.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFile(w, r, s.cfg.Server.StaticDir+"/index.html")
			return
		}
		http.ServeFile(w, r, s.cfg.Server.StaticDir+r.URL.Path)
	})

	return mux
}

// ListenAndServe blocks serving the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("server listening on %s", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, s.Routes())
}
