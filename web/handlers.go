package web

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"bakeshop/store"
)

// pathID extracts the numeric id from paths like /api/products/{id}.
func pathID(path string) (int64, bool) {
	parts := strings.Split(path, "/")
	if len(parts) < 4 {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleProducts serves GET (public list) and POST (admin create).
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.state.Catalog.List())

	case http.MethodPost:
		if !s.isAdmin(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err := r.ParseMultipartForm(20 << 20); err != nil {
			http.Error(w, "parse multipart: "+err.Error(), http.StatusBadRequest)
			return
		}
		draft := store.ProductDraft{
			Name:        strings.TrimSpace(r.FormValue("name")),
			Description: r.FormValue("description"),
			Category:    strings.TrimSpace(r.FormValue("category")),
			Image:       strings.TrimSpace(r.FormValue("image")),
		}
		if priceStr := r.FormValue("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil {
				http.Error(w, "invalid price", http.StatusBadRequest)
				return
			}
			draft.Price = price
		}

		// Optional image file wins over the image field.
		if file, _, err := r.FormFile("file"); err == nil {
			if s.uploader == nil {
				_ = file.Close()
				draft.Image = PlaceholderImage
			} else {
				defer file.Close()
				url, err := s.uploader.Upload(r.Context(), file)
				if err != nil {
					log.Println("upload error:", err)
					http.Error(w, "upload failed", http.StatusInternalServerError)
					return
				}
				draft.Image = url
			}
		}

		p, err := s.state.Catalog.Add(draft)
		if err != nil {
			var verr *store.ValidationError
			if errors.As(err, &verr) {
				http.Error(w, verr.Error(), http.StatusBadRequest)
				return
			}
			log.Println("add product error:", err)
			http.Error(w, "add product failed", http.StatusInternalServerError)
			return
		}
		s.metrics.productsCreated.Inc()
		log.Printf("product #%d created: %q", p.ID, p.Name)
		writeJSON(w, http.StatusCreated, p)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleProductItem serves GET and DELETE for /api/products/{id}.
func (s *Server) handleProductItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, ok := s.state.Catalog.Get(id)
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodDelete:
		if !s.isAdmin(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !s.state.Catalog.Remove(id) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		s.metrics.productsDeleted.Inc()
		log.Printf("product #%d deleted", id)
		w.WriteHeader(http.StatusOK)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// cartView is the cart representation returned to the page.
type cartView struct {
	Items []store.LineItem `json:"items"`
	Total float64          `json:"total"`
}

// handleCart serves GET (current cart) and POST (add catalog item by id).
func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, cartView{
			Items: s.state.Cart.Items(),
			Total: s.state.Cart.Total(),
		})

	case http.MethodPost:
		var payload struct {
			ID int64 `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}
		p, ok := s.state.Catalog.Get(payload.ID)
		if !ok {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		s.state.Cart.Add(p)
		writeJSON(w, http.StatusOK, cartView{
			Items: s.state.Cart.Items(),
			Total: s.state.Cart.Total(),
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleCartItem serves PUT (set quantity) and DELETE for /api/cart/{id}.
func (s *Server) handleCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var payload struct {
			Quantity int `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}
		// qty <= 0 removes the line, so a missing line is only an error
		// when a positive quantity was requested.
		if !s.state.Cart.SetQuantity(id, payload.Quantity) && payload.Quantity > 0 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, cartView{
			Items: s.state.Cart.Items(),
			Total: s.state.Cart.Total(),
		})

	case http.MethodDelete:
		s.state.Cart.Remove(id)
		writeJSON(w, http.StatusOK, cartView{
			Items: s.state.Cart.Items(),
			Total: s.state.Cart.Total(),
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleCheckout accepts the delivery form and schedules the order commit.
// The response carries the receipt id; the order shows up in the ledger once
// the processing delay elapses.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	var info store.CustomerInfo
	if err := s.decoder.Decode(&info, r.PostForm); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	pending, err := s.state.Checkout.Submit(info)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) || errors.Is(err, store.ErrEmptyCart) {
			s.metrics.checkoutRejected.Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("checkout error:", err)
		http.Error(w, "checkout failed", http.StatusInternalServerError)
		return
	}

	go func() {
		if o, ok := <-pending.Done(); ok {
			s.metrics.ordersCommitted.Inc()
			log.Printf("order #%d committed receipt=%s total=%.2f", o.ID, o.ReceiptID, o.Total)
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{
		"receiptId": pending.ReceiptID,
		"status":    pending.State().String(),
	})
}

// handleContent serves GET (public) and PUT (admin edit via draft+save).
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.state.Content.Get())

	case http.MethodPut:
		if !s.isAdmin(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var payload store.HomeContent
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}
		draft := s.state.Content.BeginEdit()
		draft.HomeContent = payload
		if err := draft.Save(); err != nil {
			log.Println("save content error:", err)
			http.Error(w, "save failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, s.state.Content.Get())

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleOrders lists the ledger for the admin orders tab.
func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.isAdmin(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, s.state.Ledger.Orders())
}

// handleExport streams the snapshot document as a download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.isAdmin(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	data, err := s.state.Snapshot.Export()
	if err != nil {
		log.Println("export error:", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	s.metrics.snapshotExports.Inc()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="bakery-data.json"`)
	_, _ = w.Write(data)
}

// handleImport applies an uploaded snapshot document. The document may be a
// multipart file field or the raw request body.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.isAdmin(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var data []byte
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(20 << 20); err != nil {
			http.Error(w, "parse multipart: "+err.Error(), http.StatusBadRequest)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, err = io.ReadAll(file)
		if err != nil {
			http.Error(w, "read file: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		var err error
		data, err = io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := s.state.Snapshot.Import(data); err != nil {
		var perr *store.ParseError
		if errors.As(err, &perr) {
			s.metrics.importFailures.Inc()
			log.Println("import rejected:", err)
			http.Error(w, "import failed", http.StatusBadRequest)
			return
		}
		log.Println("import error:", err)
		http.Error(w, "import failed", http.StatusInternalServerError)
		return
	}
	s.metrics.snapshotImports.Inc()
	log.Printf("snapshot imported: %d products, %d orders", s.state.Catalog.Len(), s.state.Ledger.Len())
	w.WriteHeader(http.StatusOK)
}
