// Package api serves the menu and cart screens over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"foodorder/pkg/catalog"
	"foodorder/pkg/checkout"
	"foodorder/pkg/dialog"
	"foodorder/pkg/logger"
	otelx "foodorder/pkg/otel"
	"foodorder/pkg/screen"
	"foodorder/pkg/session"
)

// SessionCookie carries the device session id.
const SessionCookie = "session_id"

type ctxKey int

const sessionKey ctxKey = 1

// Handler wires HTTP routes to the session screens.
type Handler struct {
	log          *logger.Logger
	catalog      *catalog.Catalog
	sessions     *session.Registry
	tracer       trace.Tracer
	cookieTTL    time.Duration
	secureCookie bool
}

// Options configures a Handler.
type Options struct {
	Log          *logger.Logger
	Catalog      *catalog.Catalog
	Sessions     *session.Registry
	Tracer       trace.Tracer
	CookieTTL    time.Duration
	SecureCookie bool
}

// New creates a Handler.
func New(o Options) *Handler {
	return &Handler{
		log:          o.Log,
		catalog:      o.Catalog,
		sessions:     o.Sessions,
		tracer:       o.Tracer,
		cookieTTL:    o.CookieTTL,
		secureCookie: o.SecureCookie,
	}
}

// Router builds the route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.traceMiddleware)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := r.NewRoute().Subrouter()
	api.Use(h.sessionMiddleware)
	api.HandleFunc("/categories", h.listCategoriesHandler).Methods(http.MethodGet)
	api.HandleFunc("/menu", h.menuHandler).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.getProductHandler).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.getCartHandler).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.clearCartHandler).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", h.addItemHandler).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", h.removeItemHandler).Methods(http.MethodDelete)
	api.HandleFunc("/cart/address", h.setAddressHandler).Methods(http.MethodPut)
	api.HandleFunc("/orders", h.submitOrderHandler).Methods(http.MethodPost)
	return r
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error  string         `json:"error"`
	Prompt *dialog.Prompt `json:"prompt,omitempty"`
}

// addItemRequest names the catalog item to add.
type addItemRequest struct {
	ProductID string `json:"product_id"`
}

// addressRequest carries the free-text delivery address.
type addressRequest struct {
	Address string `json:"address"`
}

// orderRequest submits the cart. Address overrides the stored one when set.
type orderRequest struct {
	Address string `json:"address"`
	Choice  string `json:"choice"`
}

// healthHandler reports liveness.
// @Summary Health check
// @Success 200
// @Router /healthz [get]
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// listCategoriesHandler lists the menu categories.
// @Summary List categories
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (h *Handler) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otelx.AddSpan(r.Context(), "listCategoriesHandler")
	defer span.End()

	writeJSON(w, http.StatusOK, h.catalog.Categories())
}

// menuHandler renders the home screen, optionally switching category.
// @Summary Home screen
// @Produce json
// @Param category query string false "Category to select"
// @Success 200 {object} screen.HomeView
// @Failure 404 {object} errorResponse
// @Router /menu [get]
func (h *Handler) menuHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otelx.AddSpan(r.Context(), "menuHandler")
	defer span.End()

	s := sessionFrom(ctx)
	if cat := r.URL.Query().Get("category"); cat != "" {
		if err := s.Home.Select(cat); err != nil {
			writeError(w, http.StatusNotFound, err, nil)
			return
		}
	}
	writeJSON(w, http.StatusOK, s.Home.View())
}

// getProductHandler returns one catalog item.
// @Summary Get product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} catalog.Item
// @Failure 404 {object} errorResponse
// @Router /products/{id} [get]
func (h *Handler) getProductHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otelx.AddSpan(r.Context(), "getProductHandler")
	defer span.End()

	it, err := h.catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// getCartHandler renders the cart screen.
// @Summary Cart screen
// @Produce json
// @Success 200 {object} screen.CartView
// @Router /cart [get]
func (h *Handler) getCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otelx.AddSpan(r.Context(), "getCartHandler")
	defer span.End()

	writeJSON(w, http.StatusOK, sessionFrom(ctx).CartScreen.View())
}

// clearCartHandler empties the cart.
// @Summary Clear cart
// @Produce json
// @Success 200 {object} screen.CartView
// @Router /cart [delete]
func (h *Handler) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otelx.AddSpan(r.Context(), "clearCartHandler")
	defer span.End()

	s := sessionFrom(ctx)
	s.Cart.Clear()
	h.log.Info(ctx, "cart cleared", "session", s.ID)
	writeJSON(w, http.StatusOK, s.CartScreen.View())
}

// addItemHandler adds one unit of a product.
// @Summary Add item
// @Accept json
// @Produce json
// @Param item body addItemRequest true "Product"
// @Success 200 {object} screen.CartView
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /cart/items [post]
func (h *Handler) addItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otelx.AddSpan(r.Context(), "addItemHandler")
	defer span.End()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeError(w, http.StatusBadRequest, errors.New("invalid request"), nil)
		return
	}
	s := sessionFrom(ctx)
	p, err := s.Home.AddToCart(req.ProductID)
	if err != nil {
		writeError(w, http.StatusNotFound, err, nil)
		return
	}
	span.SetAttributes(attribute.String("product.id", p.ID))
	h.log.Info(ctx, "item added", "session", s.ID, "product", p.ID)
	writeJSON(w, http.StatusOK, s.CartScreen.View())
}

// removeItemHandler removes a line after confirmation.
// @Summary Remove item
// @Produce json
// @Param id path string true "Product ID"
// @Param choice query string false "confirm or cancel"
// @Success 200 {object} screen.CartView
// @Failure 400 {object} errorResponse
// @Failure 428 {object} errorResponse
// @Router /cart/items/{id} [delete]
func (h *Handler) removeItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otelx.AddSpan(r.Context(), "removeItemHandler")
	defer span.End()

	s := sessionFrom(ctx)
	id := mux.Vars(r)["id"]
	raw := r.URL.Query().Get("choice")
	if raw == "" {
		item, ok := s.Cart.Get(id)
		if !ok {
			writeJSON(w, http.StatusOK, s.CartScreen.View())
			return
		}
		p := screen.RemovePrompt(item.Title)
		writeError(w, http.StatusPreconditionRequired, errors.New("confirmation required"), &p)
		return
	}
	choice, err := dialog.ParseChoice(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err, nil)
		return
	}
	if s.CartScreen.Remove(ctx, id, dialog.Always(choice)) {
		h.log.Info(ctx, "item removed", "session", s.ID, "product", id)
	}
	writeJSON(w, http.StatusOK, s.CartScreen.View())
}

// setAddressHandler stores the delivery address.
// @Summary Set delivery address
// @Accept json
// @Produce json
// @Param address body addressRequest true "Address"
// @Success 200 {object} screen.CartView
// @Failure 400 {object} errorResponse
// @Router /cart/address [put]
func (h *Handler) setAddressHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otelx.AddSpan(r.Context(), "setAddressHandler")
	defer span.End()

	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request"), nil)
		return
	}
	s := sessionFrom(ctx)
	s.CartScreen.SetAddress(req.Address)
	writeJSON(w, http.StatusOK, s.CartScreen.View())
}

// submitOrderHandler submits the cart after confirmation.
// @Summary Submit order
// @Accept json
// @Produce json
// @Param order body orderRequest true "Order"
// @Success 200 {object} checkout.Outcome
// @Success 201 {object} checkout.Outcome
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 428 {object} errorResponse
// @Router /orders [post]
func (h *Handler) submitOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otelx.AddSpan(r.Context(), "submitOrderHandler")
	defer span.End()

	var req orderRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, errors.New("invalid request"), nil)
			return
		}
	}
	s := sessionFrom(ctx)
	if req.Address != "" {
		s.CartScreen.SetAddress(req.Address)
	}

	var decide dialog.Decider
	var pending *dialog.Prompt
	if req.Choice == "" {
		decide = dialog.DeciderFunc(func(_ context.Context, p dialog.Prompt) dialog.Choice {
			pending = &p
			return dialog.Cancel
		})
	} else {
		choice, err := dialog.ParseChoice(req.Choice)
		if err != nil {
			writeError(w, http.StatusBadRequest, err, nil)
			return
		}
		decide = dialog.Always(choice)
	}

	out, err := s.CartScreen.Submit(ctx, decide)
	switch {
	case errors.Is(err, checkout.ErrAddressRequired):
		writeError(w, http.StatusUnprocessableEntity, err, &out.Prompt)
		return
	case err != nil:
		h.log.Error(ctx, "submit order", "session", s.ID, "error", err)
		writeError(w, http.StatusInternalServerError, err, nil)
		return
	case pending != nil:
		writeError(w, http.StatusPreconditionRequired, errors.New("confirmation required"), pending)
		return
	case !out.Submitted:
		writeJSON(w, http.StatusOK, out)
		return
	}
	span.SetAttributes(attribute.String("order.id", out.Order.ID))
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handler) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		if h.tracer != nil {
			ctx = otelx.InjectTracing(ctx, h.tracer)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionMiddleware attaches the caller's session, issuing a cookie for new
// ones.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookie); err == nil {
			id = c.Value
		}
		s, created, err := h.sessions.Resolve(r.Context(), id)
		if err != nil {
			h.log.Error(r.Context(), "resolve session", "error", err)
			writeError(w, http.StatusServiceUnavailable, errors.New("session error"), nil)
			return
		}
		if created || id != s.ID {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    s.ID,
				Path:     "/",
				Expires:  time.Now().Add(h.cookieTTL),
				HttpOnly: true,
				Secure:   h.secureCookie,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionKey, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error, p *dialog.Prompt) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Prompt: p})
}
