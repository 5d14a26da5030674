package controllers

import (
	"errors"
	"net/http"

	"dira-storefront/checkout"
	"dira-storefront/confirmation"
	"dira-storefront/i18n"
	"dira-storefront/models"
	"dira-storefront/pricing"
	"dira-storefront/session"
	"dira-storefront/utils"

	"go.uber.org/zap"
)

// OrderController handles checkout and order confirmation
type OrderController struct {
	Calculator   *pricing.Calculator
	Promos       pricing.PromoTable
	Orchestrator *checkout.Orchestrator
	Renderer     *confirmation.Renderer
	Translator   *i18n.Translator
	Metrics      *utils.Metrics
	Logger       *zap.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(calculator *pricing.Calculator, promos pricing.PromoTable, orchestrator *checkout.Orchestrator, renderer *confirmation.Renderer, translator *i18n.Translator, metrics *utils.Metrics, logger *zap.Logger) *OrderController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderController{
		Calculator:   calculator,
		Promos:       promos,
		Orchestrator: orchestrator,
		Renderer:     renderer,
		Translator:   translator,
		Metrics:      metrics,
		Logger:       logger,
	}
}

type quoteResponse struct {
	Items          []models.CartLine `json:"items"`
	Count          int               `json:"count"`
	Breakdown      pricing.Breakdown `json:"breakdown"`
	Currency       string            `json:"currency"`
	ShopConfigured bool              `json:"shop_configured"`
	Message        string            `json:"message,omitempty"`
}

func (oc *OrderController) quote(s *session.Session) quoteResponse {
	lines := s.Cart.Lines()
	return quoteResponse{
		Items:          lines,
		Count:          s.Cart.Count(),
		Breakdown:      oc.Calculator.QuoteLines(lines, s.Options),
		Currency:       oc.Orchestrator.Currency(),
		ShopConfigured: oc.Orchestrator.Configured(),
	}
}

// withSession runs fn under the session lock and replies with its result or
// the mapped error
func (oc *OrderController) withSession(w http.ResponseWriter, r *http.Request, status int, fn func(s *session.Session, t func(string) string) (interface{}, error)) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var (
		t    func(string) string
		resp interface{}
	)
	err := s.Do(func(s *session.Session) error {
		t = oc.Translator.For(s.Language)
		var err error
		resp, err = fn(s, t)
		return err
	})
	if err != nil {
		handleError(w, t, err)
		return
	}
	respondJSON(w, status, resp)
}

// GetQuote prices the current cart with the session's checkout options
func (oc *OrderController) GetQuote(w http.ResponseWriter, r *http.Request) {
	oc.withSession(w, r, http.StatusOK, func(s *session.Session, _ func(string) string) (interface{}, error) {
		return oc.quote(s), nil
	})
}

type deliveryRequest struct {
	Method models.DeliveryMethod `json:"method"`
}

// SetDeliveryMethod switches between home delivery and store pickup
func (oc *OrderController) SetDeliveryMethod(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
	if err := decodeJSON(r, &req); err != nil || !req.Method.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_request", "method must be delivery or pickup")
		return
	}
	oc.withSession(w, r, http.StatusOK, func(s *session.Session, _ func(string) string) (interface{}, error) {
		s.Options.DeliveryMethod = req.Method
		return oc.quote(s), nil
	})
}

type promoRequest struct {
	Code string `json:"code"`
}

// ApplyPromo makes a promo code the active one
func (oc *OrderController) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	var req promoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	oc.withSession(w, r, http.StatusOK, func(s *session.Session, t func(string) string) (interface{}, error) {
		_, err := s.Options.ApplyPromo(oc.Promos, req.Code)
		oc.Metrics.PromoAttempt(err == nil)
		if err != nil {
			return nil, err
		}
		resp := oc.quote(s)
		resp.Message = t("promoApplied")
		return resp, nil
	})
}

// RemovePromo clears the active promo
func (oc *OrderController) RemovePromo(w http.ResponseWriter, r *http.Request) {
	oc.withSession(w, r, http.StatusOK, func(s *session.Session, _ func(string) string) (interface{}, error) {
		s.Options.RemovePromo()
		return oc.quote(s), nil
	})
}

type placeOrderResponse struct {
	*checkout.Result
	Notice string `json:"notice"`
}

// PlaceOrder validates the order form and hands the order to the shop
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var form models.CheckoutForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	oc.withSession(w, r, http.StatusCreated, func(s *session.Session, t func(string) string) (interface{}, error) {
		res, err := oc.Orchestrator.Submit(r.Context(), s.ID, s.Cart, &s.Options, form)
		if err != nil {
			return nil, err
		}
		oc.Metrics.OrderPlaced(string(res.PaymentMethod))
		return placeOrderResponse{Result: res, Notice: t("whatsappOpened")}, nil
	})
}

// GetConfirmation renders the session's last order, or sends the shopper
// back to the shop when there is none
func (oc *OrderController) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	oc.confirm(w, r, nil)
}

// PostConfirmation renders the snapshot carried in the request body, falling
// back to the session's last order
func (oc *OrderController) PostConfirmation(w http.ResponseWriter, r *http.Request) {
	var carried models.OrderSnapshot
	if err := decodeJSON(r, &carried); err != nil {
		oc.Logger.Debug("ignoring unreadable carried snapshot", zap.Error(err))
		oc.confirm(w, r, nil)
		return
	}
	oc.confirm(w, r, &carried)
}

func (oc *OrderController) confirm(w http.ResponseWriter, r *http.Request, carried *models.OrderSnapshot) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var lang i18n.Language
	_ = s.Do(func(s *session.Session) error {
		lang = s.Language
		return nil
	})

	view, err := oc.Renderer.Render(r.Context(), s.ID, carried, lang)
	if errors.Is(err, confirmation.ErrNoOrder) {
		http.Redirect(w, r, confirmation.ShopPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		handleError(w, oc.Translator.For(lang), err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
