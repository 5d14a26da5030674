package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dira-storefront/apperr"
	"dira-storefront/catalog"
	"dira-storefront/i18n"
	"dira-storefront/middleware"
	"dira-storefront/session"
	"dira-storefront/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.JwtKey = []byte("controllers-test-secret")
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tr := i18n.NewDefault().For(i18n.Swahili)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &apperr.ValidationError{Message: "missing", Fields: map[string]string{"email": "required"}}, http.StatusUnprocessableEntity, "validation_failed"},
		{"wallet", apperr.ErrWalletRequired, http.StatusUnprocessableEntity, "wallet_required"},
		{"promo", apperr.ErrInvalidPromo, http.StatusUnprocessableEntity, "invalid_code"},
		{"empty cart", apperr.ErrEmptyCart, http.StatusUnprocessableEntity, "empty_cart"},
		{"config", &apperr.ConfigError{Setting: "SHOP_WHATSAPP_NUMBER"}, http.StatusServiceUnavailable, "not_configured"},
		{"not found", &apperr.NotFoundError{Resource: "product", ID: "x"}, http.StatusNotFound, "not_found"},
		{"stock", apperr.ErrOutOfStock, http.StatusConflict, "out_of_stock"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			handleError(rec, tr, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}

	rec := httptest.NewRecorder()
	handleError(rec, tr, apperr.ErrInvalidPromo)
	assert.Equal(t, "Msimbo batili", decodeError(t, rec).Error)
}

func TestHome(t *testing.T) {
	t.Parallel()
	lc := NewLandingController(catalog.Default(), i18n.NewDefault())
	s, _ := session.NewManager(0).Get("sess", i18n.Swahili)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), s))
	rec := httptest.NewRecorder()
	lc.Home(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp landingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, i18n.Swahili, resp.Language)
	assert.Equal(t, "Anasa katika Kila Povu", resp.Strings["heroTitle"])
	assert.Len(t, resp.Featured, 4)
	assert.Zero(t, resp.CartCount)
}

func TestHandlersWithoutSession(t *testing.T) {
	t.Parallel()
	cc := NewCartController(catalog.Default(), i18n.NewDefault())

	rec := httptest.NewRecorder()
	cc.GetCart(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "no_session", decodeError(t, rec).Code)
}

func TestNotFound(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("Accept-Language", "sw")
	rec := httptest.NewRecorder()
	NotFound(i18n.NewDefault())(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Samahani! Ukurasa haupatikani", resp.Error)
	assert.Equal(t, "/missing", resp.Details)
}

func TestLanguageSwitchReissuesToken(t *testing.T) {
	lc := NewLanguageController(i18n.NewDefault())
	sess, _ := session.NewManager(0).Get("shopper", i18n.English)

	tokenLang := func(rec *httptest.ResponseRecorder) string {
		t.Helper()
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cookies[0].Value, rec.Header().Get(middleware.SessionTokenHeader))
		claims, err := utils.ParseSessionToken(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, "shopper", claims.SessionID)
		return claims.Language
	}

	req := httptest.NewRequest(http.MethodPost, "/language/toggle", nil)
	rec := httptest.NewRecorder()
	lc.ToggleLanguage(rec, req.WithContext(middleware.WithSession(req.Context(), sess)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sw", tokenLang(rec))

	req = httptest.NewRequest(http.MethodPut, "/language", strings.NewReader(`{"language":"en"}`))
	rec = httptest.NewRecorder()
	lc.SetLanguage(rec, req.WithContext(middleware.WithSession(req.Context(), sess)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", tokenLang(rec))
}
