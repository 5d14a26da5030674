package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dira-storefront/i18n"
	"dira-storefront/session"
	"dira-storefront/utils"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	utils.JwtKey = []byte("middleware-test-secret")
}

type seen struct {
	id   string
	lang i18n.Language
}

func sessionHandler(t *testing.T, manager *session.Manager) (http.Handler, *seen) {
	got := &seen{}
	h := SessionMiddleware(manager, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		got.id = s.ID
		got.lang = s.Language
	}))
	return h, got
}

func TestSessionMiddleware_IssuesAndReusesCookie(t *testing.T) {
	manager := session.NewManager(0)
	h, got := sessionHandler(t, manager)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, cookies[0].Value, rec.Header().Get(SessionTokenHeader))
	first := got.id
	require.NotEmpty(t, first)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, first, got.id)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, 1, manager.Len())
}

func TestSessionMiddleware_BearerToken(t *testing.T) {
	manager := session.NewManager(0)
	h, got := sessionHandler(t, manager)

	token, err := utils.GenerateSessionToken("api-client", "sw")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "api-client", got.id)
	assert.Equal(t, i18n.Swahili, got.lang)
}

func TestSessionMiddleware_InvalidTokenStartsNewSession(t *testing.T) {
	manager := session.NewManager(0)
	h, got := sessionHandler(t, manager)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEmpty(t, got.id)
	assert.NotEmpty(t, rec.Header().Get(SessionTokenHeader))
}

func TestSessionMiddleware_Language(t *testing.T) {
	manager := session.NewManager(0)
	h, got := sessionHandler(t, manager)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "sw-TZ,sw;q=0.9,en;q=0.5")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, i18n.Swahili, got.lang)

	req = httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	req.Header.Set("Accept-Language", "sw")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, i18n.English, got.lang)
}

func TestSessionMiddleware_LanguageQueryReissuesToken(t *testing.T) {
	h, _ := sessionHandler(t, session.NewManager(0))

	token, err := utils.GenerateSessionToken("returning", "en")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/?lang=sw", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	claims, err := utils.ParseSessionToken(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "returning", claims.SessionID)
	assert.Equal(t, "sw", claims.Language)

	// a fresh manager stands in for a sweep or restart
	h, got := sessionHandler(t, session.NewManager(0))
	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookies[0])
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "returning", got.id)
	assert.Equal(t, i18n.Swahili, got.lang)
}

func TestRequestLoggerAndInstrument(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	reg := prometheus.NewRegistry()
	metrics := utils.NewMetrics(reg)
	manager := session.NewManager(0)

	router := mux.NewRouter()
	router.Use(Instrument(metrics), RequestLogger(zap.New(core)), SessionMiddleware(manager, zap.NewNop()))
	router.HandleFunc("/cart/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cart/items/rose-geranium", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/cart/items/rose-geranium", fields["path"])
	assert.NotEmpty(t, fields["session_id"])

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("/cart/items/{id}", http.MethodDelete, "418")))
}
