package controllers

import (
	"net/http"

	"dira-storefront/catalog"
	"dira-storefront/i18n"
	"dira-storefront/models"
	"dira-storefront/session"
)

// LandingController serves the home page content
type LandingController struct {
	Catalog    *catalog.Catalog
	Translator *i18n.Translator
}

func NewLandingController(cat *catalog.Catalog, translator *i18n.Translator) *LandingController {
	return &LandingController{Catalog: cat, Translator: translator}
}

var landingKeys = []string{
	"artisanalSkincare", "heroTitle", "heroSubtitle", "shopNow",
	"featuredCreations", "featuredSubtitle", "ourStory", "testimonials", "footerTagline",
}

type landingResponse struct {
	Language  i18n.Language     `json:"language"`
	Strings   map[string]string `json:"strings"`
	Featured  []models.Product  `json:"featured"`
	CartCount int               `json:"cart_count"`
}

// Home returns the brand strings and the featured products
func (lc *LandingController) Home(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	resp := landingResponse{
		Strings:  make(map[string]string, len(landingKeys)),
		Featured: lc.Catalog.Featured(),
	}
	_ = s.Do(func(s *session.Session) error {
		resp.Language = s.Language
		resp.CartCount = s.Cart.Count()
		return nil
	})
	for _, key := range landingKeys {
		resp.Strings[key] = lc.Translator.T(resp.Language, key)
	}
	respondJSON(w, http.StatusOK, resp)
}

// Health reports liveness
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers unknown routes in the caller's preferred language
func NotFound(translator *i18n.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := i18n.Negotiate(r.Header.Get("Accept-Language"))
		respondJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   translator.T(lang, "notFound"),
			Code:    "not_found",
			Details: r.URL.Path,
		})
	}
}
