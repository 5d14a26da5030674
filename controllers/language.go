package controllers

import (
	"net/http"

	"dira-storefront/i18n"
	"dira-storefront/middleware"
	"dira-storefront/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// LanguageController switches and reports the session language
type LanguageController struct {
	Translator *i18n.Translator
}

func NewLanguageController(translator *i18n.Translator) *LanguageController {
	return &LanguageController{Translator: translator}
}

type languageResponse struct {
	Language i18n.Language `json:"language"`
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

func (lc *LanguageController) GetLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var lang i18n.Language
	_ = s.Do(func(s *session.Session) error {
		lang = s.Language
		return nil
	})
	respondJSON(w, http.StatusOK, languageResponse{Language: lang})
}

// ToggleLanguage flips between English and Swahili
func (lc *LanguageController) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var lang i18n.Language
	_ = s.Do(func(s *session.Session) error {
		s.Language = s.Language.Toggle()
		lang = s.Language
		return nil
	})
	lc.switched(w, s.ID, lang)
}

func (lc *LanguageController) SetLanguage(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var req setLanguageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	lang, ok := i18n.Parse(req.Language)
	if !ok {
		respondError(w, http.StatusBadRequest, "unsupported_language", "supported languages: en, sw")
		return
	}
	_ = s.Do(func(s *session.Session) error {
		s.Language = lang
		return nil
	})
	lc.switched(w, s.ID, lang)
}

// switched re-signs the session token so the new language outlives the
// in-memory session.
func (lc *LanguageController) switched(w http.ResponseWriter, id string, lang i18n.Language) {
	if err := middleware.IssueSessionToken(w, id, lang); err != nil {
		zap.L().Error("failed to reissue session token", zap.String("session_id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "could not update session")
		return
	}
	respondJSON(w, http.StatusOK, languageResponse{Language: lang})
}

type translationResponse struct {
	Language i18n.Language `json:"language"`
	Key      string        `json:"key"`
	Value    string        `json:"value"`
}

// Translate looks a key up in the session language. Unknown keys come back as
// themselves.
func (lc *LanguageController) Translate(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	var lang i18n.Language
	_ = s.Do(func(s *session.Session) error {
		lang = s.Language
		return nil
	})
	key := mux.Vars(r)["key"]
	respondJSON(w, http.StatusOK, translationResponse{Language: lang, Key: key, Value: lc.Translator.T(lang, key)})
}
