package controllers

import (
	"net/http"

	"dira-storefront/catalog"
	"dira-storefront/i18n"
	"dira-storefront/models"
	"dira-storefront/session"
	"dira-storefront/shop"

	"github.com/gorilla/mux"
)

// ProductController serves the shop listing
type ProductController struct {
	Catalog    *catalog.Catalog
	Translator *i18n.Translator
}

// NewProductController creates a new ProductController
func NewProductController(cat *catalog.Catalog, translator *i18n.Translator) *ProductController {
	return &ProductController{Catalog: cat, Translator: translator}
}

type listingSection struct {
	shop.Section
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type listingResponse struct {
	Language i18n.Language    `json:"language"`
	Sections []listingSection `json:"sections"`
	Cart     models.CartView  `json:"cart"`
}

var collectionKeys = map[models.Collection][2]string{
	models.CollectionSignature: {"signatureCollection", "signatureDescription"},
	models.CollectionSeasonal:  {"seasonalCollection", "seasonalDescription"},
}

// GetProducts returns the listing grouped by collection with availability
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var resp listingResponse
	_ = s.Do(func(s *session.Session) error {
		t := pc.Translator.For(s.Language)
		for _, section := range shop.Listing(pc.Catalog, s.Cart) {
			ls := listingSection{Section: section}
			if keys, ok := collectionKeys[section.Collection]; ok {
				ls.Title = t(keys[0])
				ls.Description = t(keys[1])
			}
			resp.Sections = append(resp.Sections, ls)
		}
		resp.Language = s.Language
		resp.Cart = s.Cart.View()
		return nil
	})
	respondJSON(w, http.StatusOK, resp)
}

// GetProductByID returns one product with its availability
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	p, err := pc.Catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		handleError(w, pc.Translator.For(i18n.Default), err)
		return
	}

	var item shop.Item
	_ = s.Do(func(s *session.Session) error {
		item = shop.Describe(s.Cart, p)
		return nil
	})
	respondJSON(w, http.StatusOK, item)
}

type addToCartRequest struct {
	Quantity int `json:"quantity"`
}

type addToCartResponse struct {
	Added   int             `json:"added"`
	Message string          `json:"message"`
	Item    shop.Item       `json:"item"`
	Cart    models.CartView `json:"cart"`
}

// AddToCart adds the requested quantity of a product, clamped to its stock
func (pc *ProductController) AddToCart(w http.ResponseWriter, r *http.Request) {
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	var (
		resp addToCartResponse
		t    func(string) string
	)
	err := s.Do(func(s *session.Session) error {
		t = pc.Translator.For(s.Language)
		p, err := pc.Catalog.Get(mux.Vars(r)["id"])
		if err != nil {
			return err
		}
		added, err := shop.AddToCart(s.Cart, p, req.Quantity)
		if err != nil {
			return err
		}
		resp = addToCartResponse{
			Added:   added,
			Message: t("addedToCart"),
			Item:    shop.Describe(s.Cart, p),
			Cart:    s.Cart.View(),
		}
		return nil
	})
	if err != nil {
		handleError(w, t, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
