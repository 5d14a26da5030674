package pricing

import (
	"strings"

	"dira-storefront/apperr"
	"dira-storefront/models"

	"github.com/shopspring/decimal"
)

// PromoTable maps normalized codes to promos
type PromoTable map[string]models.PromoCode

// DefaultPromos returns the codes the shop currently honours
func DefaultPromos() PromoTable {
	return NewPromoTable(
		models.PromoCode{Code: "SAVE10", Discount: decimal.NewFromInt(10), Kind: models.DiscountPercent},
		models.PromoCode{Code: "FLAT5", Discount: decimal.NewFromInt(5), Kind: models.DiscountFixed},
		models.PromoCode{Code: "KARIBU15", Discount: decimal.NewFromInt(15), Kind: models.DiscountPercent},
	)
}

// NewPromoTable indexes promos by their normalized code
func NewPromoTable(promos ...models.PromoCode) PromoTable {
	t := make(PromoTable, len(promos))
	for _, p := range promos {
		p.Code = NormalizeCode(p.Code)
		t[p.Code] = p
	}
	return t
}

// NormalizeCode trims and uppercases a user-entered code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup finds code case-insensitively
func (t PromoTable) Lookup(code string) (models.PromoCode, error) {
	p, ok := t[NormalizeCode(code)]
	if !ok {
		return models.PromoCode{}, apperr.ErrInvalidPromo
	}
	return p, nil
}
