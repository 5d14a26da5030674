package checkout

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"dira-storefront/models"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// IntN is the random source used for transaction ids
type IntN interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// TxIDGenerator builds display-only transaction ids of the form
// WALLET-XXXXXX-<unix millis in base 36>. They are not secret and not
// globally unique.
type TxIDGenerator struct {
	Rand IntN
	Now  func() time.Time
}

// NewTxIDGenerator returns a generator over the process random source and clock
func NewTxIDGenerator() TxIDGenerator {
	return TxIDGenerator{Rand: globalRand{}, Now: time.Now}
}

// New returns a transaction id for wallet
func (g TxIDGenerator) New(wallet models.Wallet) string {
	r := g.Rand
	if r == nil {
		r = globalRand{}
	}
	now := g.Now
	if now == nil {
		now = time.Now
	}

	var b strings.Builder
	b.WriteString(strings.ToUpper(string(wallet)))
	b.WriteByte('-')
	for i := 0; i < 6; i++ {
		b.WriteByte(base36[r.IntN(len(base36))])
	}
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(now().UnixMilli(), 36))
	return strings.ToUpper(b.String())
}
