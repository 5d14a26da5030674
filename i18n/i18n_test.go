package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	tr := NewDefault()

	assert.Equal(t, "Subtotal", tr.T(English, "subtotal"))
	assert.Equal(t, "Jumla Ndogo", tr.T(Swahili, "subtotal"))
	assert.Equal(t, "noSuchKey", tr.T(Swahili, "noSuchKey"))
	assert.Equal(t, "subtotal", tr.T(Language("fr"), "subtotal"))
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range builtin[English] {
		_, ok := builtin[Swahili][key]
		assert.True(t, ok, "sw is missing %q", key)
	}
	for key := range builtin[Swahili] {
		_, ok := builtin[English][key]
		assert.True(t, ok, "en is missing %q", key)
	}
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, English, Negotiate(""))
	assert.Equal(t, Swahili, Negotiate("sw-TZ,sw;q=0.9,en;q=0.5"))
	assert.Equal(t, English, Negotiate("en-GB,en;q=0.9"))
	assert.Equal(t, English, Negotiate("de-DE"))
}

func TestParseAndToggle(t *testing.T) {
	l, ok := Parse("sw")
	assert.True(t, ok)
	assert.Equal(t, Swahili, l)

	_, ok = Parse("xx-invalid-!!")
	assert.False(t, ok)

	assert.Equal(t, English, Swahili.Toggle())
	assert.Equal(t, Swahili, English.Toggle())
}

func TestFor(t *testing.T) {
	sw := NewDefault().For(Swahili)
	assert.Equal(t, "Bure", sw("free"))
}
