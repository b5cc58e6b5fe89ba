package format_test

import (
	"testing"

	"github.com/lapescados/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/lapescados/storefront/internal/format"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		locale    string
		wantError bool
	}{
		{name: "store locale: ok", locale: "pt-AO"},
		{name: "plain portuguese: ok", locale: "pt"},
		{name: "garbage locale: error", locale: "!!", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := format.New(tt.locale, "Kz")
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
		})
	}
}

func TestFormatterAmount(t *testing.T) {
	f, err := format.New("pt-AO", "Kz")
	require.NoError(t, err)

	// Below the grouping threshold the rendering is locale independent.
	assert.Equal(t, "850", f.Amount(decimal.NewFromInt(850)))
	assert.Equal(t, "0", f.Amount(decimal.Zero))

	// Grouped amounts must match whatever the locale tables produce.
	want := message.NewPrinter(language.MustParse("pt-AO")).Sprint(number.Decimal(int64(12850)))
	assert.Equal(t, want, f.Amount(decimal.NewFromInt(12850)))
}

func TestFormatterPrice(t *testing.T) {
	f, err := format.New("pt-AO", "Kz")
	require.NoError(t, err)

	price := domain.NewKz(850)

	assert.Equal(t, "850 Kz", f.Price(price))
	assert.Equal(t, "850 Kz / kg", f.PerUnit(price, "kg"))
	assert.Equal(t, "Total: 850 Kz", f.Total(price))
}
