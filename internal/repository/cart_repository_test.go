package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/lapescados/storefront/internal/domain"
	"github.com/lapescados/storefront/internal/port"
	"github.com/lapescados/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type cartRepositorySuite struct {
	suite.Suite

	dir string
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before each test in the suite
func (suite *cartRepositorySuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *cartRepositorySuite) newRepo() port.CartRepository {
	repo, err := repository.NewCart(filepath.Join(suite.dir, "cart.json"), zap.NewNop())
	suite.Require().NoError(err)
	return repo
}

func (suite *cartRepositorySuite) TestNewCart() {
	t := suite.T()

	_, err := repository.NewCart("", zap.NewNop())
	require.EqualError(t, err, "path is empty")

	repo, err := repository.NewCart(filepath.Join(suite.dir, "cart.json"), nil)
	require.NoError(t, err)
	require.NotNil(t, repo)
}

func (suite *cartRepositorySuite) TestSaveLoadRoundTrip() {
	tests := []struct {
		name string
		cart domain.Cart
	}{
		{
			name: "empty cart",
		},
		{
			name: "single line",
			cart: domain.Cart{Lines: []domain.CartLine{randomCartLine()}},
		},
		{
			name: "multiple lines keep order",
			cart: domain.Cart{Lines: []domain.CartLine{
				randomCartLine(),
				randomCartLine(),
				randomCartLine(),
			}},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			repo := suite.newRepo()

			require.NoError(t, repo.Save(tt.cart))

			loaded, err := repo.Load()
			require.NoError(t, err)

			assertCart(t, tt.cart, loaded)
		})
	}
}

func (suite *cartRepositorySuite) TestLoadFailSafe() {
	tests := []struct {
		name    string
		content string // empty means no file at all
	}{
		{name: "missing file: empty cart"},
		{name: "malformed json: empty cart", content: `{"not":"a cart"`},
		{name: "wrong shape: empty cart", content: `"just a string"`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			path := filepath.Join(suite.dir, "cart.json")

			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			} else {
				_ = os.Remove(path)
			}

			repo, err := repository.NewCart(path, zap.NewNop())
			require.NoError(t, err)

			cart, err := repo.Load()
			require.NoError(t, err)
			assert.True(t, cart.IsEmpty())
		})
	}
}

func (suite *cartRepositorySuite) TestLegacyQuantityField() {
	t := suite.T()
	path := filepath.Join(suite.dir, "cart.json")

	legacy := `[
		{"sku":"SKU0001","nome":"Chocos em tiras","preco":12850,"unidade":"kg","quantity":3},
		{"sku":"SKU0002","nome":"Choco com tinta","preco":6850,"unidade":"kg","qtd":2},
		{"sku":"SKU0003","nome":"Choco limpo","preco":8850,"unidade":"kg"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	repo, err := repository.NewCart(path, zap.NewNop())
	require.NoError(t, err)

	cart, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, cart.Lines, 3)

	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.Lines[1].Quantity)
	assert.Equal(t, 0, cart.Lines[2].Quantity)
	assert.True(t, cart.Lines[0].UnitPrice.Amount.Equal(decimal.NewFromInt(12850)))
}

func (suite *cartRepositorySuite) TestClear() {
	t := suite.T()
	repo := suite.newRepo()

	require.NoError(t, repo.Save(domain.Cart{Lines: []domain.CartLine{randomCartLine()}}))
	require.NoError(t, repo.Clear())

	cart, err := repo.Load()
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// clearing an already cleared store is a no-op
	require.NoError(t, repo.Clear())
}

func randomCartLine() domain.CartLine {
	return domain.CartLine{
		SKU:       gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		UnitPrice: domain.NewKz(int64(gofakeit.Number(100, 25000))),
		Unit:      "kg",
		Quantity:  gofakeit.Number(1, 9),
		ImageRef:  gofakeit.URL(),
		Category:  gofakeit.RandomString([]string{"mariscos", "peixes", "filetes", "lombos"}),
	}
}

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})
	emptyLines := cmp.FilterValues(func(x, y []domain.CartLine) bool {
		return len(x) == 0 && len(y) == 0
	}, cmp.Ignore())

	diff := cmp.Diff(expected, actual, cmp.Options{currencyComparer, decimalComparer, emptyLines})
	assert.Empty(t, diff)
}
