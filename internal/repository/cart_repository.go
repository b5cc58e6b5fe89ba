package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lapescados/storefront/internal/domain"
	"github.com/lapescados/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// cartLineRecord is the persisted shape of one cart line. Field names match
// the serialized form consumers already rely on, so they stay in Portuguese.
type cartLineRecord struct {
	SKU       string  `json:"sku"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Unidade   string  `json:"unidade"`
	Qtd       int     `json:"qtd"`
	Quantity  int     `json:"quantity,omitempty"` // legacy records carry this instead of qtd
	Img       string  `json:"img,omitempty"`
	Categoria string  `json:"categoria,omitempty"`
}

type cartRepository struct {
	path   string
	logger *zap.Logger
}

// NewCart returns a repository persisting the cart as a single JSON document
// at the given path.
func NewCart(path string, logger *zap.Logger) (port.CartRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &cartRepository{
		path:   path,
		logger: logger,
	}, nil
}

// Load reads the persisted cart. A missing document or unparsable content
// yields an empty cart, never an error: a corrupt store must not take the
// session down.
func (r *cartRepository) Load() (domain.Cart, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("cart read failed, starting empty",
				zap.String("path", r.path),
				zap.Error(err))
		}
		return domain.Cart{}, nil
	}

	var records []cartLineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Warn("cart decode failed, starting empty",
			zap.String("path", r.path),
			zap.Error(err))
		return domain.Cart{}, nil
	}

	return domain.Cart{Lines: mapRecordsToDomain(records)}, nil
}

func (r *cartRepository) Save(cart domain.Cart) error {
	data, err := json.Marshal(mapDomainToRecords(cart))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	// Write-then-rename so a failed write never truncates the previous state.
	tmp := r.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}

func (r *cartRepository) Clear() error {
	err := os.Remove(r.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove: %w", err)
	}

	return nil
}

func mapRecordToDomain(record cartLineRecord) domain.CartLine {
	qty := record.Qtd
	if qty == 0 {
		// Legacy records used "quantity"; a record with neither reads as 0
		// and is normalized away on the next mutation.
		qty = record.Quantity
	}

	return domain.CartLine{
		SKU:       record.SKU,
		Name:      record.Nome,
		UnitPrice: domain.Money{Amount: decimal.NewFromFloat(record.Preco), Currency: domain.Kwanza},
		Unit:      record.Unidade,
		Quantity:  qty,
		ImageRef:  record.Img,
		Category:  record.Categoria,
	}
}

func mapRecordsToDomain(records []cartLineRecord) []domain.CartLine {
	var lines []domain.CartLine

	for _, record := range records {
		lines = append(lines, mapRecordToDomain(record))
	}

	return lines
}

func mapDomainToRecords(cart domain.Cart) []cartLineRecord {
	records := make([]cartLineRecord, 0, len(cart.Lines))

	for _, line := range cart.Lines {
		records = append(records, cartLineRecord{
			SKU:       line.SKU,
			Nome:      line.Name,
			Preco:     line.UnitPrice.Amount.InexactFloat64(),
			Unidade:   line.Unit,
			Qtd:       line.Quantity,
			Img:       line.ImageRef,
			Categoria: line.Category,
		})
	}

	return records
}
