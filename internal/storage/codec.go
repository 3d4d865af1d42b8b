package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/domain"
	slotrepo "storefront/internal/repository/slot"
)

// Codec serializes cart lines and product lists to JSON and stores them in
// a key-value slot. Loads are fail-open: a missing key, a backend error, or
// a corrupt payload all yield an empty sequence so the application starts
// fresh instead of crashing.
type Codec struct {
	slots  slotrepo.Repository
	logger *zap.Logger
}

func NewCodec(slots slotrepo.Repository, logger *zap.Logger) *Codec {
	return &Codec{slots: slots, logger: logger}
}

// SaveLines overwrites the slot under key with the full line sequence.
func (c *Codec) SaveLines(ctx context.Context, key string, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode lines: %w", err)
	}
	if err := c.slots.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

// LoadLines reads the line sequence stored under key. Lines persisted by
// the original frontend carry only the display price; their cents value is
// re-derived here.
func (c *Codec) LoadLines(ctx context.Context, key string) []domain.CartLine {
	raw, ok := c.read(ctx, key)
	if !ok {
		return nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		c.logger.Warn("corrupt slot payload, starting fresh", zap.String("key", key), zap.Error(err))
		return nil
	}

	for i := range lines {
		if lines[i].PriceCents == 0 && lines[i].Price != "" {
			cents, err := domain.ParsePriceCents(lines[i].Price)
			if err != nil {
				c.logger.Warn("unparseable line price", zap.String("key", key), zap.String("price", lines[i].Price))
				continue
			}
			lines[i].PriceCents = cents
		}
	}
	return lines
}

// SaveProducts overwrites the slot under key with the full product sequence.
func (c *Codec) SaveProducts(ctx context.Context, key string, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	if err := c.slots.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

// LoadProducts reads the product sequence stored under key, fail-open.
func (c *Codec) LoadProducts(ctx context.Context, key string) []domain.Product {
	raw, ok := c.read(ctx, key)
	if !ok {
		return nil
	}

	var products []domain.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		c.logger.Warn("corrupt slot payload, starting fresh", zap.String("key", key), zap.Error(err))
		return nil
	}

	for i := range products {
		if products[i].PriceCents == 0 && products[i].Price != "" {
			cents, err := domain.ParsePriceCents(products[i].Price)
			if err != nil {
				continue
			}
			products[i].PriceCents = cents
		}
	}
	return products
}

func (c *Codec) read(ctx context.Context, key string) (string, bool) {
	raw, err := c.slots.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return "", false
	}
	if err != nil {
		c.logger.Warn("slot read failed, starting fresh", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, true
}
