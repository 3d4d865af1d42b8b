package wishlist

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/notify"
	"storefront/internal/storage"
)

// Service owns the wishlist: a set of product snapshots keyed by product
// id, kept in insertion order for display. Mutations persist through the
// codec before committing, so a failed write leaves the set untouched.
type Service struct {
	mu       sync.Mutex
	items    []domain.Product
	store    *storage.Codec
	slotKey  string
	notifier notify.Notifier
	logger   *zap.Logger
}

// New hydrates the wishlist once from its slot. Corrupt or missing stored
// state degrades to an empty set.
func New(ctx context.Context, store *storage.Codec, slotKey string, notifier notify.Notifier, logger *zap.Logger) *Service {
	s := &Service{
		store:    store,
		slotKey:  slotKey,
		notifier: notifier,
		logger:   logger,
	}
	s.items = dedupe(store.LoadProducts(ctx, slotKey))
	if len(s.items) > 0 {
		logger.Info("wishlist hydrated", zap.Int("items", len(s.items)))
	}
	return s
}

// Add inserts the product unless it is already present. The boolean
// reports whether an insert happened; a duplicate emits an informational
// notification and changes nothing.
func (s *Service) Add(ctx context.Context, product domain.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(product.ID) >= 0 {
		s.notifier.Info(fmt.Sprintf("%s is already in your wishlist", product.Name))
		return false, nil
	}

	next := s.copyItems()
	next = append(next, product)

	if err := s.commit(ctx, next); err != nil {
		s.notifier.Error("Failed to add item to wishlist")
		return false, fmt.Errorf("add to wishlist: %w", err)
	}
	s.notifier.Success(fmt.Sprintf("%s added to wishlist!", product.Name))
	return true, nil
}

// Remove deletes the product with the given id. Absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}
	removed := s.items[idx]

	next := s.copyItems()
	next = append(next[:idx], next[idx+1:]...)

	if err := s.commit(ctx, next); err != nil {
		s.notifier.Error("Failed to remove item from wishlist")
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	s.notifier.Success(fmt.Sprintf("%s removed from wishlist", removed.Name))
	return nil
}

// Clear empties the wishlist.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, []domain.Product{}); err != nil {
		s.notifier.Error("Failed to clear wishlist")
		return fmt.Errorf("clear wishlist: %w", err)
	}
	s.notifier.Success("Wishlist cleared successfully")
	return nil
}

// Contains reports membership. Pure; no notification, no persistence.
func (s *Service) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// Count returns the set cardinality.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns a snapshot in insertion order.
func (s *Service) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

func (s *Service) commit(ctx context.Context, next []domain.Product) error {
	if err := s.store.SaveProducts(ctx, s.slotKey, next); err != nil {
		s.logger.Error("wishlist persist failed", zap.Error(err))
		return err
	}
	s.items = next
	return nil
}

func (s *Service) indexOf(productID string) int {
	for i, p := range s.items {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Service) copyItems() []domain.Product {
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

// dedupe drops repeated ids from hydrated state, keeping first occurrence.
// Blobs written by older clients could hold duplicates; the set invariant
// is enforced here rather than trusted.
func dedupe(products []domain.Product) []domain.Product {
	if len(products) == 0 {
		return products
	}
	seen := make(map[string]struct{}, len(products))
	out := products[:0]
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
