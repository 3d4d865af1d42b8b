package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/notify"
	"storefront/internal/storage"
)

// Service owns the cart state: an ordered line sequence plus a transient
// open/closed flag. Operations are serialized by the mutex, persisted
// through the codec before the in-memory state is committed, and announced
// through the notifier. A failed write leaves the cart untouched.
type Service struct {
	mu       sync.Mutex
	lines    []domain.CartLine
	isOpen   bool
	store    *storage.Codec
	slotKey  string
	notifier notify.Notifier
	logger   *zap.Logger
}

// New hydrates the cart once from its slot. Corrupt or missing stored
// state degrades to an empty cart.
func New(ctx context.Context, store *storage.Codec, slotKey string, notifier notify.Notifier, logger *zap.Logger) *Service {
	s := &Service{
		store:    store,
		slotKey:  slotKey,
		notifier: notifier,
		logger:   logger,
	}
	s.lines = store.LoadLines(ctx, slotKey)
	if len(s.lines) > 0 {
		logger.Info("cart hydrated", zap.Int("lines", len(s.lines)))
	}
	return s
}

// Add merges the product into an existing line with the same variant key
// or appends a new line with quantity 1.
func (s *Service) Add(ctx context.Context, product domain.Product, selectedColor, selectedSize string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.VariantKey{ProductID: product.ID, SelectedColor: selectedColor, SelectedSize: selectedSize}

	next := s.copyLines()
	merged := false
	for i := range next {
		if next[i].Key() == key {
			next[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		next = append(next, domain.CartLine{
			CartID:        uuid.NewString(),
			ProductID:     product.ID,
			Name:          product.Name,
			Price:         product.Price,
			PriceCents:    product.PriceCents,
			ImgURL:        product.ImgURL,
			SelectedColor: selectedColor,
			SelectedSize:  selectedSize,
			Quantity:      1,
			Rating:        product.Rating,
		})
	}

	if err := s.commit(ctx, next); err != nil {
		s.notifier.Error("Failed to add item to cart")
		return fmt.Errorf("add to cart: %w", err)
	}
	s.notifier.Success(fmt.Sprintf("%s added to cart!", product.Name))
	return nil
}

// Remove deletes the line with the given id. Absent ids are a no-op.
func (s *Service) Remove(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(cartID)
	if idx < 0 {
		return nil
	}
	removed := s.lines[idx]

	next := s.copyLines()
	next = append(next[:idx], next[idx+1:]...)

	if err := s.commit(ctx, next); err != nil {
		s.notifier.Error("Failed to remove item from cart")
		return fmt.Errorf("remove from cart: %w", err)
	}
	s.notifier.Success(fmt.Sprintf("%s removed from cart", removed.Name))
	return nil
}

// UpdateQuantity sets the line's quantity; values below 1 remove the line.
// No line ever remains with quantity <= 0. Absent ids are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, cartID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(cartID) < 0 {
		return nil
	}

	next := s.copyLines()
	kept := next[:0]
	for _, line := range next {
		if line.CartID == cartID {
			line.Quantity = quantity
		}
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}

	if err := s.commit(ctx, kept); err != nil {
		s.notifier.Error("Failed to update cart")
		return fmt.Errorf("update quantity: %w", err)
	}
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, []domain.CartLine{}); err != nil {
		s.notifier.Error("Failed to clear cart")
		return fmt.Errorf("clear cart: %w", err)
	}
	s.notifier.Success("Cart cleared successfully")
	return nil
}

// Toggle flips the visibility flag and returns the new value. The flag is
// transient and never persisted.
func (s *Service) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
	return s.isOpen
}

// IsOpen reports the visibility flag.
func (s *Service) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Items returns a snapshot of the line sequence in insertion order.
func (s *Service) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLines()
}

// TotalItems sums quantities across all lines.
func (s *Service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPriceCents sums price x quantity across all lines in cents.
func (s *Service) TotalPriceCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, line := range s.lines {
		total += line.TotalCents()
	}
	return total
}

// ItemCount returns the quantity of the line matching the variant key,
// or 0 when no such line exists.
func (s *Service) ItemCount(productID, selectedColor, selectedSize string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.VariantKey{ProductID: productID, SelectedColor: selectedColor, SelectedSize: selectedSize}
	for _, line := range s.lines {
		if line.Key() == key {
			return line.Quantity
		}
	}
	return 0
}

// commit persists the candidate line sequence and swaps it in only on
// success. Callers hold the mutex.
func (s *Service) commit(ctx context.Context, next []domain.CartLine) error {
	if err := s.store.SaveLines(ctx, s.slotKey, next); err != nil {
		s.logger.Error("cart persist failed", zap.Error(err))
		return err
	}
	s.lines = next
	return nil
}

func (s *Service) indexOf(cartID string) int {
	for i, line := range s.lines {
		if line.CartID == cartID {
			return i
		}
	}
	return -1
}

func (s *Service) copyLines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}
