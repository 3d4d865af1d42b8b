package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier is the fire-and-forget contract the state machines emit through.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Notification levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

// Notification is one user-facing message.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Hub stacks notifications and dismisses each one after a fixed TTL. It
// also logs every message. Dismissal timing never affects the state
// machines; the hub is observation only.
type Hub struct {
	mu      sync.Mutex
	entries []Notification
	ttl     time.Duration
	logger  *zap.Logger
}

func NewHub(ttl time.Duration, logger *zap.Logger) *Hub {
	return &Hub{ttl: ttl, logger: logger}
}

func (h *Hub) Success(msg string) {
	h.logger.Info("notify", zap.String("level", LevelSuccess), zap.String("message", msg))
	h.push(LevelSuccess, msg)
}

func (h *Hub) Error(msg string) {
	h.logger.Warn("notify", zap.String("level", LevelError), zap.String("message", msg))
	h.push(LevelError, msg)
}

func (h *Hub) Info(msg string) {
	h.logger.Info("notify", zap.String("level", LevelInfo), zap.String("message", msg))
	h.push(LevelInfo, msg)
}

// Active returns the notifications that have not yet been dismissed,
// oldest first.
func (h *Hub) Active() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Notification, len(h.entries))
	copy(out, h.entries)
	return out
}

// Dismiss removes a notification before its TTL elapses. Unknown ids are
// a no-op.
func (h *Hub) Dismiss(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(id)
}

func (h *Hub) push(level, msg string) {
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   msg,
		CreatedAt: time.Now().UTC(),
	}

	h.mu.Lock()
	h.entries = append(h.entries, n)
	h.mu.Unlock()

	time.AfterFunc(h.ttl, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.remove(n.ID)
	})
}

func (h *Hub) remove(id string) {
	for i, e := range h.entries {
		if e.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// Noop discards all notifications. Used by the maintenance commands.
type Noop struct{}

func (Noop) Success(string) {}
func (Noop) Error(string)   {}
func (Noop) Info(string)    {}
