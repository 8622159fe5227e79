package trailer

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/vmunix/watchlist/internal/cards"
)

// User-facing messages.
const (
	MsgNotFound = "Trailer not found!"
	MsgFailed   = "Could not load trailer. Please try again."
)

var (
	// ErrInFlight is returned when a lookup for the same card is still running.
	ErrInFlight = errors.New("trailer lookup already in progress")

	// ErrSuperseded is returned when a newer lookup or Close replaced this one.
	ErrSuperseded = errors.New("trailer lookup superseded")
)

// Looker resolves trailer URLs.
type Looker interface {
	Lookup(ctx context.Context, req Request) (string, error)
}

// Notifier shows a message to the user.
type Notifier interface {
	Alert(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Alert calls f(msg).
func (f NotifierFunc) Alert(msg string) { f(msg) }

// Modal is the state of the trailer modal.
type Modal struct {
	Open bool
	Src  string
}

// Player opens and closes the trailer modal for clicked cards.
// At most one lookup is in flight; a click on another card cancels it and
// responses of replaced lookups never reach the modal.
type Player struct {
	looker Looker
	notify Notifier
	log    *slog.Logger

	mu       sync.Mutex
	modal    Modal
	seq      uint64
	inflight string
	cancel   context.CancelFunc
}

// NewPlayer creates a player.
func NewPlayer(looker Looker, notify Notifier, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{looker: looker, notify: notify, log: logger}
}

// Open looks up the card's trailer and reveals the modal on success.
// Not-found and failures are reported through the notifier.
func (p *Player) Open(ctx context.Context, c cards.Card) error {
	p.mu.Lock()
	if p.cancel != nil && p.inflight == c.ID {
		p.mu.Unlock()
		return ErrInFlight
	}
	p.stopLocked()
	ctx, cancel := context.WithCancel(ctx)
	p.seq++
	seq := p.seq
	p.inflight = c.ID
	p.cancel = cancel
	p.mu.Unlock()
	defer cancel()

	req := NewRequest(c)
	src, err := p.looker.Lookup(ctx, req)

	p.mu.Lock()
	if seq != p.seq {
		p.mu.Unlock()
		return ErrSuperseded
	}
	p.inflight = ""
	p.cancel = nil
	if err == nil {
		p.modal = Modal{Open: true, Src: src}
	}
	p.mu.Unlock()

	switch {
	case err == nil:
		p.log.Debug("trailer opened", "card", c.ID, "url", src)
		return nil
	case errors.Is(err, ErrNotFound):
		p.notify.Alert(MsgNotFound)
	default:
		p.log.Warn("trailer lookup failed", "card", c.ID, "name", req.Name, "error", err)
		p.notify.Alert(MsgFailed)
	}
	return err
}

// Close clears the player source and hides the modal. A pending lookup is
// cancelled so it cannot reopen the modal.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	p.seq++
	p.modal = Modal{}
}

// Modal returns the current modal state.
func (p *Player) Modal() Modal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modal
}

func (p *Player) stopLocked() {
	if p.cancel != nil {
		p.cancel()
	}
	p.cancel = nil
	p.inflight = ""
}
