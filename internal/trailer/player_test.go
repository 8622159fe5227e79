package trailer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/watchlist/internal/cards"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type lookerFunc func(ctx context.Context, req Request) (string, error)

func (f lookerFunc) Lookup(ctx context.Context, req Request) (string, error) { return f(ctx, req) }

type alerts struct {
	mu   sync.Mutex
	msgs []string
}

func (a *alerts) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msgs = append(a.msgs, msg)
}

func (a *alerts) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.msgs...)
}

var (
	cardA = cards.Card{ID: "series-1", Title: "Breaking Bad (2008)", Type: "series"}
	cardB = cards.Card{ID: "movies-1", Title: "Inception (2010)", Type: "movie"}
)

func TestPlayer_OpenAndClose(t *testing.T) {
	var got Request
	looker := lookerFunc(func(ctx context.Context, req Request) (string, error) {
		got = req
		return "https://www.youtube.com/embed/abc", nil
	})
	a := &alerts{}
	p := NewPlayer(looker, a, testLogger())

	require.NoError(t, p.Open(context.Background(), cardA))
	assert.Equal(t, Request{Name: "Breaking Bad", Type: "tv", Year: "2008"}, got)
	assert.Equal(t, Modal{Open: true, Src: "https://www.youtube.com/embed/abc"}, p.Modal())
	assert.Empty(t, a.all())

	p.Close()
	assert.Equal(t, Modal{}, p.Modal())
}

func TestPlayer_NotFoundAlerts(t *testing.T) {
	looker := lookerFunc(func(ctx context.Context, req Request) (string, error) {
		return "", ErrNotFound
	})
	a := &alerts{}
	p := NewPlayer(looker, a, testLogger())

	err := p.Open(context.Background(), cardA)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{MsgNotFound}, a.all())
	assert.False(t, p.Modal().Open)
}

func TestPlayer_FailureAlerts(t *testing.T) {
	looker := lookerFunc(func(ctx context.Context, req Request) (string, error) {
		return "", errors.New("connection refused")
	})
	a := &alerts{}
	p := NewPlayer(looker, a, testLogger())

	err := p.Open(context.Background(), cardA)
	require.Error(t, err)
	assert.Equal(t, []string{MsgFailed}, a.all())
	assert.False(t, p.Modal().Open)
}

// blockingLooker blocks lookups for blockName until their context ends.
func blockingLooker(blockName string, started chan<- struct{}) Looker {
	return lookerFunc(func(ctx context.Context, req Request) (string, error) {
		if req.Name == blockName {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "https://www.youtube.com/embed/" + req.Name, nil
	})
}

func TestPlayer_NewerClickSupersedes(t *testing.T) {
	started := make(chan struct{})
	a := &alerts{}
	p := NewPlayer(blockingLooker("Breaking Bad", started), a, testLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- p.Open(context.Background(), cardA) }()
	<-started

	require.NoError(t, p.Open(context.Background(), cardB))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("first lookup was not cancelled")
	}

	assert.Equal(t, Modal{Open: true, Src: "https://www.youtube.com/embed/Inception"}, p.Modal())
	assert.Empty(t, a.all(), "superseded lookups do not alert")
}

func TestPlayer_DuplicateClickIgnored(t *testing.T) {
	started := make(chan struct{})
	p := NewPlayer(blockingLooker("Breaking Bad", started), &alerts{}, testLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- p.Open(context.Background(), cardA) }()
	<-started

	assert.ErrorIs(t, p.Open(context.Background(), cardA), ErrInFlight)

	p.Close()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("close did not cancel the lookup")
	}
	assert.Equal(t, Modal{}, p.Modal())
}

func TestNotifierFunc(t *testing.T) {
	var got string
	NotifierFunc(func(msg string) { got = msg }).Alert("hi")
	assert.Equal(t, "hi", got)
}
