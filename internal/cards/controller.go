package cards

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownTab is returned when a tab has no container.
var ErrUnknownTab = errors.New("unknown tab")

// Controller owns the filter state and the card containers of each tab.
// Only the active tab's cards are ever evaluated.
type Controller struct {
	mu         sync.Mutex
	containers map[string][]Card
	active     string
	state      State
	results    []Result
}

// NewController creates a controller with the given containers and active tab.
func NewController(containers map[string][]Card, activeTab string) (*Controller, error) {
	if _, ok := containers[activeTab]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTab, activeTab)
	}
	c := &Controller{
		containers: containers,
		active:     activeTab,
		state:      State{Condition: ConditionAll},
	}
	c.results = Filter(c.containers[c.active], c.state)
	return c, nil
}

// GroupByTab builds tab containers from a flat card list, keeping order.
// Every tab in tabs gets a container even when it has no cards.
func GroupByTab(all []Card, tabs ...string) map[string][]Card {
	out := make(map[string][]Card, len(tabs))
	for _, t := range tabs {
		out[t] = nil
	}
	for _, c := range all {
		out[c.Tab] = append(out[c.Tab], c)
	}
	return out
}

// ActiveTab returns the active tab identifier.
func (c *Controller) ActiveTab() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// State returns the current filter state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetQuery records new query text and recomputes visibility.
func (c *Controller) SetQuery(query string) []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Query = query
	return c.apply()
}

// SetCondition activates a condition tag, replacing the previous one.
func (c *Controller) SetCondition(condition string) []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Condition = NormalizeCondition(condition)
	return c.apply()
}

// SetTab switches the active tab and filters its container.
func (c *Controller) SetTab(tab string) ([]Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.containers[tab]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	c.active = tab
	return c.apply(), nil
}

// Load restores state on page load, e.g. a query carried over from a
// previous navigation, and filters the active tab with it.
func (c *Controller) Load(s State) []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Query: s.Query, Condition: NormalizeCondition(s.Condition)}
	return c.apply()
}

// Results returns the results of the last filter pass.
func (c *Controller) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// VisibleCards returns the visible cards of the active tab.
func (c *Controller) VisibleCards() []Card {
	return VisibleOnly(c.Results())
}

func (c *Controller) apply() []Result {
	c.results = Filter(c.containers[c.active], c.state)
	return c.snapshot()
}

func (c *Controller) snapshot() []Result {
	out := make([]Result, len(c.results))
	copy(out, c.results)
	return out
}
