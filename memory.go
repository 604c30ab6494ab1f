package pagectl

import (
	"sort"
	"sync"
)

// MemoryStorage is a Storage kept in a map. Used outside the browser and in tests.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string]string

	// WriteErr, when set, is returned by Set and nothing is stored
	WriteErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.data[key] = value
	return nil
}

// MemoryElement is an Element with no renderer behind it
type MemoryElement struct {
	mu      sync.Mutex
	text    string
	html    string
	value   string
	classes map[string]bool
	styles  map[string]string
	visible bool
	scrolls int
}

func NewMemoryElement() *MemoryElement {
	return &MemoryElement{
		classes: make(map[string]bool),
		styles:  make(map[string]string),
	}
}

func (e *MemoryElement) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

func (e *MemoryElement) SetText(text string) {
	e.mu.Lock()
	e.text = text
	e.mu.Unlock()
}

// HTML returns the markup last set with SetHTML
func (e *MemoryElement) HTML() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.html
}

func (e *MemoryElement) SetHTML(html string) {
	e.mu.Lock()
	e.html = html
	e.mu.Unlock()
}

func (e *MemoryElement) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

func (e *MemoryElement) SetValue(value string) {
	e.mu.Lock()
	e.value = value
	e.mu.Unlock()
}

func (e *MemoryElement) AddClass(name string) {
	e.mu.Lock()
	e.classes[name] = true
	e.mu.Unlock()
}

func (e *MemoryElement) RemoveClass(name string) {
	e.mu.Lock()
	delete(e.classes, name)
	e.mu.Unlock()
}

func (e *MemoryElement) ToggleClass(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.classes[name] {
		delete(e.classes, name)
		return false
	}
	e.classes[name] = true
	return true
}

func (e *MemoryElement) HasClass(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.classes[name]
}

// Style returns the inline style value last set for property
func (e *MemoryElement) Style(property string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.styles[property]
}

func (e *MemoryElement) SetStyle(property, value string) {
	e.mu.Lock()
	e.styles[property] = value
	e.mu.Unlock()
}

func (e *MemoryElement) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

func (e *MemoryElement) SetVisible(visible bool) {
	e.mu.Lock()
	e.visible = visible
	e.mu.Unlock()
}

// ScrollCount returns how many times ScrollIntoView was called
func (e *MemoryElement) ScrollCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrolls
}

func (e *MemoryElement) ScrollIntoView(smooth bool) {
	e.mu.Lock()
	e.scrolls++
	e.mu.Unlock()
}

// MemoryView resolves ids and selectors against elements registered up front.
// Selectors are matched literally, there is no CSS engine.
type MemoryView struct {
	mu         sync.Mutex
	byID       map[string]*MemoryElement
	bySelector map[string][]*MemoryElement
}

func NewMemoryView() *MemoryView {
	return &MemoryView{
		byID:       make(map[string]*MemoryElement),
		bySelector: make(map[string][]*MemoryElement),
	}
}

// AddElement registers a new element under id and returns it
func (v *MemoryView) AddElement(id string) *MemoryElement {
	el := NewMemoryElement()
	v.mu.Lock()
	v.byID[id] = el
	v.mu.Unlock()
	return el
}

// AddMatch makes el one of the results for selector. A nil el creates one.
func (v *MemoryView) AddMatch(selector string, el *MemoryElement) *MemoryElement {
	if el == nil {
		el = NewMemoryElement()
	}
	v.mu.Lock()
	v.bySelector[selector] = append(v.bySelector[selector], el)
	v.mu.Unlock()
	return el
}

// Element returns the concrete element registered under id, nil if none
func (v *MemoryView) Element(id string) *MemoryElement {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.byID[id]
}

func (v *MemoryView) ByID(id string) (Element, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	el, ok := v.byID[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (v *MemoryView) Query(selector string) (Element, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	els := v.bySelector[selector]
	if len(els) == 0 {
		return nil, false
	}
	return els[0], true
}

func (v *MemoryView) QueryAll(selector string) []Element {
	v.mu.Lock()
	defer v.mu.Unlock()
	els := v.bySelector[selector]
	out := make([]Element, 0, len(els))
	for _, el := range els {
		out = append(out, el)
	}
	return out
}

// ManualClock is a Scheduler driven by Advance instead of wall time
type ManualClock struct {
	mu     sync.Mutex
	now    int
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock *ManualClock
	at    int
	seq   int
	fn    func()
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) AfterFunc(ms int, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, at: c.now + ms, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by ms and fires every timer that came due,
// earliest first. Callbacks run without the clock locked.
func (c *ManualClock) Advance(ms int) {
	c.mu.Lock()
	target := c.now + ms
	c.mu.Unlock()

	for {
		c.mu.Lock()
		sort.Slice(c.timers, func(i, j int) bool {
			if c.timers[i].at != c.timers[j].at {
				return c.timers[i].at < c.timers[j].at
			}
			return c.timers[i].seq < c.timers[j].seq
		})
		if len(c.timers) == 0 || c.timers[0].at > target {
			c.now = target
			c.mu.Unlock()
			return
		}
		t := c.timers[0]
		c.timers = c.timers[1:]
		c.now = t.at
		c.mu.Unlock()

		t.fn()
	}
}

// Now returns the elapsed milliseconds
func (c *ManualClock) Now() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of timers not yet fired or stopped
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (t *manualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
