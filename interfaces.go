package pagectl

import "context"

// Storage is the origin-scoped key-value store holding the visitor name
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Prompter asks the user for a line of text.
// ok is false when the request was dismissed without a value.
type Prompter interface {
	Prompt(ctx context.Context, message string) (value string, ok bool, err error)
}

// Element is the subset of a DOM node the controller touches
type Element interface {
	Text() string
	SetText(text string)
	SetHTML(html string)
	Value() string
	SetValue(value string)
	AddClass(name string)
	RemoveClass(name string)
	ToggleClass(name string) bool
	HasClass(name string) bool
	SetStyle(property, value string)
	SetVisible(visible bool)
	ScrollIntoView(smooth bool)
}

// View looks elements up. Missing elements report ok == false, never an error.
type View interface {
	ByID(id string) (Element, bool)
	Query(selector string) (Element, bool)
	QueryAll(selector string) []Element
}

// Timer is returned by Scheduler.AfterFunc
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after ms milliseconds
type Scheduler interface {
	AfterFunc(ms int, fn func()) Timer
}
