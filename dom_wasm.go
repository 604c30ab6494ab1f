//go:build wasm

package pagectl

import (
	"context"
	"syscall/js"

	. "github.com/cdvelop/tinystring"
)

// jsElement adapts a DOM node to Element
type jsElement struct {
	v js.Value
}

func (e jsElement) Text() string { return e.v.Get("textContent").String() }
func (e jsElement) SetText(text string) { e.v.Set("textContent", text) }
func (e jsElement) SetHTML(html string) { e.v.Set("innerHTML", html) }
func (e jsElement) Value() string { return e.v.Get("value").String() }
func (e jsElement) SetValue(value string) { e.v.Set("value", value) }

func (e jsElement) AddClass(name string) { e.v.Get("classList").Call("add", name) }
func (e jsElement) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e jsElement) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e jsElement) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e jsElement) SetStyle(property, value string) {
	e.v.Get("style").Call("setProperty", property, value)
}

func (e jsElement) SetVisible(visible bool) {
	display := "none"
	if visible {
		display = "block"
	}
	e.v.Get("style").Set("display", display)
}

func (e jsElement) ScrollIntoView(smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	e.v.Call("scrollIntoView", map[string]any{
		"behavior": behavior,
		"block":    "start",
	})
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

// DocumentView is the View over the live document
type DocumentView struct {
	doc js.Value
}

// NewDocumentView wraps the global document
func NewDocumentView() *DocumentView {
	return &DocumentView{doc: js.Global().Get("document")}
}

func (d *DocumentView) ByID(id string) (Element, bool) {
	v := d.doc.Call("getElementById", id)
	if !present(v) {
		return nil, false
	}
	return jsElement{v: v}, true
}

func (d *DocumentView) Query(selector string) (Element, bool) {
	v := d.doc.Call("querySelector", selector)
	if !present(v) {
		return nil, false
	}
	return jsElement{v: v}, true
}

func (d *DocumentView) QueryAll(selector string) []Element {
	list := d.doc.Call("querySelectorAll", selector)
	n := list.Length()
	out := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, jsElement{v: list.Index(i)})
	}
	return out
}

// LocalStorage is the Storage backed by window.localStorage
type LocalStorage struct {
	store js.Value
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{store: js.Global().Get("localStorage")}
}

func (s *LocalStorage) Get(key string) (string, bool) {
	if !present(s.store) {
		return "", false
	}
	v := s.store.Call("getItem", key)
	if !present(v) {
		return "", false
	}
	return v.String(), true
}

// Set writes key. Quota and privacy-mode failures surface as errors.
func (s *LocalStorage) Set(key, value string) (err error) {
	if !present(s.store) {
		return Errf("localStorage unavailable")
	}
	defer func() {
		if r := recover(); r != nil {
			err = Errf("localStorage setItem: %v", r)
		}
	}()
	s.store.Call("setItem", key, value)
	return nil
}

// WindowPrompter asks through window.prompt, which blocks until answered
type WindowPrompter struct{}

func (WindowPrompter) Prompt(ctx context.Context, message string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	v := js.Global().Call("prompt", message)
	if !present(v) {
		return "", false, nil
	}
	return v.String(), true, nil
}
