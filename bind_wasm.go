//go:build wasm

package pagectl

import (
	"syscall/js"
)

// Binding holds the JS callbacks registered by Bind.
// Release them only once the page no longer needs the controller.
type Binding struct {
	funcs    []js.Func
	observer js.Value
}

// Release disconnects the observer and frees every callback
func (b *Binding) Release() {
	if present(b.observer) {
		b.observer.Call("disconnect")
	}
	for _, fn := range b.funcs {
		fn.Release()
	}
	b.funcs = nil
}

func (b *Binding) on(target js.Value, event string, handler func(this, ev js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		handler(this, ev)
		return nil
	})
	b.funcs = append(b.funcs, fn)
	target.Call("addEventListener", event, fn)
}

// Bind wires the controller to the live document: menu, form, anchors and
// the reveal observer. Missing elements are skipped.
func (c *Controller) Bind() *Binding {
	b := &Binding{observer: js.Undefined()}
	doc := js.Global().Get("document")
	el := c.config.Elements

	trigger := doc.Call("querySelector", el.MenuTrigger)
	if present(trigger) {
		b.on(trigger, "click", func(_, _ js.Value) { c.ToggleMenu() })

		links := doc.Call("querySelectorAll", el.MenuLinks)
		for i := 0; i < links.Length(); i++ {
			b.on(links.Index(i), "click", func(_, _ js.Value) { c.CloseMenu() })
		}
	}

	form := doc.Call("getElementById", el.FormID)
	if present(form) {
		b.on(form, "submit", func(_, ev js.Value) {
			ev.Call("preventDefault")
			c.Submit()
		})
	}

	for _, field := range FormFields {
		input := doc.Call("getElementById", string(field))
		if !present(input) {
			continue
		}
		b.on(input, "focus", func(_, _ js.Value) { c.Focus(field) })
		b.on(input, "blur", func(_, _ js.Value) { c.Blur(field) })
	}

	anchors := doc.Call("querySelectorAll", el.Anchors)
	for i := 0; i < anchors.Length(); i++ {
		b.on(anchors.Index(i), "click", func(this, ev js.Value) {
			if c.ScrollToAnchor(this.Call("getAttribute", "href").String()) {
				ev.Call("preventDefault")
			}
		})
	}

	c.observeReveal(b)

	c.log("bind: page events wired")
	return b
}

// observeReveal hides the reveal targets and fades each one in as it enters
// the viewport. Without IntersectionObserver the targets are left untouched.
func (c *Controller) observeReveal(b *Binding) {
	ctor := js.Global().Get("IntersectionObserver")
	if !present(ctor) {
		c.log("bind: IntersectionObserver unavailable, reveal disabled")
		return
	}

	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			c.Intersect(jsElement{v: entry.Get("target")}, entry.Get("isIntersecting").Bool())
		}
		return nil
	})
	b.funcs = append(b.funcs, cb)

	b.observer = ctor.New(cb, map[string]any{
		"threshold":  c.config.RevealThreshold,
		"rootMargin": c.config.RevealRootMargin,
	})

	for _, target := range c.PrepareReveal() {
		if je, ok := target.(jsElement); ok {
			b.observer.Call("observe", je.v)
		}
	}
}
