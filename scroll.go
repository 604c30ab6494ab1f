package pagectl

import . "github.com/cdvelop/tinystring"

// ScrollToAnchor smooth-scrolls to the element an in-page href points at.
// It returns true when it handled the jump, in which case the caller must
// suppress the default navigation. "#" and unknown targets return false.
func (c *Controller) ScrollToAnchor(href string) bool {
	if !HasPrefix(href, "#") || len(href) == 1 {
		return false
	}
	id := href[1:]
	target, ok := c.view.ByID(id)
	if !ok {
		return false
	}
	target.ScrollIntoView(true)
	return true
}

// PrepareReveal hides every element matching the reveal selectors and
// returns them so the caller can observe their visibility.
func (c *Controller) PrepareReveal() []Element {
	var els []Element
	for _, sel := range c.config.RevealSelectors {
		for _, el := range c.view.QueryAll(sel) {
			el.SetStyle("opacity", "0")
			els = append(els, el)
		}
	}
	return els
}

// Intersect handles a visibility change of an observed element.
// Leaving the viewport is ignored; revealed elements stay visible.
func (c *Controller) Intersect(el Element, intersecting bool) {
	if !intersecting || el == nil {
		return
	}
	el.SetStyle("opacity", "1")
	el.SetStyle("animation", c.config.RevealAnimation)
}
