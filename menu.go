package pagectl

const activeClass = "active"

// ToggleMenu flips the active state of the menu trigger and panel
func (c *Controller) ToggleMenu() {
	for _, el := range c.menuElements() {
		el.ToggleClass(activeClass)
	}
}

// CloseMenu deactivates trigger and panel, whatever their state
func (c *Controller) CloseMenu() {
	for _, el := range c.menuElements() {
		el.RemoveClass(activeClass)
	}
}

// MenuOpen reports whether the menu panel is active
func (c *Controller) MenuOpen() bool {
	panel, ok := c.view.Query(c.config.Elements.MenuPanel)
	return ok && panel.HasClass(activeClass)
}

func (c *Controller) menuElements() []Element {
	els := make([]Element, 0, 2)
	if panel, ok := c.view.Query(c.config.Elements.MenuPanel); ok {
		els = append(els, panel)
	}
	if trigger, ok := c.view.Query(c.config.Elements.MenuTrigger); ok {
		els = append(els, trigger)
	}
	return els
}
