package pagectl

import "context"

// Greet shows the stored visitor name, or asks for one when none is stored.
// Dismissed or blank answers repeat the prompt until a name is given or ctx ends.
func (c *Controller) Greet(ctx context.Context) error {
	if name, ok := c.storage.Get(c.config.StorageKey); ok && name != "" {
		c.displayName(name)
		return nil
	}

	if _, ok := c.view.ByID(c.config.Elements.WelcomeID); !ok {
		c.log("greet: welcome element missing, skipping prompt")
		return nil
	}
	if c.prompter == nil {
		c.log("greet: no prompter configured")
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		value, ok, err := c.prompter.Prompt(ctx, c.config.PromptMessage)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if name := TrimInput(value); name != "" {
			c.rememberName(name)
			return nil
		}
	}
}

// Name returns the persisted visitor name
func (c *Controller) Name() (string, bool) {
	return c.storage.Get(c.config.StorageKey)
}

// rememberName persists name and updates the welcome element.
// Shared by the greeting and the form submission. A failed write leaves
// the welcome element untouched so it always shows the persisted name.
func (c *Controller) rememberName(name string) {
	if err := c.storage.Set(c.config.StorageKey, name); err != nil {
		c.log("rememberName: storage write failed:", err)
		return
	}
	c.displayName(name)
}

func (c *Controller) displayName(name string) {
	if el, ok := c.view.ByID(c.config.Elements.WelcomeID); ok {
		el.SetText(name)
	}
}
