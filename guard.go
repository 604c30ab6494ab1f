package pagectl

// acquireSubmit moves the guard from accepting to suppressing and schedules
// the return to accepting. It reports false while already suppressing.
func (c *Controller) acquireSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitting {
		return false
	}
	c.submitting = true

	c.scheduler.AfterFunc(c.config.SubmitGuardWindow, c.releaseSubmit)
	return true
}

func (c *Controller) releaseSubmit() {
	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()
}

// Submitting reports whether repeat submits are currently suppressed
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}
