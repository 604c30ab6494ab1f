package pagectl

const errorClass = "error"

// Submit handles a contact form submit. Repeat submits inside the guard
// window are dropped and return (nil, false). Otherwise every field is
// validated, errors are shown inline and a valid form is rendered.
func (c *Controller) Submit() (*Submission, bool) {
	if !c.acquireSubmit() {
		c.log("submit: suppressed duplicate")
		return nil, false
	}

	c.clearAllErrors()

	s := c.ReadForm()
	errs := Validate(s)
	for _, fe := range errs {
		c.showError(fe)
	}
	if len(errs) > 0 {
		c.log("submit: validation failed:", errs.Error())
		return nil, false
	}

	c.Render(s)
	return &s, true
}

// Blur revalidates one field when it loses focus. An empty field is left
// unflagged; required checks only run on submit.
func (c *Controller) Blur(field Field) {
	c.clearError(field)
	if fe, ok := ValidateField(field, c.fieldValue(field), false); !ok {
		c.showError(fe)
	}
	c.unfocus(field)
}

// Focus highlights the input that gained focus
func (c *Controller) Focus(field Field) {
	if input, ok := c.view.ByID(string(field)); ok {
		input.SetStyle("box-shadow", c.config.FocusShadow)
	}
}

func (c *Controller) unfocus(field Field) {
	if input, ok := c.view.ByID(string(field)); ok && !input.HasClass(errorClass) {
		input.SetStyle("box-shadow", "none")
	}
}

// ReadForm returns the trimmed values currently in the form inputs
func (c *Controller) ReadForm() Submission {
	return Submission{
		Name:    c.fieldValue(FieldName),
		Email:   c.fieldValue(FieldEmail),
		Phone:   c.fieldValue(FieldPhone),
		Subject: c.fieldValue(FieldSubject),
	}
}

func (c *Controller) fieldValue(field Field) string {
	input, ok := c.view.ByID(string(field))
	if !ok {
		return ""
	}
	return TrimInput(input.Value())
}

func (c *Controller) resetForm() {
	for _, field := range FormFields {
		if input, ok := c.view.ByID(string(field)); ok {
			input.SetValue("")
		}
	}
}

// fieldElements returns the input and its error text element; both must exist.
func (c *Controller) fieldElements(field Field) (input, msg Element, ok bool) {
	input, ok = c.view.ByID(string(field))
	if !ok {
		return nil, nil, false
	}
	msg, ok = c.view.ByID(string(field) + c.config.Elements.ErrorSuffix)
	if !ok {
		return nil, nil, false
	}
	return input, msg, true
}

func (c *Controller) showError(fe FieldError) {
	if input, msg, ok := c.fieldElements(fe.Field); ok {
		input.AddClass(errorClass)
		msg.SetText(fe.Message)
	}
}

func (c *Controller) clearError(field Field) {
	if input, msg, ok := c.fieldElements(field); ok {
		input.RemoveClass(errorClass)
		msg.SetText("")
	}
}

func (c *Controller) clearAllErrors() {
	for _, field := range FormFields {
		c.clearError(field)
	}
	for _, input := range c.view.QueryAll(c.config.Elements.FormInputs) {
		input.RemoveClass(errorClass)
	}
}

// FieldErrorText returns the message currently shown for field
func (c *Controller) FieldErrorText(field Field) string {
	if _, msg, ok := c.fieldElements(field); ok {
		return msg.Text()
	}
	return ""
}
