package pagectl

import (
	"html"
	"regexp"

	. "github.com/cdvelop/tinystring"
	"github.com/microcosm-cc/bluemonday"
)

// resultPolicy only lets through the markup the confirmation view is made of.
// The success message comes from configuration and is not escaped, so this
// is what keeps its markup inline.
var resultPolicy = newResultPolicy()

func newResultPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div", "strong", "span", "p", "em", "b", "i", "br")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-z-]+$`)).OnElements("div", "p")
	return p
}

// Render shows the confirmation view for a validated submission.
// The name is persisted first; the rest is skipped when the result
// elements are missing from the page.
func (c *Controller) Render(s Submission) {
	c.rememberName(s.Name)

	section, ok := c.view.ByID(c.config.Elements.ResultSectionID)
	if !ok {
		return
	}
	content, ok := c.view.ByID(c.config.Elements.ResultContentID)
	if !ok {
		return
	}

	content.SetHTML(RenderResult(s, c.config.SuccessMessage))
	section.SetVisible(true)
	section.ScrollIntoView(true)
	c.resetForm()

	c.scheduler.AfterFunc(c.config.ResultHideDelay, func() {
		section.SetVisible(false)
	})
	c.log("render: confirmation shown for", s.Name)
}

// RenderResult builds the confirmation markup. Submitted values are escaped;
// success is trusted markup and the whole fragment goes through an
// allow-list policy. An empty success omits the closing paragraph.
func RenderResult(s Submission, success string) string {
	b := Convert()
	b.Write(resultItem("Name", s.Name))
	b.Write(resultItem("Email", s.Email))
	b.Write(resultItem("Phone", s.Phone))
	if s.Subject != "" {
		b.Write(resultItem("Subject", s.Subject))
	}
	if success != "" {
		b.Write(`<p class="result-success">`).Write(success).Write(`</p>`)
	}

	return resultPolicy.Sanitize(b.String())
}

func resultItem(label, value string) string {
	return Convert().
		Write(`<div class="result-content-item">`).
		Write(`<strong>`).Write(label).Write(`:</strong>`).
		Write(`<span>`).Write(html.EscapeString(value)).Write(`</span>`).
		Write(`</div>`).
		String()
}
