package pagectl_test

import (
	"testing"

	"github.com/cdvelop/pagectl"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func FormSubmitShared(t *testing.T) {
	t.Run("Empty Required Fields", func(t *testing.T) {
		p := newPage(nil)

		s, ok := p.ctl.Submit()

		assert.False(t, ok)
		assert.Nil(t, s)
		assert.Equal(t, pagectl.MsgNameRequired, p.ctl.FieldErrorText(pagectl.FieldName))
		assert.Equal(t, pagectl.MsgEmailRequired, p.ctl.FieldErrorText(pagectl.FieldEmail))
		assert.Equal(t, pagectl.MsgPhoneRequired, p.ctl.FieldErrorText(pagectl.FieldPhone))
		for _, field := range []pagectl.Field{pagectl.FieldName, pagectl.FieldEmail, pagectl.FieldPhone} {
			assert.True(t, p.input(field).HasClass("error"), "field %s not marked", field)
		}
		assert.False(t, p.input(pagectl.FieldSubject).HasClass("error"))

		assert.Empty(t, p.content.HTML())
		_, stored := p.storage.Get("userName")
		assert.False(t, stored)
	})

	t.Run("Every Field Checked", func(t *testing.T) {
		p := newPage(nil)
		p.fill(pagectl.Submission{Name: "Al3x", Email: "a.com", Phone: "555-123-4567"})

		_, ok := p.ctl.Submit()

		assert.False(t, ok)
		assert.Equal(t, pagectl.MsgNameInvalid, p.ctl.FieldErrorText(pagectl.FieldName))
		assert.Equal(t, pagectl.MsgEmailInvalid, p.ctl.FieldErrorText(pagectl.FieldEmail))
		assert.Empty(t, p.ctl.FieldErrorText(pagectl.FieldPhone))
		assert.False(t, p.input(pagectl.FieldPhone).HasClass("error"))
	})

	t.Run("Valid Submission Rendered", func(t *testing.T) {
		p := newPage(nil)
		p.fill(pagectl.Submission{
			Name:    "  Al Smith ",
			Email:   "al@example.com",
			Phone:   "(555) 123-4567",
			Subject: "",
		})

		s, ok := p.ctl.Submit()
		require.True(t, ok)

		want := pagectl.Submission{Name: "Al Smith", Email: "al@example.com", Phone: "(555) 123-4567"}
		if diff := cmp.Diff(want, *s); diff != "" {
			t.Errorf("submission mismatch (-want +got):\n%s", diff)
		}

		name, _ := p.storage.Get("userName")
		assert.Equal(t, "Al Smith", name)
		assert.Equal(t, "Al Smith", p.welcome.Text())

		assert.True(t, p.section.Visible())
		assert.Equal(t, 1, p.section.ScrollCount())
		assert.Contains(t, p.content.HTML(), "Al Smith")
		assert.NotContains(t, p.content.HTML(), "Subject:")

		for _, field := range pagectl.FormFields {
			assert.Empty(t, p.input(field).Value(), "field %s not reset", field)
		}
	})

	t.Run("Result Hidden After Delay", func(t *testing.T) {
		p := newPage(nil)
		p.fill(validSubmission())

		_, ok := p.ctl.Submit()
		require.True(t, ok)

		p.clock.Advance(4999)
		assert.True(t, p.section.Visible())

		p.clock.Advance(1)
		assert.False(t, p.section.Visible())
	})

	t.Run("Errors Cleared On Next Submit", func(t *testing.T) {
		p := newPage(nil)
		p.ctl.Submit()
		require.NotEmpty(t, p.ctl.FieldErrorText(pagectl.FieldName))

		p.clock.Advance(2000)
		p.fill(validSubmission())
		_, ok := p.ctl.Submit()

		require.True(t, ok)
		for _, field := range pagectl.FormFields {
			assert.Empty(t, p.ctl.FieldErrorText(field))
			assert.False(t, p.input(field).HasClass("error"))
		}
	})

	t.Run("Missing Result Elements", func(t *testing.T) {
		view := pagectl.NewMemoryView()
		view.AddElement("userName")
		for _, field := range pagectl.FormFields {
			view.AddElement(string(field))
		}
		store := pagectl.NewMemoryStorage()
		ctl := pagectl.New(nil, view, store, nil)
		ctl.SetScheduler(pagectl.NewManualClock())

		s := validSubmission()
		view.Element("name").SetValue(s.Name)
		view.Element("email").SetValue(s.Email)
		view.Element("phone").SetValue(s.Phone)

		_, ok := ctl.Submit()

		assert.True(t, ok)
		name, _ := store.Get("userName")
		assert.Equal(t, "Al Smith", name)
		assert.Equal(t, "Al Smith", view.Element("userName").Text())
		assert.Equal(t, s.Email, view.Element("email").Value(), "form untouched without result view")
	})
}

func SubmitGuardShared(t *testing.T) {
	t.Run("Repeat Within Window Ignored", func(t *testing.T) {
		p := newPage(nil)
		p.fill(validSubmission())

		_, ok := p.ctl.Submit()
		require.True(t, ok)
		first := p.content.HTML()
		assert.True(t, p.ctl.Submitting())

		p.clock.Advance(1999)
		p.fill(pagectl.Submission{Name: "Bob Stone", Email: "bob@example.com", Phone: "5551234"})
		s, ok := p.ctl.Submit()

		assert.False(t, ok)
		assert.Nil(t, s)
		assert.Equal(t, first, p.content.HTML())
		name, _ := p.storage.Get("userName")
		assert.Equal(t, "Al Smith", name)
	})

	t.Run("Accepts Again After Window", func(t *testing.T) {
		p := newPage(nil)
		p.fill(validSubmission())
		p.ctl.Submit()

		p.clock.Advance(2000)
		assert.False(t, p.ctl.Submitting())

		p.fill(pagectl.Submission{Name: "Bob Stone", Email: "bob@example.com", Phone: "5551234"})
		_, ok := p.ctl.Submit()

		require.True(t, ok)
		name, _ := p.storage.Get("userName")
		assert.Equal(t, "Bob Stone", name)
	})

	t.Run("Invalid Submit Also Guarded", func(t *testing.T) {
		p := newPage(nil)
		p.ctl.Submit()

		p.fill(validSubmission())
		_, ok := p.ctl.Submit()

		assert.False(t, ok)
		assert.Equal(t, pagectl.MsgNameRequired, p.ctl.FieldErrorText(pagectl.FieldName))
	})

	t.Run("Configured Window", func(t *testing.T) {
		cfg := pagectl.DefaultConfig()
		cfg.SubmitGuardWindow = 500
		clock := pagectl.NewManualClock()
		ctl := pagectl.New(cfg, nil, nil, nil)
		ctl.SetScheduler(clock)

		ctl.Submit()
		clock.Advance(499)
		assert.True(t, ctl.Submitting())
		clock.Advance(1)
		assert.False(t, ctl.Submitting())
	})
}

func FormBlurShared(t *testing.T) {
	t.Run("Empty Field Not Flagged", func(t *testing.T) {
		p := newPage(nil)

		for _, field := range pagectl.FormFields {
			p.ctl.Blur(field)
			assert.Empty(t, p.ctl.FieldErrorText(field))
			assert.False(t, p.input(field).HasClass("error"))
		}
	})

	t.Run("Rule Failure Shown", func(t *testing.T) {
		p := newPage(nil)
		p.input(pagectl.FieldName).SetValue("Al")
		p.input(pagectl.FieldEmail).SetValue("a@b")
		p.input(pagectl.FieldPhone).SetValue("12345")

		p.ctl.Blur(pagectl.FieldName)
		p.ctl.Blur(pagectl.FieldEmail)
		p.ctl.Blur(pagectl.FieldPhone)

		assert.Equal(t, pagectl.MsgNameTooShort, p.ctl.FieldErrorText(pagectl.FieldName))
		assert.Equal(t, pagectl.MsgEmailInvalid, p.ctl.FieldErrorText(pagectl.FieldEmail))
		assert.Equal(t, pagectl.MsgPhoneInvalid, p.ctl.FieldErrorText(pagectl.FieldPhone))
	})

	t.Run("Fixed Value Clears Error", func(t *testing.T) {
		p := newPage(nil)
		name := p.input(pagectl.FieldName)

		name.SetValue("Al3x")
		p.ctl.Blur(pagectl.FieldName)
		require.Equal(t, pagectl.MsgNameInvalid, p.ctl.FieldErrorText(pagectl.FieldName))

		name.SetValue("Alex")
		p.ctl.Blur(pagectl.FieldName)
		assert.Empty(t, p.ctl.FieldErrorText(pagectl.FieldName))
		assert.False(t, name.HasClass("error"))
	})

	t.Run("Focus Ring", func(t *testing.T) {
		p := newPage(nil)
		email := p.input(pagectl.FieldEmail)
		shadow := pagectl.DefaultConfig().FocusShadow

		p.ctl.Focus(pagectl.FieldEmail)
		assert.Equal(t, shadow, email.Style("box-shadow"))

		email.SetValue("al@example.com")
		p.ctl.Blur(pagectl.FieldEmail)
		assert.Equal(t, "none", email.Style("box-shadow"))

		p.ctl.Focus(pagectl.FieldEmail)
		email.SetValue("nope")
		p.ctl.Blur(pagectl.FieldEmail)
		assert.Equal(t, shadow, email.Style("box-shadow"), "errored input keeps its ring")
	})
}
