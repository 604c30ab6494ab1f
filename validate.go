package pagectl

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Field identifies a contact form input by its element id
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldSubject Field = "subject"
)

// FormFields lists every form input in display order
var FormFields = []Field{FieldName, FieldEmail, FieldPhone, FieldSubject}

// Messages shown next to a failing field
const (
	MsgNameRequired  = "Name is required"
	MsgNameTooShort  = "Name must be at least 3 characters"
	MsgNameInvalid   = "Name can only contain letters and spaces"
	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Please enter a valid email address"
	MsgPhoneRequired = "Phone number is required"
	MsgPhoneInvalid  = "Please enter a valid phone number (only numbers and hyphens)"
)

const (
	minNameLength  = 3
	minPhoneDigits = 7
)

// browserSpace is the whitespace class browsers use for \s and trim():
// ASCII space and controls, vertical tab, Zs, BOM and line separators.
const browserSpace = `\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}`

var (
	emailPattern = regexp.MustCompile(`^[^` + browserSpace + `@]+@[^` + browserSpace + `@]+\.[^` + browserSpace + `@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9\-` + browserSpace + `()]+$`)
)

// isBrowserSpace reports whether r belongs to browserSpace
func isBrowserSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xFEFF, 0x2028, 0x2029:
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TrimInput strips leading and trailing whitespace the way a browser's
// String.prototype.trim does.
func TrimInput(s string) string {
	return strings.TrimFunc(s, isBrowserSpace)
}

// inputLength counts UTF-16 code units, the unit form inputs report
func inputLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Submission is the set of trimmed form values
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
}

// Value returns the submission value for field
func (s Submission) Value(field Field) string {
	switch field {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldSubject:
		return s.Subject
	}
	return ""
}

// IsValidName reports whether name holds only ASCII letters and whitespace
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isBrowserSpace(r) {
			continue
		}
		return false
	}
	return true
}

// IsValidEmail reports whether email looks like local@domain.tld
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone accepts digits, hyphens, spaces and parentheses with at least 7 digits
func IsValidPhone(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits
}

// ValidateField checks value against the rules of field and returns the
// first rule it fails. With required false an empty value passes, which is
// how blur validation behaves.
func ValidateField(field Field, value string, required bool) (FieldError, bool) {
	value = TrimInput(value)
	fail := func(msg string) (FieldError, bool) {
		return FieldError{Field: field, Message: msg}, false
	}

	switch field {
	case FieldName:
		switch {
		case value == "":
			if required {
				return fail(MsgNameRequired)
			}
		case inputLength(value) < minNameLength:
			return fail(MsgNameTooShort)
		case !IsValidName(value):
			return fail(MsgNameInvalid)
		}
	case FieldEmail:
		switch {
		case value == "":
			if required {
				return fail(MsgEmailRequired)
			}
		case !IsValidEmail(value):
			return fail(MsgEmailInvalid)
		}
	case FieldPhone:
		switch {
		case value == "":
			if required {
				return fail(MsgPhoneRequired)
			}
		case !IsValidPhone(value):
			return fail(MsgPhoneInvalid)
		}
	}
	return FieldError{}, true
}

// Validate checks every field of s. It never stops at the first failure.
func Validate(s Submission) ValidationErrors {
	var errs ValidationErrors
	for _, field := range FormFields {
		if fe, ok := ValidateField(field, s.Value(field), true); !ok {
			errs = append(errs, fe)
		}
	}
	return errs
}
