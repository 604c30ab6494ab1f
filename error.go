package pagectl

import (
	. "github.com/cdvelop/tinystring"
)

// FieldError is a failed rule on one form field. Message is what the page shows.
type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string {
	return Convert().Write(string(e.Field)).Write(": ").Write(e.Message).String()
}

// ValidationErrors collects one FieldError per failing field, in field order
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	b := Convert()
	for i, fe := range v {
		if i > 0 {
			b.Write("; ")
		}
		b.Write(fe.Error())
	}
	return b.String()
}

// For returns the error recorded for field, if any
func (v ValidationErrors) For(field Field) (FieldError, bool) {
	for _, fe := range v {
		if fe.Field == field {
			return fe, true
		}
	}
	return FieldError{}, false
}
