// Package forms is the wire-to-domain boundary for record submissions.
// Raw fields arrive as a loose string-keyed mapping where any field may
// be absent, a single scalar, or a sequence; nothing past this package
// ever sees that ambiguity.
package forms

import (
	"encoding/json"
	"fmt"
	"html"
	"mime"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Values is one raw submission. Entries are either a string or a
// []string; anything else is treated as absent.
type Values map[string]any

// FromURLValues adapts a classic form POST body.
func FromURLValues(src url.Values) Values {
	v := make(Values, len(src))
	for name, raw := range src {
		switch len(raw) {
		case 0:
		case 1:
			v[name] = raw[0]
		default:
			v[name] = append([]string(nil), raw...)
		}
	}
	return v
}

// FromJSON adapts a decoded JSON body. Array elements that are not
// strings are stringified so a sloppy client cannot smuggle nested
// structures past the boundary.
func FromJSON(src map[string]any) Values {
	v := make(Values, len(src))
	for name, raw := range src {
		switch value := raw.(type) {
		case string:
			v[name] = value
		case []string:
			v[name] = value
		case []any:
			elems := make([]string, 0, len(value))
			for _, e := range value {
				if s, ok := e.(string); ok {
					elems = append(elems, s)
				} else {
					elems = append(elems, fmt.Sprintf("%v", e))
				}
			}
			v[name] = elems
		case nil:
		default:
			v[name] = fmt.Sprintf("%v", value)
		}
	}
	return v
}

// FromRequest reads a submission body, accepting either a JSON object
// or a classic url-encoded form.
func FromRequest(r *http.Request) (Values, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil && contentType != "" {
		return nil, fmt.Errorf("parse content type: %w", err)
	}

	if mediaType == "application/json" {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		return FromJSON(raw), nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	return FromURLValues(r.PostForm), nil
}

// Text returns the scalar value of a field, or "" when the field is
// absent. A multi-valued field yields its first element.
func (v Values) Text(name string) string {
	switch value := v[name].(type) {
	case string:
		return value
	case []string:
		if len(value) > 0 {
			return value[0]
		}
	}
	return ""
}

// Multi coerces a field to an ordered sequence of strings: absent
// becomes an empty slice, a scalar becomes a single-element slice, a
// sequence passes through unchanged. Never returns nil.
func (v Values) Multi(name string) []string {
	switch value := v[name].(type) {
	case string:
		return []string{value}
	case []string:
		if value == nil {
			return []string{}
		}
		return value
	default:
		return []string{}
	}
}

// Sanitize trims surrounding whitespace and escapes markup-significant
// characters. Applied to every text field before it reaches a candidate
// entity, whether or not validation passed.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// SanitizeAll sanitizes each element of a multi-value field.
func SanitizeAll(values []string) []string {
	out := make([]string, len(values))
	for i, s := range values {
		out[i] = Sanitize(s)
	}
	return out
}

// Field is one entry in a validation chain. Label is the user-facing
// name used in error messages.
type Field struct {
	Name  string
	Label string
	Rules []validation.Rule
}

// RequiredText declares a field that must be non-empty after trimming.
func RequiredText(name, label string) Field {
	return Field{
		Name:  name,
		Label: label,
		Rules: []validation.Rule{
			validation.Required.Error(label + " must not be empty."),
		},
	}
}

// Validate runs each field's rules against the trimmed raw value and
// collects error messages in field declaration order. An empty result
// means the submission is valid.
func Validate(v Values, fields ...Field) []string {
	var messages []string
	for _, f := range fields {
		value := strings.TrimSpace(v.Text(f.Name))
		if err := validation.Validate(value, f.Rules...); err != nil {
			messages = append(messages, err.Error())
		}
	}
	return messages
}
