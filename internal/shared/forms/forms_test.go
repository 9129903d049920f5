package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulti(t *testing.T) {
	t.Run("absent field yields empty sequence", func(t *testing.T) {
		v := Values{}

		got := v.Multi("genre")

		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("scalar becomes single-element sequence", func(t *testing.T) {
		v := Values{"genre": "abc"}

		assert.Equal(t, []string{"abc"}, v.Multi("genre"))
	})

	t.Run("sequence passes through unchanged", func(t *testing.T) {
		v := Values{"genre": []string{"a", "b", "c"}}

		assert.Equal(t, []string{"a", "b", "c"}, v.Multi("genre"))
	})

	t.Run("idempotent", func(t *testing.T) {
		v := Values{"genre": "abc"}

		once := v.Multi("genre")
		v["genre"] = once
		twice := v.Multi("genre")

		assert.Equal(t, once, twice)
	})
}

func TestFromJSON(t *testing.T) {
	t.Run("mixed scalar and sequence fields", func(t *testing.T) {
		v := FromJSON(map[string]any{
			"title": "A Title",
			"genre": []any{"g1", "g2"},
		})

		assert.Equal(t, "A Title", v.Text("title"))
		assert.Equal(t, []string{"g1", "g2"}, v.Multi("genre"))
	})

	t.Run("null field is absent", func(t *testing.T) {
		v := FromJSON(map[string]any{"genre": nil})

		assert.Empty(t, v.Multi("genre"))
	})
}

func TestFromURLValues(t *testing.T) {
	v := FromURLValues(url.Values{
		"name":  {"Fantasy"},
		"genre": {"g1", "g2"},
	})

	assert.Equal(t, "Fantasy", v.Text("name"))
	assert.Equal(t, []string{"g1", "g2"}, v.Multi("genre"))
}

func TestSanitize(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "Fantasy", Sanitize("  Fantasy \n"))
	})

	t.Run("escapes markup-significant characters", func(t *testing.T) {
		got := Sanitize(`<b>"war" & peace</b>`)

		assert.NotContains(t, got, "<")
		assert.NotContains(t, got, ">")
		assert.NotContains(t, got, `"`)
		assert.Contains(t, got, "&lt;b&gt;")
	})

	t.Run("applies to each element of a sequence", func(t *testing.T) {
		got := SanitizeAll([]string{" a ", "<x>"})

		assert.Equal(t, []string{"a", "&lt;x&gt;"}, got)
	})
}

func TestValidate(t *testing.T) {
	fields := []Field{
		RequiredText("title", "Title"),
		RequiredText("author", "Author"),
		RequiredText("summary", "Summary"),
		RequiredText("isbn", "ISBN"),
	}

	t.Run("all fields present", func(t *testing.T) {
		v := Values{
			"title":   "T",
			"author":  "A",
			"summary": "S",
			"isbn":    "I",
		}

		assert.Empty(t, Validate(v, fields...))
	})

	t.Run("whitespace-only counts as empty", func(t *testing.T) {
		v := Values{
			"title":   "T",
			"author":  "A",
			"summary": "S",
			"isbn":    "   \t ",
		}

		got := Validate(v, fields...)

		assert.Equal(t, []string{"ISBN must not be empty."}, got)
	})

	t.Run("messages follow field declaration order", func(t *testing.T) {
		v := Values{"summary": "S"}

		got := Validate(v, fields...)

		assert.Equal(t, []string{
			"Title must not be empty.",
			"Author must not be empty.",
			"ISBN must not be empty.",
		}, got)
	})

	t.Run("deterministic for the same emptiness pattern", func(t *testing.T) {
		a := Validate(Values{"title": "", "author": "x"}, fields...)
		b := Validate(Values{"title": "  ", "author": "other"}, fields...)

		assert.Equal(t, a, b)
	})
}

func TestFromRequest(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		req := newRequest(t, "application/json", `{"name":"Fantasy","genre":["g1"]}`)

		v, err := FromRequest(req)

		require.NoError(t, err)
		assert.Equal(t, "Fantasy", v.Text("name"))
		assert.Equal(t, []string{"g1"}, v.Multi("genre"))
	})

	t.Run("form body", func(t *testing.T) {
		req := newRequest(t, "application/x-www-form-urlencoded", "name=Fantasy&genre=g1&genre=g2")

		v, err := FromRequest(req)

		require.NoError(t, err)
		assert.Equal(t, "Fantasy", v.Text("name"))
		assert.Equal(t, []string{"g1", "g2"}, v.Multi("genre"))
	})

	t.Run("malformed json", func(t *testing.T) {
		req := newRequest(t, "application/json", `{"name":`)

		_, err := FromRequest(req)

		assert.Error(t, err)
	})
}

func newRequest(t *testing.T, contentType, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/catalog/genres", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return req
}
