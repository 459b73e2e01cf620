package pathmatch

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		verbs   []string
		wantErr error
	}{
		{name: "empty", pattern: "", wantErr: ErrEmptyPattern},
		{name: "relative", pattern: "admin/*", wantErr: ErrPatternNotAbsolute},
		{name: "wildcard in the middle", pattern: "/admin/*/edit", wantErr: ErrMisplacedWildcard},
		{name: "double wildcard", pattern: "/admin/**", wantErr: ErrMisplacedWildcard},
		{name: "unknown verb", pattern: "/admin/*", verbs: []string{"FETCH"}, wantErr: ErrUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern, tt.verbs...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRule_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		verbs   []string
		method  string
		path    string
		want    bool
	}{
		{name: "glob matches suffix", pattern: "/admin/*", method: http.MethodGet, path: "/admin/anything", want: true},
		{name: "glob matches nested suffix", pattern: "/admin/*", method: http.MethodPost, path: "/admin/article/save", want: true},
		{name: "glob matches bare prefix", pattern: "/admin/*", method: http.MethodGet, path: "/admin/", want: true},
		{name: "glob does not match sibling", pattern: "/admin/*", method: http.MethodGet, path: "/administrator", want: false},
		{name: "glob does not match parent without slash", pattern: "/admin/*", method: http.MethodGet, path: "/admin", want: false},
		{name: "literal matches identical path", pattern: "/admin/login", method: http.MethodPost, path: "/admin/login", want: true},
		{name: "literal does not match longer path", pattern: "/admin/login", method: http.MethodPost, path: "/admin/login/x", want: false},
		{name: "case sensitive", pattern: "/admin/*", method: http.MethodGet, path: "/Admin/x", want: false},
		{name: "root wildcard matches everything", pattern: "/*", method: http.MethodGet, path: "/quote/random", want: true},
		{name: "verb restriction allows listed", pattern: "/article/*", verbs: []string{"post", "PUT"}, method: http.MethodPut, path: "/article/update/1", want: true},
		{name: "verb restriction rejects others", pattern: "/article/*", verbs: []string{"POST"}, method: http.MethodGet, path: "/article/all", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := Compile(tt.pattern, tt.verbs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule.Matches(tt.method, tt.path))
		})
	}
}

func TestParse(t *testing.T) {
	rule, err := Parse("GET,DELETE /admin/*")
	require.NoError(t, err)
	assert.Equal(t, "/admin/*", rule.String())
	assert.True(t, rule.Matches(http.MethodDelete, "/admin/article/remove/1"))
	assert.False(t, rule.Matches(http.MethodPost, "/admin/article/save"))

	rule, err = Parse("  /quote/random ")
	require.NoError(t, err)
	assert.True(t, rule.Matches(http.MethodGet, "/quote/random"))

	_, err = Parse("GET /a /b")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestRules_MatchAny(t *testing.T) {
	rules, err := ParseAll([]string{"/admin/login", "POST /article/*"})
	require.NoError(t, err)

	assert.True(t, rules.MatchAny(http.MethodPost, "/admin/login"))
	assert.True(t, rules.MatchAny(http.MethodPost, "/article/save"))
	assert.False(t, rules.MatchAny(http.MethodGet, "/article/all"))
	assert.False(t, Rules(nil).MatchAny(http.MethodGet, "/"))

	_, err = ParseAll([]string{"/ok", "/bad/*/x"})
	assert.ErrorIs(t, err, ErrMisplacedWildcard)
}

func TestRules_Patterns(t *testing.T) {
	rules, err := ParseAll([]string{"/admin/*", "POST /login"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/admin/*", "/login"}, rules.Patterns())
	assert.Empty(t, Rules(nil).Patterns())
}
