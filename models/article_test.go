package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags_Value(t *testing.T) {
	tests := []struct {
		name string
		tags Tags
		want string
	}{
		{name: "nil", tags: nil, want: "[]"},
		{name: "empty", tags: Tags{}, want: "[]"},
		{name: "values", tags: Tags{"go", "blog"}, want: `["go","blog"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.tags.Value()
			require.NoError(t, err)

			b, ok := v.([]byte)
			require.True(t, ok)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestTags_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    Tags
		wantErr bool
	}{
		{name: "bytes", src: []byte(`["go","sql"]`), want: Tags{"go", "sql"}},
		{name: "string", src: `["redis"]`, want: Tags{"redis"}},
		{name: "null column", src: nil, want: Tags{}},
		{name: "json null", src: []byte(`null`), want: Tags{}},
		{name: "malformed", src: []byte(`{"a":1}`), wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Tags
			err := got.Scan(tt.src)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
