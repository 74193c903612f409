package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"tokenTTL":         "8h",
			"writeRoles":       []any{"admin"},
			"migratePlaintext": true,
		},
		"http": map[string]any{
			"allowOrigins": []any{},
		},
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "aligns camelCase segment", raw: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{name: "aligns nested key", raw: "AUTH_MIGRATEPLAINTEXT", want: "auth.migratePlaintext"},
		{name: "unknown segment lowercased", raw: "AUTH_SECRET", want: "auth.secret"},
		{name: "unknown root kept as-is", raw: "POSTGRES_HOST", want: "postgres.host"},
		{name: "http origins", raw: "HTTP_ALLOWORIGINS", want: "http.allowOrigins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.raw, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "tokenttl", normalizeToken("tokenTTL"))
	assert.Equal(t, "writeroles", normalizeToken("write_roles"))
	assert.Equal(t, "", normalizeToken("___"))
}
