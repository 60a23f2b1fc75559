package httpscribe

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFilterHeaders tests the filterHeaders function.
func TestFilterHeaders(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"Host":          "example.com",
		"Content-Type":  "application/json",
		"Authorization": "Bearer token",
	}

	tests := []struct {
		name      string
		whitelist []string
		blacklist []string
		expected  map[string]string
	}{
		{
			name: "no policy passes everything through",
			expected: map[string]string{
				"Host":          "example.com",
				"Content-Type":  "application/json",
				"Authorization": "Bearer token",
			},
		},
		{
			name:      "whitelist keeps only listed names",
			whitelist: []string{"Host", "Content-Type"},
			expected: map[string]string{
				"Host":         "example.com",
				"Content-Type": "application/json",
			},
		},
		{
			name:      "whitelisted names absent from input are simply absent",
			whitelist: []string{"Host", "X-Missing"},
			expected: map[string]string{
				"Host": "example.com",
			},
		},
		{
			name:      "blacklist removes listed names",
			blacklist: []string{"Authorization"},
			expected: map[string]string{
				"Host":         "example.com",
				"Content-Type": "application/json",
			},
		},
		{
			name:      "blacklist is applied after whitelisting",
			whitelist: []string{"Host", "Authorization"},
			blacklist: []string{"Authorization"},
			expected: map[string]string{
				"Host": "example.com",
			},
		},
		{
			name:      "policy names are matched in canonical header case",
			whitelist: []string{"content-type"},
			blacklist: []string{"CONTENT-TYPE"},
			expected:  map[string]string{},
		},
		{
			name:      "empty whitelist hides everything",
			whitelist: []string{},
			expected:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := filterHeaders(headers, tt.whitelist, tt.blacklist)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestFilterHeaders_DoesNotMutateInput tests that filterHeaders never
// changes the supplied map.
func TestFilterHeaders_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	headers := map[string]string{
		"Host":          "example.com",
		"Authorization": "Bearer token",
	}

	_ = filterHeaders(headers, []string{"Host"}, []string{"Authorization"})

	assert.Equal(t, map[string]string{
		"Host":          "example.com",
		"Authorization": "Bearer token",
	}, headers)
}

// TestFlattenHeader tests the flattenHeader function.
func TestFlattenHeader(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Add("Accept", "text/html")
	header.Add("Accept", "application/json")
	header.Set("Content-Type", "text/plain")

	result := flattenHeader(header)

	assert.Equal(t, map[string]string{
		"Accept":       "text/html, application/json",
		"Content-Type": "text/plain",
	}, result)
}
