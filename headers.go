package httpscribe

import (
	"net/http"
	"net/textproto"
	"strings"
)

// hostHeader is the canonical name under which the target host travels
// inside a normalized header map.
const hostHeader = "Host"

// headerValueSeparator joins multiple values of the same header into a
// single string.
const headerValueSeparator = ", "

// filterHeaders applies the allow-list/deny-list visibility policy to a
// header map. When whitelist is non-nil, only the listed names survive;
// blacklist entries are removed from that intermediate set afterwards.
// When both lists are nil the input passes through unchanged.
// Header names in the policy lists are matched in Go's canonical MIME
// header case, the same convention http.Header uses.
// The input map is never mutated.
func filterHeaders(headers map[string]string, whitelist, blacklist []string) map[string]string {
	result := make(map[string]string, len(headers))

	if whitelist != nil {
		for _, name := range whitelist {
			canonical := textproto.CanonicalMIMEHeaderKey(name)
			if value, ok := headers[canonical]; ok {
				result[canonical] = value
			}
		}
	} else {
		for name, value := range headers {
			result[name] = value
		}
	}

	for _, name := range blacklist {
		delete(result, textproto.CanonicalMIMEHeaderKey(name))
	}

	return result
}

// flattenHeader collapses an http.Header into a plain name-to-value map.
// Multiple values of the same header are joined with ", " as allowed by
// RFC 9110 for list-valued fields.
func flattenHeader(header http.Header) map[string]string {
	result := make(map[string]string, len(header))

	for name, values := range header {
		result[name] = strings.Join(values, headerValueSeparator)
	}

	return result
}
