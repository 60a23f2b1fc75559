package httpscribe

import (
	"mime"
	"net/http"
	"net/http/httputil"
	"regexp"
	"strings"
)

// textContentTypePatterns is a slice of regular expressions that match
// content types considered to be text-based. Response bodies are only
// included in dumps when the content type matches one of these.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var textContentTypePatterns = []*regexp.Regexp{
	regexp.MustCompile("^text/.+"),
	regexp.MustCompile("^application/json$"),
	regexp.MustCompile(`^application/(\w+\+)?xml$`),
}

// truncatedMarker is appended to dumps that were cut at the configured
// maximum length.
const truncatedMarker = "... [truncated]"

// isTextContentType checks if the given content type represents a
// text-based format. It also checks that the charset, if present, is
// either "utf-8" or "us-ascii".
func isTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// dumpRequest renders the raw outbound request, body included, truncated
// at maxLength bytes.
func dumpRequest(req *http.Request, maxLength uint64) string {
	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return err.Error()
	}

	return truncate(dump, maxLength)
}

// dumpResponse renders the raw response, including the body only when
// the Content-Type header indicates a text-based format.
func dumpResponse(resp *http.Response, maxLength uint64) string {
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, isTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	return truncate(dump, maxLength)
}

// truncate cuts data at maxLength bytes and marks the cut.
func truncate(data []byte, maxLength uint64) string {
	if uint64(len(data)) > maxLength {
		return string(data[:maxLength]) + truncatedMarker
	}

	return string(data)
}
