package serialization

import "strings"

// NormalizeContentType reduces a header value to its bare media type:
// parameters are dropped, the result is lower-cased and structured-syntax
// suffixes collapse onto their base format ("application/vnd.api+json"
// becomes "application/json").
func NormalizeContentType(contentType string) string {
	mediaType := contentType
	if idx := strings.IndexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	slash := strings.IndexByte(mediaType, '/')
	if slash < 0 {
		return mediaType
	}
	subtype := mediaType[slash+1:]
	if plus := strings.LastIndexByte(subtype, '+'); plus >= 0 && plus < len(subtype)-1 {
		return mediaType[:slash+1] + subtype[plus+1:]
	}
	return mediaType
}
