package lib

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// EncodeDataURI embeds raw bytes as a self-contained data URI.
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsDataURI reports whether s is a base64 image data URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/") && strings.Contains(s, ";base64,")
}

// IsImageRef accepts what the image storage drivers hand out: an inline data URI,
// a site-local path or an absolute http(s) URL.
func IsImageRef(s string) bool {
	if IsDataURI(s) {
		return true
	}
	if strings.HasPrefix(s, "/") {
		return !strings.HasPrefix(s, "//") && !strings.HasPrefix(s, "/\\")
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
