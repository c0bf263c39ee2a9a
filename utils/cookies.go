package utils

import (
	"net/http"
	"net/url"
)

// CSRFToken returns the URL-decoded value of the cookie with exactly the
// given name, or the empty string when no such cookie exists. The store's
// cart and payment endpoints reject mutating requests without it.
func CSRFToken(cookies []*http.Cookie, name string) string {
	for _, ck := range cookies {
		if ck.Name != name {
			continue
		}
		if decoded, err := url.QueryUnescape(ck.Value); err == nil {
			return decoded
		}
		return ck.Value
	}
	return ""
}
