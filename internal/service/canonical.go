package service

import (
	"fmt"
	"net/url"
	"strconv"
)

// BuildCanonicalURL normalizes the pagination parameter on a category link so
// search engines index a single URL per logical page. The `page` query key is
// present iff page > 1; every other query parameter is round-tripped
// verbatim. An empty baseURL (category not loaded) yields an empty canonical.
func BuildCanonicalURL(baseURL string, page int) (string, error) {
	if baseURL == "" {
		return "", nil
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedURL, baseURL, err)
	}

	params, err := url.ParseQuery(parsed.RawQuery)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedURL, baseURL, err)
	}

	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	} else {
		params.Del("page")
	}

	parsed.RawQuery = params.Encode()
	return parsed.String(), nil
}
