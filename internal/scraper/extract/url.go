package extract

import (
	"net/url"
	"strings"
)

// AbsoluteURL resolves href against base. Already-absolute links pass
// through; unparseable input is returned as-is.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return href
	}

	parsedBase, err := url.Parse(base)
	if err != nil {
		return href
	}

	parsedHref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return parsedBase.ResolveReference(parsedHref).String()
}
