package extract

import (
	"github.com/PuerkitoBio/goquery"
)

// Containers returns the first selection in the cascade that matches at
// least one element, or nil when every selector comes up empty.
func Containers(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, selector := range selectors {
		if found := doc.Find(selector); found.Length() > 0 {
			return found
		}
	}

	return nil
}

// FirstText returns the normalized text of the first selector that matches
// an element with non-empty text.
func FirstText(root *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		if text := NormalizeSpace(root.Find(selector).First().Text()); text != "" {
			return text
		}
	}

	return ""
}

// FirstAttr returns the attr value of the first selector that matches an
// element carrying a non-empty attr.
func FirstAttr(root *goquery.Selection, selectors []string, attr string) string {
	for _, selector := range selectors {
		found := root.Find(selector).First()
		if value, ok := found.Attr(attr); ok && value != "" {
			return value
		}
	}

	return ""
}

// ImageSource returns an image's src, falling back to its lazy-load
// attribute when the page defers image loading.
func ImageSource(img *goquery.Selection) string {
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return src
	}

	return ""
}

// FirstImage returns the source of the first image found under root.
func FirstImage(root *goquery.Selection) string {
	return ImageSource(root.Find("img").First())
}

// GalleryImages collects image sources from the first gallery selector that
// matches anything, resolved against baseURL.
func GalleryImages(doc *goquery.Document, selectors []string, baseURL string) []string {
	var images []string

	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, img *goquery.Selection) {
			if src := ImageSource(img); src != "" {
				images = append(images, AbsoluteURL(baseURL, src))
			}
		})
		if len(images) > 0 {
			break
		}
	}

	return images
}
