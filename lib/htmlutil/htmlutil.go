package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText normalizes scraped text: non-printable runes are dropped,
// surrounding whitespace is trimmed and inner whitespace runs collapse to a
// single space.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// attributes a lazy-loaded image may carry its real source under, in
// priority order
var imageSourceAttrs = []string{"src", "data-src", "data-lazy-src", "data-original"}

// ImageSource resolves the source URL of an image element, accounting for
// lazy-loading attributes.
func ImageSource(img *goquery.Selection) (string, bool) {
	for _, attr := range imageSourceAttrs {
		src, ok := img.Attr(attr)
		if ok && src != "" {
			return src, true
		}
	}
	return "", false
}
