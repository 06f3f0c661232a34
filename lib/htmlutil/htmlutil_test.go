package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, fragment string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "Tunnel Fort", CleanText("  Tunnel \n\t Fort  "))
	require.Equal(t, "a b", CleanText("a\x00  \n b"))
	require.Equal(t, "", CleanText(" \t\n"))
}

func TestGetText(t *testing.T) {
	doc := parse(t, `<div>Guide <span>A</span></div>`)
	require.Equal(t, "Guide A", GetText(doc.Find("div").Nodes[0]))
}

func TestImageSource(t *testing.T) {
	testCases := []struct {
		html     string
		expected string
		ok       bool
	}{
		{`<img src="/a.jpg">`, "/a.jpg", true},
		{`<img data-src="/lazy.jpg">`, "/lazy.jpg", true},
		{`<img src="/a.jpg" data-src="/lazy.jpg">`, "/a.jpg", true},
		{`<img data-lazy-src="/b.jpg" data-original="/c.jpg">`, "/b.jpg", true},
		{`<img alt="no source">`, "", false},
	}

	for _, test := range testCases {
		doc := parse(t, test.html)
		src, ok := ImageSource(doc.Find("img"))
		require.Equal(t, test.ok, ok, test.html)
		require.Equal(t, test.expected, src, test.html)
	}
}
