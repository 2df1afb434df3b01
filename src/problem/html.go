package problem

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// tagRe matches the markup problem statements are written in. Other
// angle-bracket spans such as "i<j and a[i]>a[j]" are plain text.
var tagRe = regexp.MustCompile(`(?i)</?(p|br|pre|code|div|span|ul|ol|li|strong|em|b|i|u|sup|sub|img|a|font|table|tr|td|th)(\s[^<>]*)?/?>`)

// PlainText flattens an HTML fragment into terminal text. Input without
// markup is returned unchanged.
func PlainText(input string) string {
	if !tagRe.MatchString(input) {
		return input
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var b strings.Builder
	extractText(node, &b)
	return collapseBlankLines(strings.TrimSpace(b.String()))
}

func extractText(node *html.Node, b *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "br", "p", "pre", "div":
			b.WriteRune('\n')
		case "li":
			b.WriteString("\n• ")
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, b)
	}

	if node.Type == html.ElementNode {
		switch node.Data {
		case "p", "pre", "div", "ul", "ol":
			b.WriteRune('\n')
		}
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := 0
	for _, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}
