// Package normalizer turns raw bank notification bodies (quoted-printable
// folded, HTML-wrapped, or plain) into clean newline-delimited text ready
// for field extraction.
package normalizer

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
)

var (
	softBreakRe = regexp.MustCompile(`=\r?\n`)
	hexEscapeRe = regexp.MustCompile(`=([0-9A-F]{2})`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

// quotedPrintable maps the escapes this bank's mailer actually emits.
// The generic =XX pass below catches anything else.
var quotedPrintable = []struct{ encoded, decoded string }{
	{"=3D", "="},
	{"=20", " "},
	{"=0D", "\r"},
	{"=0A", "\n"},
	{"=09", "\t"},
	{"=22", `"`},
	{"=27", "'"},
	{"=3C", "<"},
	{"=3E", ">"},
	{"=26", "&"},
}

// Clean normalizes a raw email body to plain text. The steps run in a fixed
// order: quoted-printable unfolding and decoding, HTML entity decoding, HTML
// tag stripping (img/style/script subtrees dropped, <br> as line break),
// per-line whitespace collapsing, footer removal, blank-line collapsing.
// Clean is total: malformed input degrades, it never fails.
func Clean(raw string) string {
	// Soft line breaks: '=' immediately before a newline folds the line.
	text := softBreakRe.ReplaceAllString(raw, "")

	for _, qp := range quotedPrintable {
		text = strings.ReplaceAll(text, qp.encoded, qp.decoded)
	}

	// Any remaining =XX hex escape decodes to its byte; an undecodable
	// sequence passes through unchanged.
	text = hexEscapeRe.ReplaceAllStringFunc(text, func(m string) string {
		v, err := strconv.ParseUint(m[1:], 16, 8)
		if err != nil {
			return m
		}
		return string(rune(v))
	})

	text = html.UnescapeString(text)
	text = stripHTML(text)

	lines := make([]string, 0, 32)
	for _, line := range strings.Split(text, "\n") {
		line = spaceRunRe.ReplaceAllString(strings.TrimSpace(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}

	// Footer heuristic: the bank's signature occupies the last two lines.
	// Known to truncate very short notifications; kept as-is.
	if len(lines) > 2 {
		lines = lines[:len(lines)-2]
	}

	text = strings.Join(lines, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// stripHTML extracts visible text from markup, separating text nodes by
// newlines. Non-HTML input passes through with tags absent anyway.
func stripHTML(text string) string {
	doc, err := xhtml.Parse(strings.NewReader(text))
	if err != nil {
		return text
	}

	var parts []string
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode {
			switch n.Data {
			case "img", "style", "script":
				return
			case "br":
				parts = append(parts, "\n")
				return
			}
		}
		if n.Type == xhtml.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.Join(parts, "\n")
}
