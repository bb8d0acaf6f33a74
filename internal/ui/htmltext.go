package ui

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// blockTags start a new line when opened or closed
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "header": true, "footer": true,
	"table": true, "ul": true, "ol": true, "hr": true, "blockquote": true,
}

// HTMLToText flattens an HTML document to readable text for the pager.
// Script and style bodies are dropped and whitespace outside pre blocks is
// collapsed.
func HTMLToText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	var out bytes.Buffer
	skip := 0
	pre := 0

	newline := func() {
		if out.Len() > 0 && !bytes.HasSuffix(out.Bytes(), []byte("\n")) {
			out.WriteByte('\n')
		}
	}

	for {
		tok := z.Next()
		switch tok {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return tidy(out.String()), nil
			}
			return "", z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch tag {
			case "script", "style", "head", "noscript":
				if tok == html.StartTagToken {
					skip++
				}
			case "pre":
				if tok == html.StartTagToken {
					pre++
				}
			}
			if blockTags[tag] {
				newline()
			}
			if tag == "li" {
				out.WriteString("• ")
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			switch tag {
			case "script", "style", "head", "noscript":
				if skip > 0 {
					skip--
				}
			case "pre":
				if pre > 0 {
					pre--
				}
			}
			if blockTags[tag] {
				newline()
			}
			if tag == "td" || tag == "th" {
				out.WriteString("  ")
			}

		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := string(z.Text())
			if pre > 0 {
				out.WriteString(text)
				continue
			}
			text = strings.Join(strings.Fields(text), " ")
			if text == "" {
				continue
			}
			if out.Len() > 0 {
				last := out.Bytes()[out.Len()-1]
				if last != '\n' && last != ' ' {
					out.WriteByte(' ')
				}
			}
			out.WriteString(text)
		}
	}
}

// tidy trims trailing spaces and squeezes runs of blank lines
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
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
	return strings.TrimSpace(strings.Join(out, "\n")) + "\n"
}
