package usecase

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"sitekit-api/internal/model"
	"sitekit-api/internal/search"
)

const snippetRadius = 80

func (uc *usecase) Search(ctx context.Context, sc model.Scope, query string) ([]search.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, search.ErrEmptyQuery
	}
	needle := []rune(query)
	for i, r := range needle {
		needle[i] = unicode.ToLower(r)
	}

	results := make([]search.Result, 0)
	root := uc.cfg.StaticDir
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			uc.l.Warnf(ctx, "internal.search.usecase.Search.ReadFile %s: %v", path, err)
			return nil
		}

		title, text := extractText(string(raw))
		textRunes := []rune(text)
		idx := matchIndex(textRunes, needle)
		if idx < 0 {
			return nil
		}

		page, relErr := filepath.Rel(root, path)
		if relErr != nil {
			page = d.Name()
		}

		results = append(results, search.Result{
			Page:    filepath.ToSlash(page),
			Title:   title,
			Snippet: snippet(textRunes, idx, len(needle)),
		})
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.search.usecase.Search: %v", err)
		return nil, err
	}

	return results, nil
}

// extractText parses the document and returns its <title> plus the
// visible text with tags stripped and whitespace collapsed.
func extractText(doc string) (string, string) {
	node, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", ""
	}

	var title string
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if n.FirstChild != nil && title == "" {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	return title, strings.Join(strings.Fields(sb.String()), " ")
}

// matchIndex finds needle in text ignoring case and returns the rune
// index of the first match, or -1. needle must already be lowercased.
func matchIndex(text, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(text) {
		return -1
	}
	for i := 0; i+len(needle) <= len(text); i++ {
		match := true
		for j, r := range needle {
			if unicode.ToLower(text[i+j]) != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// snippet cuts a window of text around the match, trimmed to word
// boundaries with ellipses on clipped sides. Working in runes keeps the
// window from splitting a multi-byte character.
func snippet(text []rune, idx, matchLen int) string {
	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + matchLen + snippetRadius
	if end > len(text) {
		end = len(text)
	}

	out := string(text[start:end])
	if start > 0 {
		if cut := strings.IndexByte(out, ' '); cut >= 0 {
			out = out[cut+1:]
		}
		out = "..." + out
	}
	if end < len(text) {
		if cut := strings.LastIndexByte(out, ' '); cut >= 0 {
			out = out[:cut]
		}
		out = out + "..."
	}
	return out
}
