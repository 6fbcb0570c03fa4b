package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitekit-api/config"
	"sitekit-api/internal/model"
	"sitekit-api/internal/search"
	pkgLog "sitekit-api/pkg/log"
)

func writePage(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", `<html><head><title>Acme Barbers</title>
		<script>var hidden = "haircut";</script></head>
		<body><h1>Welcome</h1><p>Book a haircut with our team today.</p></body></html>`)
	writePage(t, dir, "about.html", `<html><head><title>About Us</title></head>
		<body><p>We have been cutting hair since 1999.</p></body></html>`)

	uc := New(pkgLog.NewNoop(), config.SiteConfig{StaticDir: dir})

	results, err := uc.Search(context.Background(), model.Scope{SiteKey: "acme"}, "HAIRCUT")
	require.NoError(t, err)

	require.Len(t, results, 1, "script content must not match")
	assert.Equal(t, "index.html", results[0].Page)
	assert.Equal(t, "Acme Barbers", results[0].Title)
	assert.Contains(t, results[0].Snippet, "haircut")
}

func TestSearchNoMatches(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", `<html><head><title>Home</title></head><body>nothing here</body></html>`)

	uc := New(pkgLog.NewNoop(), config.SiteConfig{StaticDir: dir})

	results, err := uc.Search(context.Background(), model.Scope{SiteKey: "acme"}, "plumbing")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmptyQuery(t *testing.T) {
	uc := New(pkgLog.NewNoop(), config.SiteConfig{StaticDir: t.TempDir()})

	_, err := uc.Search(context.Background(), model.Scope{SiteKey: "acme"}, "   ")
	assert.ErrorIs(t, err, search.ErrEmptyQuery)
}

func TestSnippetBoundaries(t *testing.T) {
	text := []rune("alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu nu xi omicron pi rho sigma tau upsilon phi chi psi omega " +
		"alpha beta gamma delta epsilon zeta eta theta iota kappa")

	got := snippet(text, 130, 5)
	assert.True(t, len(got) <= len(string(text)))
	assert.Contains(t, got, "...")
}

func TestSearchNonASCII(t *testing.T) {
	dir := t.TempDir()
	padding := strings.Repeat("pâtisserie gâteaux éclairs müsli ", 10)
	writePage(t, dir, "menu.html", `<html><head><title>Café Menü</title></head>
		<body><p>`+padding+`crème brûlée du jour `+padding+`</p></body></html>`)

	uc := New(pkgLog.NewNoop(), config.SiteConfig{StaticDir: dir})

	results, err := uc.Search(context.Background(), model.Scope{SiteKey: "acme"}, "CRÈME BRÛLÉE")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Café Menü", results[0].Title)
	assert.True(t, utf8.ValidString(results[0].Snippet), "snippet must not split a multi-byte character")
	assert.Contains(t, results[0].Snippet, "crème brûlée")
}
