package templates

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/a-h/templ"
)

// Page names every template set must provide.
const (
	Index    = "index.html"
	NotFound = "404.html"
)

var (
	ErrParseTemplates   = errors.New("failed to parse templates")
	ErrMissingTemplate  = errors.New("required template is missing")
	ErrTemplateNotFound = errors.New("template not found")
)

//go:embed html/*.html
var embedded embed.FS

// Default returns the filesystem holding the built-in pages.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "html")
	if err != nil {
		panic(err)
	}
	return sub
}

// Set is a parsed, immutable collection of named pages. It is safe for
// concurrent use.
type Set struct {
	pages map[string]*template.Template
}

// New parses every *.html file in fsys. Files that only define blocks, such
// as a shared layout, are available to all pages. Index and NotFound must be
// present.
func New(fsys fs.FS) (*Set, error) {
	names, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseTemplates, err)
	}

	base, err := template.New("").ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseTemplates, err)
	}

	set := &Set{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		set.pages[name] = base.Lookup(name)
	}

	for _, required := range []string{Index, NotFound} {
		if set.pages[required] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, required)
		}
	}

	return set, nil
}

// Component returns the named page bound to data.
func (s *Set) Component(name string, data any) (templ.Component, error) {
	page, ok := s.pages[name]
	if !ok || page == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return templ.FromGoHTML(page, data), nil
}

// Has reports whether the set contains the named page.
func (s *Set) Has(name string) bool {
	return s.pages[name] != nil
}
