// Package templates holds the HTML pages of the service.
//
// Pages are html/template files. New parses a filesystem of *.html files and
// Set.Component exposes a page as a templ.Component, so handlers render them
// through handler.Templ like any other component. The built-in pages are
// embedded and returned by Default; a directory on disk can replace them
// through os.DirFS.
package templates
