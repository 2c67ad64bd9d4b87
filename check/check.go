// Package check audits a tagged document's structure tree for common
// accessibility defects: untagged documents, figures without alternate
// text, skipped heading levels, tables without header cells, and missing
// language declarations.
package check

import (
	"github.com/taggedpdf/structview/observability"
	"github.com/taggedpdf/structview/structure"
)

// Violation is one accessibility defect found in the document.
type Violation struct {
	Code        string
	Description string
	Location    string
}

// Report aggregates the violations found by a Checker.
type Report struct {
	Violations []Violation
}

// OK reports whether the audit found no violations.
func (r *Report) OK() bool { return len(r.Violations) == 0 }

func (r *Report) add(code, description, location string) {
	r.Violations = append(r.Violations, Violation{
		Code:        code,
		Description: description,
		Location:    location,
	})
}

type Option func(*Checker)

// WithLogger makes the checker log each violation as it is found.
func WithLogger(l observability.Logger) Option {
	return func(c *Checker) { c.log = l }
}

// Checker runs the accessibility audit. The zero value is not usable; use
// New.
type Checker struct {
	log observability.Logger
}

func New(opts ...Option) *Checker {
	c := &Checker{log: observability.NopLogger{}}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Check audits the document and returns the violations found.
func (c *Checker) Check(doc structure.Document) *Report {
	report := &Report{}

	it := structure.NewIter(doc)
	if it == nil {
		c.violation(report, "AC001", "document has no structure tree", "document")
		return report
	}

	if lang := rootLanguage(it.Copy()); lang == "" {
		c.violation(report, "AC002", "no language declared on any root element", "document")
	}

	w := &walker{checker: c, report: report}
	w.walk(it, "")
	return w.report
}

func (c *Checker) violation(r *Report, code, description, location string) {
	c.log.Warn("accessibility violation",
		observability.String("code", code),
		observability.String("location", location),
		observability.String("description", description))
	r.add(code, description, location)
}

func rootLanguage(it *structure.Iter) string {
	for {
		if lang, ok := it.Element().Language(); ok {
			return lang
		}
		if !it.Next() {
			return ""
		}
	}
}

// walker carries the heading-order state through the pre-order traversal.
type walker struct {
	checker     *Checker
	report      *Report
	lastHeading int
}

func (w *walker) walk(it *structure.Iter, path string) {
	for {
		el := it.Element()
		kind := el.Kind()
		location := joinPath(path, kind.String())

		w.checkElement(el, kind, location)

		descend := true
		if kind == structure.KindTable {
			w.checkTable(it, location)
			descend = false
		}
		if descend {
			if child := it.Child(); child != nil {
				w.walk(child, location)
			}
		}

		if !it.Next() {
			return
		}
	}
}

func (w *walker) checkElement(el *structure.Element, kind structure.Kind, location string) {
	if kind == structure.KindFigure {
		_, hasAlt := el.AltText()
		_, hasActual := el.ActualText()
		if !hasAlt && !hasActual {
			w.checker.violation(w.report, "AC003", "figure has neither alternate nor actual text", location)
		}
	}

	if level := kind.HeadingLevel(); level > 0 {
		if w.lastHeading > 0 && level > w.lastHeading+1 {
			w.checker.violation(w.report, "AC004", "heading level skipped", location)
		}
		w.lastHeading = level
	}
}

// checkTable verifies the table has at least one header cell, then walks
// its subtree with the usual element checks.
func (w *walker) checkTable(tableIt *structure.Iter, location string) {
	child := tableIt.Child()
	if child == nil || !hasHeaderCell(child) {
		w.checker.violation(w.report, "AC005", "table has no header cells", location)
	}
	if child != nil {
		w.walk(child, location)
	}
}

func hasHeaderCell(it *structure.Iter) bool {
	for {
		switch it.Element().Kind() {
		case structure.KindTableHeading:
			return true
		case structure.KindTableHeader:
			return true
		default:
			if child := it.Child(); child != nil && hasHeaderCell(child) {
				return true
			}
		}
		if !it.Next() {
			return false
		}
	}
}

func joinPath(path, kind string) string {
	if path == "" {
		return kind
	}
	return path + "/" + kind
}
