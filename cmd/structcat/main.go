// Command structcat loads a tagged-document fixture and prints its
// structure as plain text, markdown, HTML, an accessibility report, or
// reading statistics.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/taggedpdf/structview/check"
	"github.com/taggedpdf/structview/export"
	"github.com/taggedpdf/structview/memdoc"
	"github.com/taggedpdf/structview/observability"
	"github.com/taggedpdf/structview/render"
	"github.com/taggedpdf/structview/stats"
)

func main() {
	format := flag.String("format", "text", "output format: text, markdown, html, report, stats")
	verbose := flag.Bool("verbose", false, "log progress to stderr")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-format text|markdown|html|report|stats] <fixture.json>\n", os.Args[0])
		os.Exit(1)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	doc, err := memdoc.Load(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fixture: %v\n", err)
		os.Exit(1)
	}

	var logger observability.Logger = observability.NopLogger{}
	if *verbose {
		logger = observability.TextLogger(os.Stderr)
	}

	switch *format {
	case "text":
		err = render.Text(doc, os.Stdout, render.WithLogger(logger))
	case "markdown":
		err = export.Markdown(doc, os.Stdout)
	case "html":
		err = export.HTML(doc, os.Stdout)
	case "report":
		report := check.New(check.WithLogger(logger)).Check(doc)
		if report.OK() {
			fmt.Println("no violations")
			return
		}
		for _, v := range report.Violations {
			fmt.Printf("%s: %s (%s)\n", v.Code, v.Description, v.Location)
		}
		os.Exit(2)
	case "stats":
		s := stats.ForDocument(doc)
		fmt.Printf("spans=%d words=%d graphemes=%d\n", s.Spans, s.Words, s.Graphemes)
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", *format)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
}
