package memdoc

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taggedpdf/structview/structure"
)

// Fixture format: a JSON document description.
//
//	{
//	  "pages": 2,
//	  "structure": [
//	    {"role": "Document", "kids": [
//	      {"role": "H1", "page": 1, "kids": [{"role": "MCID", "ops": [{"char": "Title"}]}]},
//	      {"role": "P", "text": "Body text."}
//	    ]}
//	  ]
//	}
//
// "pages": N maps references {Num: 1..N, Gen: 0} to page numbers 1..N, and
// a node's "page" field names one of them. "text" is shorthand for a single
// content child whose ops are the characters of the string.

type fixtureDocument struct {
	Pages     int           `json:"pages,omitempty"`
	Structure []fixtureNode `json:"structure"`
}

type fixtureNode struct {
	Role     string        `json:"role"`
	Page     int           `json:"page,omitempty"`
	ID       string        `json:"id,omitempty"`
	Title    string        `json:"title,omitempty"`
	Lang     string        `json:"lang,omitempty"`
	Alt      string        `json:"alt,omitempty"`
	Actual   string        `json:"actualText,omitempty"`
	Expanded string        `json:"expanded,omitempty"`
	Text     string        `json:"text,omitempty"`
	Ops      []fixtureOp   `json:"ops,omitempty"`
	Kids     []fixtureNode `json:"kids,omitempty"`
}

type fixtureOp struct {
	Char  string   `json:"char,omitempty"`
	Style []string `json:"style,omitempty"`
	Color string   `json:"color,omitempty"`
	Font  *string  `json:"font,omitempty"`
}

// Load reads a JSON fixture and builds the in-memory document it describes.
func Load(r io.Reader) (*Document, error) {
	var fix fixtureDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fix); err != nil {
		return nil, fmt.Errorf("memdoc: decode fixture: %w", err)
	}

	doc := New()
	for i := 1; i <= fix.Pages; i++ {
		doc.MapPage(structure.PageRef{Num: i}, i)
	}
	for _, fn := range fix.Structure {
		node, err := buildNode(fn, fix.Pages)
		if err != nil {
			return nil, err
		}
		doc.AddRoot(node)
	}
	return doc, nil
}

func buildNode(fn fixtureNode, pages int) (*Node, error) {
	role, ok := structure.RoleFromName(fn.Role)
	if !ok {
		return nil, fmt.Errorf("memdoc: unknown role %q", fn.Role)
	}

	node := NewNode(role)
	if fn.Page != 0 {
		if fn.Page < 1 || fn.Page > pages {
			return nil, fmt.Errorf("memdoc: page %d out of range (document has %d)", fn.Page, pages)
		}
		node.SetPage(structure.PageRef{Num: fn.Page})
	}
	if fn.ID != "" {
		node.SetID(fn.ID)
	}
	if fn.Title != "" {
		node.SetTitle(fn.Title)
	}
	if fn.Lang != "" {
		node.SetLanguage(fn.Lang)
	}
	if fn.Alt != "" {
		node.SetAltText(fn.Alt)
	}
	if fn.Actual != "" {
		node.SetActualText(fn.Actual)
	}
	if fn.Expanded != "" {
		node.SetExpandedAbbr(fn.Expanded)
	}

	if len(fn.Ops) > 0 {
		if role != structure.RoleMCID {
			return nil, fmt.Errorf("memdoc: ops on non-content role %q", fn.Role)
		}
		for _, fo := range fn.Ops {
			ops, err := buildOps(fo)
			if err != nil {
				return nil, err
			}
			node.ops = append(node.ops, ops...)
		}
	}

	if fn.Text != "" {
		node.Append(Text(fn.Text))
	}
	for _, kid := range fn.Kids {
		child, err := buildNode(kid, pages)
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	return node, nil
}

func buildOps(fo fixtureOp) ([]structure.MCOp, error) {
	set := 0
	if fo.Char != "" {
		set++
	}
	if fo.Style != nil {
		set++
	}
	if fo.Color != "" {
		set++
	}
	if fo.Font != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("memdoc: op must set exactly one of char/style/color/font")
	}

	switch {
	case fo.Char != "":
		ops := make([]structure.MCOp, 0, len(fo.Char))
		for _, r := range fo.Char {
			ops = append(ops, structure.CharOp(r))
		}
		return ops, nil

	case fo.Style != nil:
		var flags structure.StyleFlags
		for _, name := range fo.Style {
			switch name {
			case "bold":
				flags |= structure.StyleBold
			case "italic":
				flags |= structure.StyleItalic
			case "fixed":
				flags |= structure.StyleFixed
			default:
				return nil, fmt.Errorf("memdoc: unknown style flag %q", name)
			}
		}
		return []structure.MCOp{structure.StyleOp(flags)}, nil

	case fo.Color != "":
		if fo.Color == "none" {
			return []structure.MCOp{structure.ColorOp(structure.RGB{})}, nil
		}
		c, err := parseColor(fo.Color)
		if err != nil {
			return nil, err
		}
		return []structure.MCOp{structure.ColorOp(c)}, nil

	default:
		return []structure.MCOp{structure.FontOp(*fo.Font)}, nil
	}
}

func parseColor(s string) (structure.RGB, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return structure.RGB{}, fmt.Errorf("memdoc: color %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return structure.RGB{}, fmt.Errorf("memdoc: color %q is not #rrggbb", s)
	}
	return structure.RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
