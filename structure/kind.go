package structure

import "fmt"

// Role is the raw structure type tag of a node, as defined by the external
// tree format. The set is closed and versioned with that format.
type Role int

const (
	RoleUnknown Role = iota
	RoleMCID
	RoleOBJR
	RoleDocument
	RolePart
	RoleArt
	RoleSect
	RoleDiv
	RoleSpan
	RoleQuote
	RoleNote
	RoleReference
	RoleBibEntry
	RoleCode
	RoleLink
	RoleAnnot
	RoleRuby
	RoleWarichu
	RoleBlockQuote
	RoleCaption
	RoleNonStruct
	RoleTOC
	RoleTOCI
	RoleIndex
	RolePrivate
	RoleP
	RoleH
	RoleH1
	RoleH2
	RoleH3
	RoleH4
	RoleH5
	RoleH6
	RoleL
	RoleLI
	RoleLbl
	RoleLBody
	RoleTable
	RoleTR
	RoleTH
	RoleTD
	RoleTHead
	RoleTFoot
	RoleTBody
	RoleFigure
	RoleFormula
	RoleForm
)

var roleNames = map[Role]string{
	RoleUnknown:    "Unknown",
	RoleMCID:       "MCID",
	RoleOBJR:       "OBJR",
	RoleDocument:   "Document",
	RolePart:       "Part",
	RoleArt:        "Art",
	RoleSect:       "Sect",
	RoleDiv:        "Div",
	RoleSpan:       "Span",
	RoleQuote:      "Quote",
	RoleNote:       "Note",
	RoleReference:  "Reference",
	RoleBibEntry:   "BibEntry",
	RoleCode:       "Code",
	RoleLink:       "Link",
	RoleAnnot:      "Annot",
	RoleRuby:       "Ruby",
	RoleWarichu:    "Warichu",
	RoleBlockQuote: "BlockQuote",
	RoleCaption:    "Caption",
	RoleNonStruct:  "NonStruct",
	RoleTOC:        "TOC",
	RoleTOCI:       "TOCI",
	RoleIndex:      "Index",
	RolePrivate:    "Private",
	RoleP:          "P",
	RoleH:          "H",
	RoleH1:         "H1",
	RoleH2:         "H2",
	RoleH3:         "H3",
	RoleH4:         "H4",
	RoleH5:         "H5",
	RoleH6:         "H6",
	RoleL:          "L",
	RoleLI:         "LI",
	RoleLbl:        "Lbl",
	RoleLBody:      "LBody",
	RoleTable:      "Table",
	RoleTR:         "TR",
	RoleTH:         "TH",
	RoleTD:         "TD",
	RoleTHead:      "THead",
	RoleTFoot:      "TFoot",
	RoleTBody:      "TBody",
	RoleFigure:     "Figure",
	RoleFormula:    "Formula",
	RoleForm:       "Form",
}

var rolesByName = func() map[string]Role {
	m := make(map[string]Role, len(roleNames))
	for r, name := range roleNames {
		m[name] = r
	}
	return m
}()

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// RoleFromName returns the role with the given raw tag name.
func RoleFromName(name string) (Role, bool) {
	r, ok := rolesByName[name]
	return r, ok
}

// Kind is the semantic classification of a structure element.
type Kind int

const (
	KindUnknown Kind = iota
	KindContent
	KindObjectReference
	KindDocument
	KindPart
	KindArticle
	KindSection
	KindDiv
	KindSpan
	KindQuote
	KindNote
	KindReference
	KindBibEntry
	KindCode
	KindLink
	KindAnnot
	KindRuby
	KindWarichu
	KindBlockQuote
	KindCaption
	KindNonStruct
	KindTOC
	KindTOCItem
	KindIndex
	KindPrivate
	KindParagraph
	KindHeading
	KindHeading1
	KindHeading2
	KindHeading3
	KindHeading4
	KindHeading5
	KindHeading6
	KindList
	KindListItem
	KindListLabel
	KindListBody
	KindTable
	KindTableRow
	KindTableHeading
	KindTableData
	KindTableHeader
	KindTableFooter
	KindTableBody
	KindFigure
	KindFormula
	KindForm
)

var kindNames = map[Kind]string{
	KindUnknown:         "Unknown",
	KindContent:         "Content",
	KindObjectReference: "ObjectReference",
	KindDocument:        "Document",
	KindPart:            "Part",
	KindArticle:         "Article",
	KindSection:         "Section",
	KindDiv:             "Div",
	KindSpan:            "Span",
	KindQuote:           "Quote",
	KindNote:            "Note",
	KindReference:       "Reference",
	KindBibEntry:        "BibEntry",
	KindCode:            "Code",
	KindLink:            "Link",
	KindAnnot:           "Annot",
	KindRuby:            "Ruby",
	KindWarichu:         "Warichu",
	KindBlockQuote:      "BlockQuote",
	KindCaption:         "Caption",
	KindNonStruct:       "NonStruct",
	KindTOC:             "TOC",
	KindTOCItem:         "TOCItem",
	KindIndex:           "Index",
	KindPrivate:         "Private",
	KindParagraph:       "Paragraph",
	KindHeading:         "Heading",
	KindHeading1:        "Heading1",
	KindHeading2:        "Heading2",
	KindHeading3:        "Heading3",
	KindHeading4:        "Heading4",
	KindHeading5:        "Heading5",
	KindHeading6:        "Heading6",
	KindList:            "List",
	KindListItem:        "ListItem",
	KindListLabel:       "ListLabel",
	KindListBody:        "ListBody",
	KindTable:           "Table",
	KindTableRow:        "TableRow",
	KindTableHeading:    "TableHeading",
	KindTableData:       "TableData",
	KindTableHeader:     "TableHeader",
	KindTableFooter:     "TableFooter",
	KindTableBody:       "TableBody",
	KindFigure:          "Figure",
	KindFormula:         "Formula",
	KindForm:            "Form",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// HeadingLevel returns the level of a heading kind (1 for both KindHeading
// and KindHeading1), or 0 when k is not a heading.
func (k Kind) HeadingLevel() int {
	switch k {
	case KindHeading, KindHeading1:
		return 1
	case KindHeading2:
		return 2
	case KindHeading3:
		return 3
	case KindHeading4:
		return 4
	case KindHeading5:
		return 5
	case KindHeading6:
		return 6
	}
	return 0
}

// Classify maps a raw role tag to its semantic kind. It is total over the
// closed role set; a role outside it means the tree format has grown tags
// this classifier does not know, and Classify panics rather than folding
// the tag into KindUnknown alongside legitimately unknown elements.
func Classify(role Role) Kind {
	switch role {
	case RoleUnknown:
		return KindUnknown
	case RoleMCID:
		return KindContent
	case RoleOBJR:
		return KindObjectReference
	case RoleDocument:
		return KindDocument
	case RolePart:
		return KindPart
	case RoleArt:
		return KindArticle
	case RoleSect:
		return KindSection
	case RoleDiv:
		return KindDiv
	case RoleSpan:
		return KindSpan
	case RoleQuote:
		return KindQuote
	case RoleNote:
		return KindNote
	case RoleReference:
		return KindReference
	case RoleBibEntry:
		return KindBibEntry
	case RoleCode:
		return KindCode
	case RoleLink:
		return KindLink
	case RoleAnnot:
		return KindAnnot
	case RoleRuby:
		return KindRuby
	case RoleWarichu:
		return KindWarichu
	case RoleBlockQuote:
		return KindBlockQuote
	case RoleCaption:
		return KindCaption
	case RoleNonStruct:
		return KindNonStruct
	case RoleTOC:
		return KindTOC
	case RoleTOCI:
		return KindTOCItem
	case RoleIndex:
		return KindIndex
	case RolePrivate:
		return KindPrivate
	case RoleP:
		return KindParagraph
	case RoleH:
		return KindHeading
	case RoleH1:
		return KindHeading1
	case RoleH2:
		return KindHeading2
	case RoleH3:
		return KindHeading3
	case RoleH4:
		return KindHeading4
	case RoleH5:
		return KindHeading5
	case RoleH6:
		return KindHeading6
	case RoleL:
		return KindList
	case RoleLI:
		return KindListItem
	case RoleLbl:
		return KindListLabel
	case RoleLBody:
		return KindListBody
	case RoleTable:
		return KindTable
	case RoleTR:
		return KindTableRow
	case RoleTH:
		return KindTableHeading
	case RoleTD:
		return KindTableData
	case RoleTHead:
		return KindTableHeader
	case RoleTFoot:
		return KindTableFooter
	case RoleTBody:
		return KindTableBody
	case RoleFigure:
		return KindFigure
	case RoleFormula:
		return KindFormula
	case RoleForm:
		return KindForm
	default:
		panic(fmt.Sprintf("structure: role %d outside the known tag set", int(role)))
	}
}
