package structure

import "testing"

// classifyTable covers every role in the closed tag set.
var classifyTable = []struct {
	role Role
	kind Kind
}{
	{RoleUnknown, KindUnknown},
	{RoleMCID, KindContent},
	{RoleOBJR, KindObjectReference},
	{RoleDocument, KindDocument},
	{RolePart, KindPart},
	{RoleArt, KindArticle},
	{RoleSect, KindSection},
	{RoleDiv, KindDiv},
	{RoleSpan, KindSpan},
	{RoleQuote, KindQuote},
	{RoleNote, KindNote},
	{RoleReference, KindReference},
	{RoleBibEntry, KindBibEntry},
	{RoleCode, KindCode},
	{RoleLink, KindLink},
	{RoleAnnot, KindAnnot},
	{RoleRuby, KindRuby},
	{RoleWarichu, KindWarichu},
	{RoleBlockQuote, KindBlockQuote},
	{RoleCaption, KindCaption},
	{RoleNonStruct, KindNonStruct},
	{RoleTOC, KindTOC},
	{RoleTOCI, KindTOCItem},
	{RoleIndex, KindIndex},
	{RolePrivate, KindPrivate},
	{RoleP, KindParagraph},
	{RoleH, KindHeading},
	{RoleH1, KindHeading1},
	{RoleH2, KindHeading2},
	{RoleH3, KindHeading3},
	{RoleH4, KindHeading4},
	{RoleH5, KindHeading5},
	{RoleH6, KindHeading6},
	{RoleL, KindList},
	{RoleLI, KindListItem},
	{RoleLbl, KindListLabel},
	{RoleLBody, KindListBody},
	{RoleTable, KindTable},
	{RoleTR, KindTableRow},
	{RoleTH, KindTableHeading},
	{RoleTD, KindTableData},
	{RoleTHead, KindTableHeader},
	{RoleTFoot, KindTableFooter},
	{RoleTBody, KindTableBody},
	{RoleFigure, KindFigure},
	{RoleFormula, KindFormula},
	{RoleForm, KindForm},
}

func TestClassifyExhaustive(t *testing.T) {
	seen := make(map[Kind]Role)
	for _, tc := range classifyTable {
		got := Classify(tc.role)
		if got != tc.kind {
			t.Errorf("Classify(%s) = %s, want %s", tc.role, got, tc.kind)
		}
		if again := Classify(tc.role); again != got {
			t.Errorf("Classify(%s) not deterministic: %s then %s", tc.role, got, again)
		}
		if prev, dup := seen[got]; dup {
			t.Errorf("roles %s and %s both map to %s", prev, tc.role, got)
		}
		seen[got] = tc.role
	}
	if len(seen) != len(classifyTable) {
		t.Errorf("expected %d distinct kinds, got %d", len(classifyTable), len(seen))
	}
}

func TestClassifyUnknownRolePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for role outside the known set")
		}
	}()
	Classify(Role(9999))
}

func TestRoleNamesRoundTrip(t *testing.T) {
	for _, tc := range classifyTable {
		name := tc.role.String()
		back, ok := RoleFromName(name)
		if !ok || back != tc.role {
			t.Errorf("RoleFromName(%q) = %v, %v; want %v", name, back, ok, tc.role)
		}
	}
	if _, ok := RoleFromName("NoSuchRole"); ok {
		t.Error("RoleFromName accepted an unknown name")
	}
}

func TestHeadingLevel(t *testing.T) {
	cases := []struct {
		kind  Kind
		level int
	}{
		{KindHeading, 1},
		{KindHeading1, 1},
		{KindHeading2, 2},
		{KindHeading6, 6},
		{KindParagraph, 0},
		{KindTable, 0},
	}
	for _, tc := range cases {
		if got := tc.kind.HeadingLevel(); got != tc.level {
			t.Errorf("%s.HeadingLevel() = %d, want %d", tc.kind, got, tc.level)
		}
	}
}
