package xml

import (
	"testing"
)

func TestRunBuild(t *testing.T) {
	tests := []struct {
		name string
		run  Run
		want string
	}{
		{
			name: "empty",
			run:  NewRun(),
			want: `<w:r><w:rPr></w:rPr></w:r>`,
		},
		{
			name: "text keeps whitespace",
			run:  NewRun().AddText(" a "),
			want: `<w:r><w:rPr></w:rPr><w:t xml:space="preserve"> a </w:t></w:r>`,
		},
		{
			name: "text is escaped",
			run:  NewRun().AddText("a < b & c > d"),
			want: `<w:r><w:rPr></w:rPr><w:t xml:space="preserve">a &lt; b &amp; c &gt; d</w:t></w:r>`,
		},
		{
			name: "tab and breaks",
			run:  NewRun().AddTab().AddBreak(BreakPage).AddBreak(BreakLine).AddBreak(BreakColumn),
			want: `<w:r><w:rPr></w:rPr><w:tab/><w:br w:type="page"/><w:br/><w:br w:type="column"/></w:r>`,
		},
		{
			name: "formatting",
			run:  NewRun().Bold().Underline("single").AddText("x"),
			want: `<w:r><w:rPr><w:b/><w:bCs/><w:u w:val="single"/></w:rPr><w:t xml:space="preserve">x</w:t></w:r>`,
		},
		{
			name: "dirty field char",
			run:  NewRun().AddFieldChar(FieldCharBegin, true),
			want: `<w:r><w:rPr></w:rPr><w:fldChar w:fldCharType="begin" w:dirty="true"/></w:r>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.run.Build()
			assertMarkup(t, tt.want, got)
			checkBalanced(t, got)
		})
	}
}

func TestRunText(t *testing.T) {
	r := NewRun().AddText("a").AddTab().AddText("b").AddBreak(BreakLine).AddInstrText(FieldPage)
	if got, want := r.Text(), "a\tb\n"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if got := len(r.Children()); got != 5 {
		t.Errorf("len(Children()) = %d, want 5", got)
	}
}

func TestParagraphBuild(t *testing.T) {
	tests := []struct {
		name string
		para Paragraph
		want string
	}{
		{
			name: "empty",
			para: NewParagraph(),
			want: `<w:p>` + emptyParagraphProperty + `</w:p>`,
		},
		{
			name: "with id",
			para: NewParagraph().ID("1A2B3C4D"),
			want: `<w:p w14:paraId="1A2B3C4D">` + emptyParagraphProperty + `</w:p>`,
		},
		{
			name: "runs in order",
			para: NewParagraph().AddRun(NewRun().AddText("Hello")).AddRun(NewRun().Italic().AddText("World")),
			want: `<w:p>` + emptyParagraphProperty +
				`<w:r><w:rPr></w:rPr><w:t xml:space="preserve">Hello</w:t></w:r>` +
				`<w:r><w:rPr><w:i/><w:iCs/></w:rPr><w:t xml:space="preserve">World</w:t></w:r></w:p>`,
		},
		{
			name: "property shortcuts",
			para: NewParagraph().Style("Title").Align(AlignCenter).KeepNext().PageBreakBefore().
				SpacingBefore(0).SpacingAfter(200).IndentLeft(10).IndentRight(20),
			want: `<w:p><w:pPr><w:pStyle w:val="Title"/><w:keepNext/><w:pageBreakBefore/>` +
				`<w:spacing w:before="0" w:after="200"/><w:ind w:left="10" w:right="20"/>` +
				`<w:jc w:val="center"/><w:rPr></w:rPr></w:pPr></w:p>`,
		},
		{
			name: "framed",
			para: NewParagraph().Frame(NewFrameProperty().Wrap("none").HAnchor("margin")),
			want: `<w:p><w:pPr><w:framePr w:wrap="none" w:hAnchor="margin"/><w:rPr></w:rPr></w:pPr></w:p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.para.Build()
			assertMarkup(t, tt.want, got)
			checkBalanced(t, got)
		})
	}
}

func TestParagraphValueSemantics(t *testing.T) {
	base := NewParagraph().AddRun(NewRun().AddText("base"))
	a := base.AddRun(NewRun().AddText("a"))
	b := base.AddRun(NewRun().AddText("b"))

	if got := base.Text(); got != "base" {
		t.Errorf("base.Text() = %q, want %q", got, "base")
	}
	if got := a.Text(); got != "basea" {
		t.Errorf("a.Text() = %q, want %q", got, "basea")
	}
	if got := b.Text(); got != "baseb" {
		t.Errorf("b.Text() = %q, want %q", got, "baseb")
	}

	styled := base.Style("Quote")
	if string(base.Build()) == string(styled.Build()) {
		t.Error("Style() did not change the returned paragraph")
	}
	assertMarkup(t, `<w:p>`+emptyParagraphProperty+`<w:r><w:rPr></w:rPr><w:t xml:space="preserve">base</w:t></w:r></w:p>`, base.Build())

	runs := a.Runs()
	runs[0] = NewRun().AddText("changed")
	if got := a.Text(); got != "basea" {
		t.Errorf("mutating Runs() result changed paragraph: Text() = %q", got)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	doc := NewDocument().
		AddParagraph(NewParagraph().Style("Title").AddRun(NewRun().Bold().AddText("Report"))).
		AddTable(NewTable(NewTableRow(NewTableCell(), NewTableCell().Shading("EEEEEE"))).Grid(100, 200)).
		Section(DefaultSectionProperty())

	first := doc.Build()
	for i := 0; i < 5; i++ {
		if got := doc.Build(); string(got) != string(first) {
			t.Fatalf("Build() call %d differs from the first call", i+2)
		}
	}
}
