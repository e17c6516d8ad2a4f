package boxes

import (
	"math"
	"testing"

	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/linebox"
	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/inlineflow/textgen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/basicfont"
)

var font10 = style.FontMetrics{Size: 10, Ascent: 8, Descent: 2, XHeight: 5}

func plain() style.Style {
	return style.Style{Font: font10}
}

func TestHalfLeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlineflow.boxes")
	defer teardown()
	//
	st := plain()
	st.LineHeight = 16
	root := NewRootBox(st)
	if root.HeightAboveBaseline() != 11 || root.DepthBelowBaseline() != 5 {
		t.Errorf("expected root extent 11/5, have %.2f/%.2f", root.HeightAboveBaseline(), root.DepthBelowBaseline())
	}
	st.LineHeight = 6 // negative leading
	box := NewInlineBox(element.New("span"), st, root)
	if box.HeightAboveBaseline() != 6 || box.DepthBelowBaseline() != 0 {
		t.Errorf("expected inline box extent 6/0, have %.2f/%.2f", box.HeightAboveBaseline(), box.DepthBelowBaseline())
	}
}

func TestVerticalOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlineflow.boxes")
	defer teardown()
	//
	root := NewRootBox(plain())
	cases := []struct {
		align  style.VerticalAlign
		length float64
		offset float64
	}{
		{style.AlignBaseline, 0, 0},
		{style.AlignLength, 3, -3},
		{style.AlignSub, 0, 2},
		{style.AlignSuper, 0, -10.0 / 3},
		{style.AlignTextTop, 0, 0},
		{style.AlignTextBottom, 0, 0},
		{style.AlignMiddle, 0, 0.5},
		{style.AlignTop, 0, 0},
		{style.AlignBottom, 0, 0},
	}
	for _, c := range cases {
		st := plain()
		st.VerticalAlign = c.align
		st.VerticalAlignLength = c.length
		box := NewInlineBox(element.New("span"), st, root)
		if math.Abs(box.VerticalOffsetFromParent()-c.offset) > 1e-9 {
			t.Errorf("vertical-align %s: expected offset %.3f, have %.3f", c.align, c.offset,
				box.VerticalOffsetFromParent())
		}
		if box.VerticalAlign() != c.align {
			t.Errorf("expected vertical-align %s, have %s", c.align, box.VerticalAlign())
		}
	}
}

func TestTextTopOfSmallerFont(t *testing.T) {
	root := NewRootBox(plain())
	st := plain()
	st.Font = style.FontMetrics{Size: 5, Ascent: 4, Descent: 1}
	st.VerticalAlign = style.AlignTextTop
	box := NewInlineBox(element.New("small"), st, root)
	if box.VerticalOffsetFromParent() != -4 {
		t.Errorf("expected text-top to raise box by 4, have %.2f", box.VerticalOffsetFromParent())
	}
	st.VerticalAlign = style.AlignTextBottom
	box = NewInlineBox(element.New("small"), st, root)
	if box.VerticalOffsetFromParent() != 1 {
		t.Errorf("expected text-bottom to lower box by 1, have %.2f", box.VerticalOffsetFromParent())
	}
}

func TestInlineBoxSubmit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlineflow.boxes")
	defer teardown()
	//
	st := plain()
	st.Margin = style.Uniform(1)
	st.Border = style.Uniform(2)
	st.Padding = style.Uniform(3)
	e := element.New("span")
	box := NewInlineBox(e, st, NewRootBox(plain()))
	if box.SpacingLeft() != 6 || box.SpacingRight() != 6 {
		t.Fatalf("expected spacing 6 per side, have %.2f/%.2f", box.SpacingLeft(), box.SpacingRight())
	}
	r := box.CreateFragment(linebox.Wrap, 100, 0, true, 0)
	if r.Type != linebox.InlineBoxFragment || r.LayoutWidth >= 0 || !r.Principal {
		t.Fatalf("expected principal open inline box fragment, have %+v", r)
	}
	parent := element.New("div")
	box.Submit(linebox.FragmentBox{
		OffsetParent: parent,
		Position:     geom.Pt(10, 20),
		LayoutWidth:  40,
		Principal:    true,
		SplitRight:   true,
	})
	if e.OffsetParent != parent || e.Offset != geom.Pt(11, 7) {
		t.Errorf("expected border box at (11,7), have %s", e.Offset)
	}
	if len(e.Boxes) != 1 || e.Boxes[0].Rect.Size != (geom.Size{W: 45, H: 20}) {
		t.Fatalf("expected one box of 45x20, have %v", e.Boxes)
	}
	box.Submit(linebox.FragmentBox{
		OffsetParent: parent,
		Position:     geom.Pt(0, 40),
		LayoutWidth:  30,
		SplitLeft:    true,
	})
	if len(e.Boxes) != 2 || box.FragmentCount() != 2 {
		t.Fatalf("expected two boxes, have %d", len(e.Boxes))
	}
	second := e.Boxes[1]
	if second.Rect.TopLeft != geom.Pt(-11, 20) || second.Rect.Size.W != 35 || !second.SplitLeft {
		t.Errorf("expected split-left box at (-11,20) of width 35, have %+v", second)
	}
}

func TestTextBoxFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlineflow.boxes")
	defer teardown()
	//
	m := textgen.FaceMeasurer{Face: basicfont.Face7x13}
	e := element.New("#text")
	box := NewTextBox(e, plain(), textgen.New("Hello world", m, style.WhiteSpaceNormal))
	r := box.CreateFragment(linebox.Wrap, 50, 0, true, 0)
	if r.Type != linebox.TextRun || !r.Principal || r.Overflow != 6 || r.Payload != "Hello" || r.LayoutWidth != 35 {
		t.Fatalf("expected principal run 'Hello' overflowing at 6, have %+v", r)
	}
	r2 := box.CreateFragment(linebox.Wrap, 50, 0, true, r.Overflow)
	if r2.Type != linebox.TextRun || r2.Principal || r2.Overflow != 0 || r2.Payload != "world" {
		t.Fatalf("expected final run 'world', have %+v", r2)
	}
	if r := box.CreateFragment(linebox.WrapAny, 20, 0, false, 0); r.Type != linebox.Invalid {
		t.Errorf("expected text box to refuse placement under wrap-any, have %+v", r)
	}
	if r := box.CreateFragment(linebox.Wrap, 20, 0, false, 0); r.Type != linebox.TextRun || r.Payload != "Hello" {
		t.Errorf("expected text box to force first word under wrap, have %+v", r)
	}
	box.Submit(linebox.FragmentBox{Position: geom.Pt(5, 10), Principal: true, Payload: r.Payload})
	box.Submit(linebox.FragmentBox{Position: geom.Pt(0, 30), Payload: r2.Payload})
	if e.Offset != geom.Pt(5, 10) || len(e.Lines) != 2 {
		t.Fatalf("expected element at (5,10) with 2 lines, have %s", e)
	}
	if e.Lines[1].Offset != geom.Pt(-5, 20) || e.Text() != "Hello\nworld" {
		t.Errorf("expected second line at (-5,20), have %+v", e.Lines[1])
	}
}

func TestNowrapText(t *testing.T) {
	m := textgen.FaceMeasurer{Face: basicfont.Face7x13}
	st := plain()
	st.WhiteSpace = style.WhiteSpaceNowrap
	box := NewTextBox(element.New("#text"), st, textgen.New("Hello world", m, st.WhiteSpace))
	r := box.CreateFragment(linebox.Wrap, 20, 0, true, 0)
	if r.Overflow != 0 || r.Payload != "Hello world" {
		t.Errorf("expected white-space nowrap to keep text on one line, have %+v", r)
	}
}

func TestBlankLineIsEmptyRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlineflow.boxes")
	defer teardown()
	//
	m := textgen.FaceMeasurer{Face: basicfont.Face7x13}
	st := plain()
	st.WhiteSpace = style.WhiteSpacePreWrap
	box := NewTextBox(element.New("#text"), st, textgen.New("a\n\nb", m, st.WhiteSpace))
	for _, mode := range []linebox.LayoutMode{linebox.Wrap, linebox.WrapAny} {
		r := box.CreateFragment(mode, 100, 0, true, 2)
		if r.Type != linebox.TextRun || r.Payload != "" || r.LayoutWidth != 0 || r.Overflow != 3 {
			t.Errorf("expected empty run continuing at 3 in mode %s, have %+v", mode, r)
		}
	}
}

func TestAtomicBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlineflow.boxes")
	defer teardown()
	//
	st := plain()
	st.Margin = style.Edges{Left: 2, Right: 3, Top: 1, Bottom: 4}
	e := element.New("img")
	box := NewAtomicBox(e, st, geom.Size{W: 20, H: 10}, NewRootBox(plain()))
	if box.OuterWidth() != 25 || box.HeightAboveBaseline() != 15 || box.DepthBelowBaseline() != 0 {
		t.Fatalf("expected outer size 25x15 on baseline, have %.2f/%.2f", box.OuterWidth(), box.HeightAboveBaseline())
	}
	if r := box.CreateFragment(linebox.WrapAny, 24, 0, false, 0); r.Type != linebox.Invalid {
		t.Errorf("expected refusal under wrap-any, have %+v", r)
	}
	r := box.CreateFragment(linebox.Wrap, 24, 0, false, 0)
	if r.Type != linebox.SizedBox || r.LayoutWidth != 25 || r.Ascent != 15 {
		t.Fatalf("expected sized box of width 25, have %+v", r)
	}
	box.Submit(linebox.FragmentBox{Position: geom.Pt(10, 30), LayoutWidth: 25, Principal: true})
	if e.Offset != geom.Pt(12, 16) || len(e.Boxes) != 1 || e.Boxes[0].Rect.Size.H != 10 {
		t.Errorf("expected border box at (12,16), have %s", e)
	}
}
