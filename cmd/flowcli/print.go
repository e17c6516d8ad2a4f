package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/inlineflow"
	"github.com/npillmayer/inlineflow/element"
	"github.com/pterm/pterm"
)

func printResult(r *inlineflow.Result) {
	pterm.Printf("%d lines, height %.2f, shrink-to-fit width %.2f, last baseline %.2f\n",
		r.LineCount, r.Height, r.ShrinkToFitWidth, r.Baseline)
}

func printElements(elements []*element.Element) {
	if len(elements) == 0 {
		return
	}
	data := [][]string{
		{"Element", "Offset", "Boxes", "Lines"},
	}
	for _, e := range elements {
		data = append(data, []string{
			e.Name,
			e.Offset.String(),
			formatBoxes(e.Boxes),
			formatLines(e.Lines),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatBoxes(boxes []element.Box) string {
	parts := make([]string, 0, len(boxes))
	for _, b := range boxes {
		s := fmt.Sprintf("%s %s", b.Rect.TopLeft, b.Rect.Size)
		if b.SplitLeft {
			s = "<" + s
		}
		if b.SplitRight {
			s += ">"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}

func formatLines(lines []element.Line) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%s %q", l.Offset, l.Text))
	}
	return strings.Join(parts, "\n")
}
