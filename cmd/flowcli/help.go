package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "open", "span", "inline":
		pterm.Info.Println("Inline Boxes")
		pterm.Println(`
	open[:name[:padding]] [vertical-align]
	    opens an inline box, e.g. "open:em:4 super".
	    Padding is applied left and right, together with a border of 1.
	close
	    closes the inline box opened last.
	Inline boxes which are open at the end of a line continue on the next line.
	`)
	case "layout", "tree":
		pterm.Info.Println("Layout")
		pterm.Println(`
	layout   breaks the paragraph into lines and lists all elements
	tree     prints the line boxes of the last layout
	width:N  sets the width of the paragraph
	`)
	default:
		pterm.Info.Println("Commands")
		data := [][]string{
			{"Command", "Effect"},
			{"text <...>", "add a run of text"},
			{"open[:name[:padding]] [align]", "open an inline box"},
			{"close", "close the innermost inline box"},
			{"img:WxH", "add an atomic box"},
			{"br", "forced line break"},
			{"width:N", "set paragraph width"},
			{"align:left|right|center", "text-align for the next paragraph"},
			{"layout", "lay out the paragraph"},
			{"tree", "dump line boxes"},
			{"reset", "start a new paragraph"},
			{"help[:topic]", "help on 'open' or 'layout'"},
			{"quit", "leave"},
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
}
