package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/inlineflow/geom"
	"github.com/npillmayer/inlineflow/style"
	"github.com/pterm/pterm"
)

// Op is a single command. Commands have the form
//
//	name[:arg[:format]] [rest of line]
//
// e.g. "open:em:4", "img:40x20" or "text Hello world".
type Op struct {
	code   int
	arg    string
	format string
	rest   string
}

const (
	QUIT int = iota
	HELP
	TEXT
	OPEN
	CLOSE
	IMG
	BREAK
	WIDTH
	ALIGN
	LAYOUT
	TREE
	RESET
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"text":   TEXT,
	"open":   OPEN,
	"close":  CLOSE,
	"img":    IMG,
	"br":     BREAK,
	"width":  WIDTH,
	"align":  ALIGN,
	"layout": LAYOUT,
	"tree":   TREE,
	"reset":  RESET,
}

func parseCommand(line string) *Op {
	head, rest, _ := strings.Cut(line, " ")
	c := strings.Split(head, ":")
	code, ok := opMap[strings.ToLower(c[0])]
	if !ok {
		code = HELP
	}
	op := &Op{code: code, arg: getOptArg(c, 1), format: getOptArg(c, 2), rest: rest}
	tracer().Debugf("parsed command: %v, rest = %q", c, rest)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	TEXT:   textOp,
	OPEN:   openOp,
	CLOSE:  closeOp,
	IMG:    imgOp,
	BREAK:  breakOp,
	WIDTH:  widthOp,
	ALIGN:  alignOp,
	LAYOUT: layoutOp,
	TREE:   treeOp,
	RESET:  resetOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func textOp(intp *Intp, op *Op) (error, bool) {
	if op.rest == "" {
		return errors.New("usage: text <some text>"), false
	}
	intp.elements = append(intp.elements, intp.para.Text(op.rest))
	return nil, false
}

func openOp(intp *Intp, op *Op) (error, bool) {
	name := op.arg
	if name == "" {
		name = "span"
	}
	st := intp.style
	if op.format != "" {
		p, err := strconv.ParseFloat(op.format, 64)
		if err != nil {
			return fmt.Errorf("padding not numeric: %v", op.format), false
		}
		st.Padding = style.Edges{Left: p, Right: p}
		st.Border = style.Edges{Left: 1, Right: 1}
	}
	if op.rest != "" {
		va, ok := parseVerticalAlign(op.rest)
		if !ok {
			return fmt.Errorf("unknown vertical-align: %s", op.rest), false
		}
		st.VerticalAlign = va
	}
	intp.elements = append(intp.elements, intp.para.Open(name, st))
	intp.depth++
	return nil, false
}

func closeOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.para.Close(); err != nil {
		return err, false
	}
	intp.depth--
	return nil, false
}

func imgOp(intp *Intp, op *Op) (error, bool) {
	ws, hs, ok := strings.Cut(op.arg, "x")
	w, err1 := strconv.ParseFloat(ws, 64)
	h, err2 := strconv.ParseFloat(hs, 64)
	if !ok || err1 != nil || err2 != nil {
		return errors.New("usage: img:<width>x<height>"), false
	}
	st := intp.style
	st.VerticalAlign = style.AlignBaseline
	intp.elements = append(intp.elements, intp.para.Atomic("img", st, geom.Size{W: w, H: h}))
	return nil, false
}

func breakOp(intp *Intp, op *Op) (error, bool) {
	intp.para.Break()
	return nil, false
}

func widthOp(intp *Intp, op *Op) (error, bool) {
	w, err := strconv.ParseFloat(op.arg, 64)
	if err != nil || w <= 0 {
		return fmt.Errorf("width must be a positive number: %v", op.arg), false
	}
	intp.width = w
	return nil, false
}

func alignOp(intp *Intp, op *Op) (error, bool) {
	align, ok := style.ParseTextAlign(op.arg)
	if !ok {
		return fmt.Errorf("unknown text-align: %s", op.arg), false
	}
	intp.style.TextAlign = align
	pterm.Info.Println("text-align applies to new paragraphs, use 'reset'")
	return nil, false
}

func layoutOp(intp *Intp, op *Op) (err error, stop bool) {
	if intp.result, err = intp.para.Layout(intp.width); err != nil {
		return
	}
	printResult(intp.result)
	printElements(intp.elements)
	return
}

func treeOp(intp *Intp, op *Op) (error, bool) {
	if intp.result == nil {
		return errors.New("no layout yet, use 'layout'"), false
	}
	pterm.Println(intp.result.Tree)
	return nil, false
}

func resetOp(intp *Intp, op *Op) (error, bool) {
	intp.reset()
	return nil, false
}

func parseVerticalAlign(s string) (style.VerticalAlign, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for va := style.AlignBaseline; va <= style.AlignBottom; va++ {
		if va.String() == s {
			return va, true
		}
	}
	return style.AlignBaseline, false
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
