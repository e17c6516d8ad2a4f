package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/inlineflow"
	"github.com/npillmayer/inlineflow/element"
	"github.com/npillmayer/inlineflow/internal/fontload"
	"github.com/npillmayer/inlineflow/style"
	"github.com/npillmayer/inlineflow/textgen"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// tracer traces with key 'inlineflow'
func tracer() tracing.Trace {
	return tracing.Select("inlineflow")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":            "go",
		"trace.inlineflow":           "Info",
		"trace.inlineflow.linebox":   "Error",
		"trace.inlineflow.boxes":     "Error",
		"trace.inlineflow.textgen":   "Error",
		"trace.inlineflow.container": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load (default Go Regular)")
	size := flag.Float64("size", 16, "Font size in layout units")
	width := flag.Float64("width", 300, "Width of the paragraph")
	shape := flag.Bool("shape", false, "Measure text by shaping it")
	lang := flag.String("lang", "en", "Language of the text (BCP 47)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)       // will set the correct level later
	pterm.Info.Println("Welcome to Inline Flow CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("flow > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl, width: *width}
	//
	// load font to use
	if err := intp.loadFont(*fontname, *size, *shape, *lang); err != nil { // font name provided by flag
		tracer().Errorf("%v", err)
		os.Exit(4)
	}
	intp.reset()
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	if err := setTraceLevel(*tlevel); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

func setTraceLevel(level string) error {
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error":
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	for _, key := range []string{"inlineflow", "inlineflow.linebox", "inlineflow.boxes",
		"inlineflow.textgen", "inlineflow.container"} {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	font     *fontload.ScalableFont
	style    style.Style
	measurer textgen.Measurer
	width    float64
	para     *inlineflow.Paragraph
	elements []*element.Element
	depth    int // number of open inline boxes
	result   *inlineflow.Result
}

func (intp *Intp) String() string {
	if intp == nil || intp.para == nil {
		return "()"
	}
	return fmt.Sprintf("( width=%.0f align=%s items=%d open=%d )", intp.width,
		intp.style.TextAlign, len(intp.elements), intp.depth)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string, size float64, shape bool, lang string) (err error) {
	if fontname == "" {
		intp.font = fontload.Default()
	} else if intp.font, err = fontload.LoadOpenTypeFont(fontname); err != nil {
		return err
	}
	tracer().Infof("loaded SFNT font = %s", intp.font.Fontname)
	if intp.style.Font, err = intp.font.Metrics(size); err != nil {
		return err
	}
	if intp.measurer, err = intp.font.Measurer(size, shape); err != nil {
		return err
	}
	if sm, ok := intp.measurer.(*textgen.ShapingMeasurer); ok {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("language %q: %w", lang, err)
		}
		sm.SetLanguage(tag)
	}
	pterm.Printf("font %s at size %.1f: ascent %.2f, descent %.2f\n", intp.font.Fontname, size,
		intp.style.Font.Ascent, intp.style.Font.Descent)
	return nil
}

// reset starts a new paragraph.
func (intp *Intp) reset() {
	intp.para = inlineflow.NewParagraph(intp.style, intp.measurer)
	intp.elements = intp.elements[:0]
	intp.depth = 0
	intp.result = nil
}
