// Package main is the command-line front-end for the MathText translator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"mathtext/internal/document"
	"mathtext/internal/interp"
	"mathtext/internal/latex"
	"mathtext/internal/louis"
	"mathtext/internal/source"
	"mathtext/internal/terminal"
	"mathtext/internal/teximg"
	"mathtext/internal/ueb"
	"mathtext/internal/util"
)

// outputRequest is a flag that can appear bare (-b) or with a filename
// (-b=out.brf).
type outputRequest struct {
	enabled bool
	path    string
}

func (o *outputRequest) String() string { return o.path }

func (o *outputRequest) Set(s string) error {
	o.enabled = true
	if s != "true" {
		o.path = s
	}
	return nil
}

func (o *outputRequest) IsBoolFlag() bool { return true }

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mathtext [options] <filename>")
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	var brailleReq, latexReq outputRequest

	fileFlag := flag.String("file", "", "Name of your input file/document.")
	fFlag := flag.String("f", "", "Short alias for --file.")
	flag.Var(&brailleReq, "braille", "Generate a braille file (default: input name + .brf).")
	flag.Var(&brailleReq, "b", "Short alias for --braille.")
	flag.Var(&latexReq, "latex", "Generate a LaTeX/print file (default: input name + .tex).")
	flag.Var(&latexReq, "l", "Short alias for --latex.")
	wrapFlag := flag.Int("wrap", 30, "Braille line width (0 disables wrapping).")
	previewFlag := flag.Bool("preview", false, "Render the LaTeX output and display it inline (Kitty terminals).")
	pFlag := flag.Bool("p", false, "Short alias for --preview.")

	flag.Usage = usage
	flag.Parse()

	inputFilename := *fileFlag
	if *fFlag != "" {
		inputFilename = *fFlag
	}
	if inputFilename == "" && flag.NArg() > 0 {
		inputFilename = flag.Arg(0)
	}

	isPreview := *previewFlag || *pFlag

	if inputFilename == "" {
		fmt.Fprintln(os.Stderr, "Command line error: an input file is required")
		usage()
		return 2
	}
	if !brailleReq.enabled && !latexReq.enabled && !isPreview {
		fmt.Fprintln(os.Stderr, "Command line error: no work to do -- must specify either or both of --braille and --latex")
		usage()
		return 2
	}

	brfOutputFilename := brailleReq.path
	if brailleReq.enabled && brfOutputFilename == "" {
		brfOutputFilename = util.RemoveFileExtension(inputFilename) + ".brf"
	}
	latexOutputFilename := latexReq.path
	if latexReq.enabled && latexOutputFilename == "" {
		latexOutputFilename = util.RemoveFileExtension(inputFilename) + ".tex"
	}

	louis.Configure(".")
	defer louis.Close()

	var srcfile source.File
	if err := srcfile.LoadFile(inputFilename); err != nil {
		color.Red("%v", err)
		return 2
	}

	var doc document.Document
	interpreter := interp.New(&srcfile, &doc)
	interpreter.RegisterCommands(latex.CommandList())
	interpreter.RegisterCommands(ueb.CommandList())

	if err := interpreter.Interpret(); err != nil {
		fmt.Println("An error occurred and translation of your document was stopped.")
		printMessages(interpreter.Messages())
		return 1
	}

	if interpreter.HaveMessages() {
		printMessages(interpreter.Messages())
	}

	var latexOutput string
	if latexReq.enabled || isPreview {
		ltr := latex.New()
		var err error
		latexOutput, err = ltr.RenderDocument(&doc)
		if err != nil {
			color.Red("LaTeX rendering failed: %v", err)
			return 2
		}
	}

	if latexReq.enabled {
		if err := os.WriteFile(latexOutputFilename, []byte(latexOutput), 0644); err != nil {
			color.Red("error occurred while writing to '%s': %v", latexOutputFilename, err)
			return 2
		}
	}

	if brailleReq.enabled {
		renderer := ueb.New(nil)
		if *wrapFlag > 0 {
			renderer.EnableLineWrapping(*wrapFlag)
		}

		output, err := renderer.RenderDocument(&doc)
		if err != nil {
			color.Red("braille rendering failed: %v", err)
			return 2
		}

		if err := os.WriteFile(brfOutputFilename, []byte(output), 0644); err != nil {
			color.Red("error occurred while writing to '%s': %v", brfOutputFilename, err)
			return 2
		}
	}

	if isPreview {
		img, err := teximg.RenderPage(latexOutput, 300)
		if err != nil {
			color.Red("preview rendering failed: %v", err)
			return 2
		}
		kittyStr, err := terminal.KittyInline(img, 0)
		if err != nil {
			color.Red("preview display failed: %v", err)
			return 2
		}
		fmt.Print(kittyStr)
	}

	return 0
}

// printMessages lists diagnostics, colored by severity.
func printMessages(msgs []interp.Msg) {
	fmt.Printf("%d message(s):\n", len(msgs))
	for _, msg := range msgs {
		switch msg.Category {
		case interp.Error:
			color.Red("- %s", msg)
		case interp.Warning:
			color.Yellow("- %s", msg)
		default:
			fmt.Printf("- %s\n", msg)
		}
	}
}
