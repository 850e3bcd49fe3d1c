// Command pikgo renders diagram files to SVG.
//
// Usage:
//
//	pikgo [options] file...
//
// Each file is rendered independently. Output goes to standard output in
// argument order, or to <name>.svg in the directory given by -o.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"

	"github.com/you-not-fish/pikgo"
)

// Version information
const Version = "0.1.0-dev"

var (
	darkFlag = cli.BoolFlag{
		Name:  "dark",
		Usage: "Render for a dark background",
	}
	scaleFlag = cli.Float64Flag{
		Name:  "scale",
		Usage: "Multiply every default length by `factor`",
	}
	widthFlag = cli.Float64Flag{
		Name:  "width",
		Usage: "Fixed width attribute of the <svg> element",
	}
	heightFlag = cli.Float64Flag{
		Name:  "height",
		Usage: "Fixed height attribute of the <svg> element",
	}
	classFlag = cli.StringFlag{
		Name:  "class",
		Usage: "Class attribute of the <svg> element",
	}
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration `file`",
	}
	dumpConfigFlag = cli.BoolFlag{
		Name:  "dumpconfig",
		Usage: "Print the effective configuration and exit",
	}
	outputFlag = cli.StringFlag{
		Name:  "o",
		Usage: "Write <name>.svg files into `dir` instead of standard output",
	}
	emitTokensFlag = cli.BoolFlag{
		Name:  "emit-tokens",
		Usage: "Output the token stream",
	}
	emitASTFlag = cli.BoolFlag{
		Name:  "emit-ast",
		Usage: "Output the syntax tree",
	}
	astFormatFlag = cli.StringFlag{
		Name:  "ast-format",
		Value: "text",
		Usage: "Syntax tree format (text or json)",
	}
	htmlErrorsFlag = cli.BoolFlag{
		Name:  "html-errors",
		Usage: "Write diagram errors to standard output as HTML, in place of the SVG",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "Log layout decisions to standard error",
	}
	logFormatFlag = cli.StringFlag{
		Name:  "log-format",
		Usage: "Log format (text or json)",
	}
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	code := 0
	app := cli.NewApp()
	app.Name = "pikgo"
	app.Usage = "render diagrams as SVG"
	app.ArgsUsage = "file..."
	app.Version = Version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		darkFlag,
		scaleFlag,
		widthFlag,
		heightFlag,
		classFlag,
		configFileFlag,
		dumpConfigFlag,
		outputFlag,
		emitTokensFlag,
		emitASTFlag,
		astFormatFlag,
		htmlErrorsFlag,
		verboseFlag,
		logFormatFlag,
	}
	app.Action = func(ctx *cli.Context) error {
		code = action(ctx, stdout, stderr)
		return nil
	}
	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	return code
}

func action(ctx *cli.Context, stdout, stderr io.Writer) int {
	cfg := defaultConfig
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	applyFlags(ctx, &cfg)

	if ctx.Bool(dumpConfigFlag.Name) {
		if err := dumpConfig(stdout, &cfg); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	files := []string(ctx.Args())
	if len(files) == 0 {
		fmt.Fprintln(stderr, "error: no input file")
		fmt.Fprintln(stderr, "usage: pikgo [options] file...")
		return 1
	}

	switch {
	case ctx.Bool(emitTokensFlag.Name):
		return runEmitTokens(files, stdout, stderr)
	case ctx.Bool(emitASTFlag.Name):
		return runEmitAST(files, ctx.String(astFormatFlag.Name), stdout, stderr)
	}

	log := newLogger(cfg.Log.Level, cfg.Log.Format, stderr)
	opts := cfg.Render.options()
	opts.Logger = log
	out := output{dir: ctx.String(outputFlag.Name), htmlErrors: ctx.Bool(htmlErrorsFlag.Name)}
	return renderFiles(files, opts, out, log, stdout, stderr)
}

// applyFlags overrides configuration file values with explicitly set flags.
func applyFlags(ctx *cli.Context, cfg *pikgoConfig) {
	if ctx.IsSet(darkFlag.Name) {
		cfg.Render.DarkMode = ctx.Bool(darkFlag.Name)
	}
	if ctx.IsSet(scaleFlag.Name) {
		cfg.Render.Scale = ctx.Float64(scaleFlag.Name)
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Render.FixedWidth = ctx.Float64(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Render.FixedHeight = ctx.Float64(heightFlag.Name)
	}
	if ctx.IsSet(classFlag.Name) {
		cfg.Render.Class = ctx.String(classFlag.Name)
	}
	if ctx.Bool(verboseFlag.Name) {
		cfg.Log.Level = "debug"
	}
	if ctx.IsSet(logFormatFlag.Name) {
		cfg.Log.Format = ctx.String(logFormatFlag.Name)
	}
}

// rendered is the outcome of rendering one input file.
type rendered struct {
	src string
	res *pikgo.Result
	err error
}

// output says where rendered diagrams and their errors go.
type output struct {
	dir        string // write <name>.svg files here; empty means stdout
	htmlErrors bool   // report diagram errors on stdout as HTML
}

// renderFiles renders every file concurrently and reports the results in
// argument order. A failing file does not stop the others.
func renderFiles(files []string, opts *pikgo.Options, out output, log *slog.Logger, stdout, stderr io.Writer) int {
	results := make([]rendered, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			src, err := os.ReadFile(file)
			if err != nil {
				results[i].err = err
				return nil
			}
			res, err := pikgo.Render(string(src), opts)
			results[i] = rendered{src: string(src), res: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	code := 0
	for i, file := range files {
		r := results[i]
		if r.err != nil {
			code = 1
			var perr *pikgo.Error
			if out.htmlErrors && errors.As(r.err, &perr) {
				if _, err := io.WriteString(stdout, perr.HTML(r.src)); err != nil {
					reportError(stderr, file, err)
				}
				continue
			}
			reportError(stderr, file, r.err)
			continue
		}
		if out.dir == "" {
			if _, err := io.WriteString(stdout, r.res.SVG); err != nil {
				reportError(stderr, file, err)
				code = 1
			}
			continue
		}
		name := filepath.Join(out.dir, strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))+".svg")
		if err := os.WriteFile(name, []byte(r.res.SVG), 0o644); err != nil {
			reportError(stderr, file, err)
			code = 1
			continue
		}
		log.Info("wrote diagram", "file", name, "width", r.res.Width, "height", r.res.Height)
	}
	return code
}

var errColor = color.New(color.FgRed)

// reportError prints err in red, prefixed with the file name when the error
// carries a source position.
func reportError(w io.Writer, file string, err error) {
	var perr *pikgo.Error
	if errors.As(err, &perr) {
		errColor.Fprintf(w, "%s:%s\n", file, perr)
		return
	}
	errColor.Fprintf(w, "error: %v\n", err)
}

func runEmitTokens(files []string, stdout, stderr io.Writer) int {
	code := 0
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			reportError(stderr, file, err)
			code = 1
			continue
		}
		if !emitTokens(stdout, file, string(src)) {
			code = 1
		}
	}
	return code
}

func runEmitAST(files []string, format string, stdout, stderr io.Writer) int {
	if format != "text" && format != "json" {
		fmt.Fprintf(stderr, "error: unknown AST format %q (want text or json)\n", format)
		return 1
	}
	code := 0
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			reportError(stderr, file, err)
			code = 1
			continue
		}
		if err := emitAST(stdout, string(src), format); err != nil {
			errColor.Fprintf(stderr, "%s:%v\n", file, err)
			code = 1
		}
	}
	return code
}
