package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"pkt.systems/resumark"
	"pkt.systems/resumark/pdf"
	"pkt.systems/version"
)

const (
	defaultOutput    = "output.pdf"
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultLogLevel  = "info"
)

func init() {
	version.SetDefaultModule("pkt.systems/resumark")
}

type options struct {
	output      string
	preview     bool
	themeName   string
	width       int
	osc8        string
	listThemes  bool
	coreFont    string
	pageSize    string
	logLevel    string
	showVersion bool
}

// logger is the subset of glog.Logger the command uses.
type logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	pdfDefaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("resumark", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.output, "output", "o", defaultOutput, "PDF output path (- for stdout)")
	flags.BoolVar(&opts.preview, "preview", false, "Print a terminal preview instead of writing a PDF")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Preview theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Preview width override (0 uses terminal width if available)")
	flags.StringVar(&opts.osc8, "osc8", "auto", "OSC8 hyperlinks in preview: auto|on|off")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available preview themes")
	flags.StringVar(&opts.coreFont, "core-font", "", "Use a built-in PDF font (Courier, Helvetica, Times) instead of FONTPATH/FONTNAME")
	flags.StringVar(&opts.pageSize, "page-size", pdfDefaults.PageSize, "PDF page size")
	flags.StringVar(&opts.logLevel, "log-level", defaultLogLevel, "Log level: trace|debug|info|warn|error")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: resumark [flags] <input>\n")
		fmt.Fprintln(stderr, "\nInput may be a path, a file:// URL or an http(s):// URL.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(&opts, stderr)
	flagArgs, positionals, unknown := splitArgs(args, flags)
	if err := flags.Parse(flagArgs); err != nil {
		return 2
	}
	log := newLogger(opts.logLevel)

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	var extra []string
	if len(positionals) > 1 {
		extra = positionals[1:]
	}
	reportIgnored(log, unknown, extra)
	if len(positionals) == 0 {
		log.Error("cannot compile", "error", resumark.ErrMissingInputPath)
		flags.Usage()
		return 2
	}

	input := positionals[0]
	log.Debug("reading input", "input", input)
	src, err := readInput(ctx, input)
	if err != nil {
		log.Error("read input", "input", input, "error", err)
		return 1
	}
	doc, err := resumark.Compile(src)
	if err != nil {
		log.Error("compile", "input", input, "error", err)
		return 1
	}
	log.Debug("compiled document", "blocks", len(doc.Blocks))

	if opts.preview {
		return runPreview(doc, opts, stdout, log)
	}
	return runPDF(doc, opts, stdout, log)
}

func runPreview(doc *resumark.Document, opts options, stdout io.Writer, log logger) int {
	theme, ok := resumark.ThemeByName(opts.themeName)
	if !ok {
		log.Error("unknown theme", "theme", opts.themeName, "available", strings.Join(resumark.AvailableThemes(), ","))
		return 2
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		log.Error("invalid --osc8", "value", opts.osc8, "error", err)
		return 2
	}
	err = resumark.Preview(resumark.PreviewRequest{
		Document: doc,
		Writer:   stdout,
		Width:    resolveWidth(opts.width),
		Theme:    theme,
		Options:  []resumark.RenderOption{resumark.WithOSC8(osc8)},
	})
	if err != nil {
		log.Error("preview", "error", err)
		return 1
	}
	return 0
}

func runPDF(doc *resumark.Document, opts options, stdout io.Writer, log logger) int {
	toStdout := strings.TrimSpace(opts.output) == "-"
	if toStdout && isTerminal(stdout) {
		log.Error("refusing to write PDF to terminal; use -o/--output")
		return 2
	}
	cfg := pdf.ConfigFromDocument(doc.Config)
	cfg.PageSize = opts.pageSize
	if opts.coreFont != "" {
		cfg.CoreFont = opts.coreFont
	} else {
		cfg.FontDir = normalizePath(cfg.FontDir)
	}
	var buf bytes.Buffer
	if err := pdf.Render(pdf.RenderRequest{Document: doc, Writer: &buf, Config: cfg}); err != nil {
		log.Error("render pdf", "error", err)
		return 1
	}
	if toStdout {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			log.Error("write pdf", "error", err)
			return 1
		}
		return 0
	}
	path, err := writeOutput(opts.output, buf.Bytes())
	if err != nil {
		log.Error("write pdf", "output", opts.output, "error", err)
		return 1
	}
	log.Info("wrote pdf", "output", path, "blocks", len(doc.Blocks), "bytes", buf.Len())
	return 0
}

func newLogger(level string) glog.Logger {
	opts := []glog.Option{glog.WithLoggerTypeConsole()}
	if lvl := normalizeLevel(level); lvl != "" {
		opts = append(opts, glog.WithLevel(lvl))
	}
	return glog.NewLogger(opts...).GetLogger("resumark")
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

// splitArgs separates flags the set knows about from positional arguments
// and unrecognized options. Values of known non-boolean flags stay attached
// to their flag.
func splitArgs(args []string, flags *pflag.FlagSet) (flagArgs, positionals, unknown []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positionals = append(positionals, arg)
			continue
		}
		flag, inline := lookupFlag(arg, flags)
		if flag == nil {
			unknown = append(unknown, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if !inline && flag.NoOptDefVal == "" && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, positionals, unknown
}

// lookupFlag resolves "--name", "--name=value", "-x" and "-xvalue". inline
// reports whether the value is part of arg.
func lookupFlag(arg string, flags *pflag.FlagSet) (*pflag.Flag, bool) {
	if strings.HasPrefix(arg, "--") {
		name, _, hasValue := strings.Cut(arg[2:], "=")
		if name == "" {
			return nil, false
		}
		return flags.Lookup(name), hasValue
	}
	body := arg[1:]
	flag := flags.ShorthandLookup(body[:1])
	if flag == nil {
		return nil, false
	}
	return flag, len(body) > 1
}

func reportIgnored(log logger, unknown, extra []string) {
	for _, arg := range unknown {
		log.Warn("Option not recognized", "option", arg)
	}
	for _, arg := range extra {
		log.Warn("Option not recognized", "argument", arg)
	}
}

func printThemes(w io.Writer) {
	for _, name := range resumark.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return resumark.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

// readInput loads source text from a path, a file:// URL or an http(s) URL.
func readInput(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", resumark.ErrMissingInputPath
	}
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return resumark.FetchSource(ctx, resumark.FetchRequest{URL: raw})
		case "file":
			path = u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
		}
	}
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w: %w", path, resumark.ErrUnreadableSource, err)
	}
	src, err := resumark.SourceText(data)
	if err != nil {
		return "", fmt.Errorf("read %s: %w: %w", path, resumark.ErrUnreadableSource, err)
	}
	return src, nil
}

func writeOutput(path string, data []byte) (string, error) {
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return "", errors.New("output path is a directory")
	}
	if err := os.WriteFile(clean, data, 0o644); err != nil {
		return "", err
	}
	return clean, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
