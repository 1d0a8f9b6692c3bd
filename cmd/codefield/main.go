package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/codefield/internal/config"
	"github.com/akyairhashvil/codefield/internal/field"
	"github.com/akyairhashvil/codefield/internal/models"
	"github.com/akyairhashvil/codefield/internal/render"
	"github.com/akyairhashvil/codefield/internal/tui"
	"github.com/akyairhashvil/codefield/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var (
	errUnknownTheme = errors.New("unknown theme")
	errNotAccepted  = errors.New("code not accepted")
	errNoTerminal   = errors.New("run needs a terminal on stderr; use preview for snapshots")
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints a failure on w, which main points at stderr so stdout
// carries only the entered code.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Alas, there's been an error: %v\n", err)
}

func run(args []string) error {
	cmd := "run"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}
	switch cmd {
	case "run":
		return runField(args)
	case "preview":
		return runPreview(args, os.Stdout)
	case "hash":
		return runHash(os.Stdin, os.Stdout)
	case "version":
		fmt.Printf("%s %s\n", config.AppName, tui.VersionLabel())
		return nil
	}
	return fmt.Errorf("unknown command %q (want run, preview, hash or version)", cmd)
}

// fieldFlags are the overrides shared by run and preview.
type fieldFlags struct {
	configPath string
	style      string
	theme      string
	length     int
	secure     bool
}

func (f *fieldFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "config file (.toml, .yaml)")
	fs.StringVar(&f.style, "style", "", "bordered or underlined")
	fs.StringVar(&f.theme, "theme", "", "color theme: "+strings.Join(tui.ThemeNames(), ", "))
	fs.IntVar(&f.length, "length", 0, "number of slots")
	fs.BoolVar(&f.secure, "secure", false, "mask entered characters")
}

// load resolves the config file and applies flag overrides on top of it.
func (f fieldFlags) load() (config.HostSection, models.FieldConfig, error) {
	file, err := config.Find(f.configPath)
	if err != nil {
		return config.HostSection{}, models.FieldConfig{}, err
	}
	var host config.HostSection
	if file != nil {
		host = file.Host
	}
	if f.theme != "" {
		host.Theme = f.theme
	}

	// The theme paints the defaults; colors set in the file win over it.
	base := models.DefaultFieldConfig()
	if host.Theme != "" {
		theme, ok := tui.LookupTheme(host.Theme)
		if !ok {
			return host, base, fmt.Errorf("%w %q", errUnknownTheme, host.Theme)
		}
		base = theme.Apply(base)
	}
	cfg, err := file.FieldConfigFrom(base)
	if err != nil {
		return host, cfg, err
	}

	switch {
	case f.length < 0:
		return host, cfg, fmt.Errorf("%w: %d", config.ErrBadLength, f.length)
	case f.length > 0:
		cfg.MaxLength = f.length
	}
	if f.secure {
		cfg.Secure = true
	}
	if f.style != "" {
		style, ok := models.ParseStyle(f.style)
		if !ok {
			return host, cfg, fmt.Errorf("%w %q", config.ErrUnknownStyle, f.style)
		}
		cfg.Style = style
	}
	return host, cfg, nil
}

func runField(args []string) error {
	var ff fieldFlags
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	ff.register(fs)
	unfocused := fs.Bool("unfocused", false, "start without focus")
	if err := fs.Parse(args); err != nil {
		return err
	}
	host, cfg, err := ff.load()
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return errNoTerminal
	}

	// The program owns the terminal; log lines would tear the frame.
	if host.LogFile != "" {
		f, err := tea.LogToFile(util.ExpandHome(host.LogFile), config.AppName)
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := tui.NewFieldModel(cfg, tui.Options{
		Theme:      host.Theme,
		ExpectHash: host.ExpectHash,
		Unfocused:  *unfocused,
	})
	// The field draws on stderr so the entered code can be piped from stdout.
	p := tea.NewProgram(model,
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	return report(os.Stdout, final, host.ExpectHash != "")
}

// report prints a completed code. With a hash configured only an accepted
// code counts as success.
func report(w io.Writer, final tea.Model, verify bool) error {
	fm, ok := final.(tui.FieldModel)
	if !ok {
		return nil
	}
	ctrl := fm.Controller()
	if verify && fm.Verdict() != tui.VerdictAccepted {
		return errNotAccepted
	}
	if ctrl.Full() {
		fmt.Fprintln(w, ctrl.Text())
	}
	return nil
}

func runPreview(args []string, stdout io.Writer) error {
	var ff fieldFlags
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	ff.register(fs)
	text := fs.String("text", "", "characters to type into the field")
	out := fs.String("o", "-", "output .png or .pdf file, or - for the terminal")
	width := fs.Float64("width", 0, "field width in points")
	height := fs.Float64("height", 0, "field height in points")
	scale := fs.Float64("scale", config.PreviewScale, "pixels per point for PNG output")
	focused := fs.Bool("focused", false, "draw the caret")
	if err := fs.Parse(args); err != nil {
		return err
	}
	host, cfg, err := ff.load()
	if err != nil {
		return err
	}

	ctrl := field.New(cfg, field.WithRejectFunc(func(err *field.InputError) {
		util.LogError("preview", err)
	}))
	if *focused {
		ctrl.GainFocus()
	}
	for _, r := range *text {
		ctrl.Insert(string(r))
	}

	if *out == "-" {
		c := tui.NewCanvas(config.FieldCells(cfg.MaxLength), config.FieldRows)
		bounds := c.Bounds()
		c.Draw(snapshot(ctrl, bounds, render.CellMetrics{}))
		_, err := fmt.Fprintln(stdout, c.Render())
		return err
	}

	bounds := render.Rect{
		W: firstPositive(*width, host.Width, float64(cfg.MaxLength)*config.PreviewSlotWidth),
		H: firstPositive(*height, host.Height, config.PreviewHeight),
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(*out)); ext {
	case ".png":
		r := render.NewRasterRenderer(*scale)
		defer r.Metrics.Close()
		img, err := r.Render(snapshot(ctrl, bounds, r.Metrics), bounds)
		if err != nil {
			return err
		}
		if err := render.EncodePNG(f, img); err != nil {
			return err
		}
	case ".pdf":
		m := render.NewFaceMetrics()
		defer m.Close()
		if err := render.RenderPDF(f, snapshot(ctrl, bounds, m), bounds); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w %q", config.ErrUnsupportedFormat, ext)
	}
	return f.Close()
}

// snapshot is the field's draw list with the caret drawn inline when shown.
func snapshot(ctrl *field.Controller, bounds render.Rect, m render.Metrics) []render.Command {
	cmds := ctrl.DrawCommands(bounds, m)
	if _, visible := ctrl.CaretFrame(bounds); visible {
		cmds = append(cmds, render.CaretCommand(ctrl.Caret().Slot, ctrl.Config(), bounds))
	}
	return cmds
}

func firstPositive(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

func runHash(stdin *os.File, stdout io.Writer) error {
	code, err := readCode(stdin, "Code: ")
	if err != nil {
		return err
	}
	for _, r := range code {
		if !field.Allowed(r) {
			return fmt.Errorf("%w: %q", field.ErrDisallowed, r)
		}
	}
	hash, err := util.HashCode(code)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hash)
	return err
}

// readCode prompts without echo on a terminal and reads one line otherwise.
func readCode(stdin *os.File, prompt string) (string, error) {
	fd := int(stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, prompt)
		code, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(string(code)), err
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
