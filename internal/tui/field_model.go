// Package tui hosts the code field in a bubbletea program. Key, mouse and
// terminal focus events drive a field.Controller; the field is drawn on a
// cell canvas from the same draw commands the image renderers use.
package tui

import (
	"fmt"

	"github.com/akyairhashvil/codefield/internal/config"
	"github.com/akyairhashvil/codefield/internal/field"
	"github.com/akyairhashvil/codefield/internal/models"
	"github.com/akyairhashvil/codefield/internal/render"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Options configures the host around the field.
type Options struct {
	Theme      string
	ExpectHash string
	// Unfocused starts the field without focus; the user clicks or tabs in.
	Unfocused bool
}

// frameCache keeps the last rendered field until the controller invalidates
// it or the caret blinks.
type frameCache struct {
	canvas  *Canvas
	out     string
	dirty   bool
	caret   bool
	renders int
}

func (f *frameCache) invalidate() { f.dirty = true }

// FieldModel is the root bubbletea model.
type FieldModel struct {
	ctrl    *field.Controller
	blink   *Blinker
	frame   *frameCache
	session *session
	keys    keyMap
	help    help.Model
	theme   Theme
	width   int
}

func NewFieldModel(cfg models.FieldConfig, opts Options) FieldModel {
	theme, _ := LookupTheme(opts.Theme)
	m := FieldModel{
		blink:   NewBlinker(),
		frame:   &frameCache{dirty: true},
		session: &session{expectHash: opts.ExpectHash},
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   theme,
	}
	m.help.Styles.ShortKey = theme.Status
	m.help.Styles.ShortDesc = theme.Dim
	m.ctrl = field.New(cfg,
		field.WithDelegate(m.session),
		field.WithAnimator(m.blink),
		field.WithInvalidator(field.InvalidatorFunc(func() {
			m.frame.invalidate()
			m.session.edited()
		})),
		field.WithRejectFunc(m.session.rejected),
	)
	m.session.ctrl = m.ctrl
	if !opts.Unfocused {
		m.ctrl.GainFocus()
	}
	return m
}

// Controller exposes the field for callers that seed text or swap config.
func (m FieldModel) Controller() *field.Controller { return m.ctrl }

func (m FieldModel) Verdict() Verdict { return m.session.verdict }

func (m FieldModel) Init() tea.Cmd {
	return m.blink.Cmd()
}

func (m FieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.hit(msg.X, msg.Y) {
			m.ctrl.TouchBegan()
		}
	case tea.FocusMsg:
		m.ctrl.GainFocus()
	case tea.BlurMsg:
		if m.ctrl.Focused() {
			m.ctrl.LoseFocus()
		}
	case BlinkMsg:
		cmd = m.blink.Update(msg)
	}
	return m, tea.Batch(cmd, m.blink.Cmd())
}

func (m FieldModel) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Focus):
		if m.ctrl.Focused() {
			m.ctrl.LoseFocus()
		} else {
			m.ctrl.GainFocus()
		}
		return
	case key.Matches(msg, m.keys.Reset):
		m.session.reset()
		m.ctrl.SetText("")
		return
	}
	if !m.ctrl.Focused() {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Commit):
		m.ctrl.Insert(field.CommitKey)
	case key.Matches(msg, m.keys.Delete):
		m.ctrl.DeleteBackward()
	case key.Matches(msg, m.keys.Blur):
		m.ctrl.LoseFocus()
	case msg.Type == tea.KeySpace:
		m.ctrl.Insert(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt && msg.Paste:
		m.ctrl.Insert(string(msg.Runes))
	case msg.Type == tea.KeyRunes && !msg.Alt:
		// Fast typing can arrive as one message; each cluster is a keystroke.
		g := uniseg.NewGraphemes(string(msg.Runes))
		for g.Next() && m.ctrl.Focused() {
			m.ctrl.Insert(g.Str())
		}
	}
}

// fieldOrigin is the cell of the field's top-left corner in View.
func (m FieldModel) fieldOrigin() (x, y int) {
	return m.theme.Base.GetMarginLeft(), m.theme.Base.GetMarginTop() + lipgloss.Height(m.header())
}

func (m FieldModel) hit(x, y int) bool {
	ox, oy := m.fieldOrigin()
	cols := config.FieldCells(m.ctrl.Config().MaxLength)
	return x >= ox && x < ox+cols && y >= oy && y < oy+config.FieldRows
}

func (m FieldModel) header() string {
	return m.theme.Header.Render(fmt.Sprintf("%s v%s", config.AppName, VersionLabel()))
}

// fieldView draws the field, reusing the cached frame when nothing changed.
func (m FieldModel) fieldView() string {
	st := m.ctrl.Caret()
	caret := st.Visible && m.blink.Visible()
	f := m.frame
	if !f.dirty && f.caret == caret && f.canvas != nil {
		return f.out
	}

	cfg := m.ctrl.Config()
	cols := config.FieldCells(cfg.MaxLength)
	if f.canvas == nil || f.canvas.cols != cols {
		f.canvas = NewCanvas(cols, config.FieldRows)
	} else {
		f.canvas.Clear()
	}
	bounds := f.canvas.Bounds()
	f.canvas.Draw(m.ctrl.DrawCommands(bounds, render.CellMetrics{}))
	if caret {
		f.canvas.Draw([]render.Command{render.CaretCommand(st.Slot, cfg, bounds)})
	}
	f.out = f.canvas.Render()
	f.dirty = false
	f.caret = caret
	f.renders++
	return f.out
}

func (m FieldModel) statusView() string {
	s := m.session
	style := m.theme.Status
	switch s.verdict {
	case VerdictAccepted:
		style = m.theme.Accepted
	case VerdictRejected:
		style = m.theme.Rejected
	}
	text := s.status
	if text == "" {
		text = FormatProgress(m.ctrl.Len(), m.ctrl.Config().MaxLength)
	}
	width := config.StatusWidth
	if avail := m.width - m.theme.Base.GetHorizontalFrameSize(); m.width > 0 && avail < width {
		width = avail
	}
	return style.Render(truncateLabel(text, width))
}

func (m FieldModel) View() string {
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.fieldView(),
		m.statusView(),
		m.help.View(m.keys),
	))
}
