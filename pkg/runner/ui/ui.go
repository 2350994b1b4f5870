// Package ui is the interactive dashboard: the week grid with in-place
// hour editing, gated by the same edit policy as the CLI.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/lactivity/pkg/activity"
	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/badge"
	"tableflip.dev/lactivity/pkg/dates"
	"tableflip.dev/lactivity/pkg/ledger"
	"tableflip.dev/lactivity/pkg/policy"
	"tableflip.dev/lactivity/pkg/stats"
	"tableflip.dev/lactivity/pkg/store"
	"tableflip.dev/lactivity/pkg/tokens"
)

type mode int

const (
	modeNormal mode = iota
	modeEdit
	modeUnlock
)

type refreshMsg struct{}

type watchMsg store.Event

// Model contains the dashboard state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	events <-chan store.Event

	anchor  time.Time // any day inside the displayed week
	week    []string
	acts    activity.Catalog
	entries ledger.Ledger
	summary stats.Summary
	tokens  int
	streak  int

	row  int // day index within the week
	col  int // activity index
	mode mode

	input  textinput.Model
	status string

	termWidth  int
	termHeight int

	styles styles
}

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	today    lipgloss.Style
	locked   lipgloss.Style
	future   lipgloss.Style
	selected lipgloss.Style
	toast    lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
}

func newStyles(accent, dimmed string) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		header:   lipgloss.NewStyle().Bold(true),
		cell:     lipgloss.NewStyle(),
		today:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		locked:   lipgloss.NewStyle().Foreground(lipgloss.Color(dimmed)),
		future:   lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Reverse(true),
		toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		help:     lipgloss.NewStyle().Faint(true),
	}
}

// New creates the dashboard model. events may be nil when live refresh is
// unavailable.
func New(ctx context.Context, svc *app.Service, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "hours"
	ti.CharLimit = 6
	ti.Prompt = ""

	th, _ := svc.Theme(ctx)

	m := Model{
		svc:    svc,
		ctx:    ctx,
		events: events,
		anchor: svc.Now(),
		input:  ti,
		styles: newStyles(th.Info().Accent, th.Dimmed().Hex()),
	}
	m.refresh()
	m.row = m.todayRow()
	return m
}

func (m *Model) todayRow() int {
	today := m.svc.Today()
	for i, day := range m.week {
		if day == today {
			return i
		}
	}
	return 0
}

// refresh reloads every snapshot the view draws from. Mutations always go
// through the Service, so pulling fresh state after each one keeps the
// grid and the derived numbers in lockstep.
func (m *Model) refresh() {
	m.week = dates.Week(m.anchor)
	m.acts, _ = m.svc.Activities(m.ctx)
	m.entries, _ = m.svc.Entries(m.ctx)
	m.summary, _ = m.svc.Stats(m.ctx, m.week)
	m.tokens, _ = m.svc.TokensRemaining(m.ctx)
	m.streak = badge.Streak(m.entries.Dates())
	if len(m.acts) > 0 && m.col >= len(m.acts) {
		m.col = len(m.acts) - 1
	}
}

func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return watchMsg(ev)
	}
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	case watchMsg:
		m.refresh()
		return m, m.waitForEvent()
	case refreshMsg:
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeUnlock:
			return m.updateUnlock(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < len(m.week)-1 {
			m.row++
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
		}
	case "right", "l":
		if m.col < len(m.acts)-1 {
			m.col++
		}
	case "[":
		m.anchor = m.anchor.AddDate(0, 0, -7)
		m.refresh()
	case "]":
		m.anchor = m.anchor.AddDate(0, 0, 7)
		m.refresh()
	case "t":
		m.anchor = m.svc.Now()
		m.refresh()
		m.row = m.todayRow()
	case "enter":
		return m.beginEdit()
	}
	return m, nil
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	if len(m.acts) == 0 {
		m.status = m.styles.warn.Render("add an activity first: lactivity activity add <name>")
		return m, nil
	}
	day := m.week[m.row]
	a := m.acts[m.col]

	switch err := m.svc.Permit(day, a.ID); {
	case err == nil:
		// editable
	case errors.Is(err, policy.ErrLocked):
		m.mode = modeUnlock
		m.status = fmt.Sprintf("%s is locked, spend a token to edit? (y/n)", day)
		return m, nil
	default:
		m.status = m.styles.warn.Render("future days are immutable")
		return m, nil
	}

	m.mode = modeEdit
	if v, ok := m.entries.Day(day)[a.ID]; ok {
		m.input.SetValue(trimFloat(v))
	} else {
		m.input.SetValue("")
	}
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		day := m.week[m.row]
		a := m.acts[m.col]
		fresh, err := m.svc.LogHours(m.ctx, day, a.ID, ledger.ParseHours(m.input.Value()), false)
		m.mode = modeNormal
		m.input.Blur()
		if err != nil {
			m.status = m.styles.warn.Render(err.Error())
			return m, nil
		}
		m.refresh()
		if len(fresh) > 0 {
			if b, ok := badge.ByID(fresh[0].ID); ok {
				info := b.Info()
				m.status = m.styles.toast.Render(
					fmt.Sprintf("%s %s unlocked: %s", info.Symbol, info.Name, info.Meaning))
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		day := m.week[m.row]
		a := m.acts[m.col]
		if err := m.svc.Unlock(m.ctx, day, a.ID); err != nil {
			m.mode = modeNormal
			m.status = m.styles.warn.Render(denialMessage(err))
			m.refresh()
			return m, nil
		}
		m.mode = modeNormal
		m.refresh()
		return m.beginEdit()
	default:
		m.mode = modeNormal
		m.status = ""
		return m, nil
	}
}

// denialMessage maps policy errors to the short strings the status line
// shows; the two denial reasons stay distinguishable.
func denialMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, policy.ErrNoTokens):
		return "no tokens remaining today"
	case errors.Is(err, policy.ErrFutureDay):
		return "future days are immutable"
	default:
		return err.Error()
	}
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

func (m Model) colWidth() int {
	// Stored column size is a pixel figure from the original dashboard;
	// a tenth of it is a comfortable character width.
	px, err := m.svc.ColumnSize(m.ctx)
	if err != nil || px <= 0 {
		px = store.DefaultColumnSize
	}
	return px / 10
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Lactivity / week of %s", m.week[0])
	b.WriteString(m.styles.title.Render(title))
	b.WriteString("  ")
	b.WriteString(m.styles.help.Render(tokenPips(m.tokens)))
	b.WriteString("\n\n")

	if len(m.acts) == 0 {
		b.WriteString("no activities yet\n")
		b.WriteString(m.styles.help.Render("add one with: lactivity activity add <name>"))
		b.WriteString("\n")
		return b.String()
	}

	w := m.colWidth()
	today := m.svc.Today()

	// Header row.
	b.WriteString(pad("", 8))
	for _, a := range m.acts {
		b.WriteString(m.styles.header.Render(pad(a.Name, w)))
	}
	b.WriteString("\n")

	for i, day := range m.week {
		label := day[5:]
		if on, err := dates.Parse(day); err == nil {
			label = on.Format("Mon 02")
		}
		dayStyle := m.styles.cell
		switch policy.Classify(today, day) {
		case policy.Future:
			dayStyle = m.styles.future
		case policy.DistantPast:
			dayStyle = m.styles.locked
		default:
			if day == today {
				dayStyle = m.styles.today
			}
		}
		b.WriteString(dayStyle.Render(pad(label, 8)))

		cells := m.entries.Day(day)
		for j, a := range m.acts {
			text := "·"
			if v, ok := cells[a.ID]; ok {
				text = trimFloat(v)
			}
			if i == m.row && j == m.col {
				if m.mode == modeEdit {
					text = m.input.View()
				}
				b.WriteString(m.styles.selected.Render(pad(text, w)))
				continue
			}
			b.WriteString(dayStyle.Render(pad(text, w)))
		}

		// Per-day loss readout at the end of the row.
		if i < len(m.summary.Days) {
			if loss := m.summary.Days[i].Loss; loss > 0 {
				b.WriteString(m.styles.help.Render(fmt.Sprintf(" -%s", trimFloat(loss))))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render("↑↓←→ move · enter edit · [ ] week · t today · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSummary() string {
	s := m.summary
	eff := fmt.Sprintf("%d%%", s.Efficiency)
	line := fmt.Sprintf("%s logged · %s lost · %s efficiency · %d day streak",
		trimFloat(s.TotalLogged), trimFloat(s.TotalLoss), eff, m.streak)
	return m.styles.help.Render(line)
}

func tokenPips(count int) string {
	var b strings.Builder
	for i := 0; i < tokens.Max; i++ {
		if i < count {
			b.WriteString("● ")
		} else {
			b.WriteString("○ ")
		}
	}
	return strings.TrimSpace(b.String())
}

func pad(s string, w int) string {
	if w <= 0 {
		w = 8
	}
	if len(s) >= w {
		if w > 1 {
			return s[:w-1] + " "
		}
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}

// Run starts the dashboard over the given service.
func Run(ctx context.Context, svc *app.Service) error {
	events, err := svc.Watch(ctx)
	if err != nil {
		// Live refresh is a nicety; run without it.
		events = nil
	}

	p := tea.NewProgram(New(ctx, svc, events), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
