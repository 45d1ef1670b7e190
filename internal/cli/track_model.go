package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/taskmaster/internal/cli/formatter"
	"github.com/alexanderramin/taskmaster/internal/views"
	"github.com/alexanderramin/taskmaster/internal/workspace"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type trackKeyMap struct {
	PrevTask key.Binding
	NextTask key.Binding
	Up       key.Binding
	Down     key.Binding
	Cycle    key.Binding
	Overview key.Binding
	Delete   key.Binding
	Save     key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultTrackKeys() trackKeyMap {
	return trackKeyMap{
		PrevTask: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev task")),
		NextTask: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next task")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Cycle:    key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "cycle grade")),
		Overview: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete task")),
		Save:     key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "save")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k trackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.PrevTask, k.NextTask, k.Overview, k.Save, k.Quit, k.Help}
}

func (k trackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Cycle},
		{k.PrevTask, k.NextTask, k.Delete},
		{k.Overview, k.Back, k.Save, k.Quit},
	}
}

type trackMode int

const (
	modeTrack trackMode = iota
	modeOverview
	modeConfirmDelete
)

// trackModel is the full-screen grade tracker: one task at a time, one row
// per student, grades cycled in place.
type trackModel struct {
	ws   *workspace.Workspace
	save func() error
	keys trackKeyMap
	help help.Model

	mode      trackMode
	cursor    int
	quitArmed bool
	quitting  bool
	status    string
	statusErr bool
	width     int
}

func newTrackModel(ws *workspace.Workspace, save func() error) trackModel {
	return trackModel{
		ws:   ws,
		save: save,
		keys: defaultTrackKeys(),
		help: help.New(),
	}
}

func (m trackModel) Init() tea.Cmd { return nil }

func (m trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m trackModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmDelete {
		return m.confirmDelete(msg), nil
	}

	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) {
		if m.ws.Dirty() && !m.quitArmed {
			m.quitArmed = true
			m.setError("Unsaved changes. Press q again to discard them, or s to save.")
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	m.quitArmed = false

	switch {
	case key.Matches(msg, m.keys.Save):
		m.doSave()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Overview):
		if m.mode == modeOverview {
			m.mode = modeTrack
		} else {
			m.mode = modeOverview
		}
	case key.Matches(msg, m.keys.Back):
		m.mode = modeTrack
	case m.mode == modeOverview:
		// Overview is read-only.
	case key.Matches(msg, m.keys.PrevTask):
		m.stepTask(-1)
	case key.Matches(msg, m.keys.NextTask):
		m.stepTask(1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, max(len(m.ws.CurrentClass().Students)-1, 0))
	case key.Matches(msg, m.keys.Cycle):
		m.cycle()
	case key.Matches(msg, m.keys.Delete):
		if t := m.ws.ActiveTask(); t != nil {
			m.mode = modeConfirmDelete
			m.setStatus(fmt.Sprintf("Delete %q and all its grades? (y/n)", t.Name))
		}
	}
	return m, nil
}

func (m trackModel) confirmDelete(msg tea.KeyMsg) trackModel {
	m.mode = modeTrack
	t := m.ws.ActiveTask()
	if t == nil {
		return m
	}
	if s := msg.String(); s != "y" && s != "Y" {
		m.setStatus("Delete cancelled.")
		return m
	}
	name := t.Name
	if err := m.ws.DeleteTask(t.ID); err != nil {
		m.setError(err.Error())
		return m
	}
	m.setStatus(fmt.Sprintf("Deleted %q.", name))
	return m
}

func (m *trackModel) stepTask(delta int) {
	c := m.ws.CurrentClass()
	if c == nil || len(c.Tasks) == 0 {
		return
	}
	idx := 0
	for i, t := range c.Tasks {
		if t.ID == m.ws.ActiveTaskID() {
			idx = i
			break
		}
	}
	idx = min(max(idx+delta, 0), len(c.Tasks)-1)
	_ = m.ws.SelectTask(c.Tasks[idx].ID)
}

func (m *trackModel) cycle() {
	c := m.ws.CurrentClass()
	if c == nil || m.cursor >= len(c.Students) {
		return
	}
	s := c.Students[m.cursor]
	g, err := m.ws.CycleGrade(s.ID)
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.setStatus(fmt.Sprintf("%s → %s", s.Name, g.Label()))
}

func (m *trackModel) doSave() {
	if err := m.save(); err != nil {
		m.setError("Save failed: " + err.Error())
		return
	}
	m.setStatus("Saved.")
}

func (m *trackModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *trackModel) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m trackModel) View() string {
	if m.quitting {
		return ""
	}
	c := m.ws.CurrentClass()
	if c == nil {
		return formatter.Dim(formatter.EmptyMessage(views.ReasonNoClass)) + "\n"
	}

	var b strings.Builder
	if m.mode == modeOverview {
		b.WriteString(formatter.FormatMatrix(c.Name, m.ws.Overview()))
	} else {
		b.WriteString(m.renderTracking(c.Name))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m trackModel) renderTracking(className string) string {
	tr := m.ws.Tracking()

	var b strings.Builder
	title := formatter.Header(className)
	if m.ws.Dirty() {
		title += "  " + formatter.StyleYellow.Render("● unsaved")
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	switch tr.Empty {
	case views.ReasonNoTasks, views.ReasonNoStudents:
		b.WriteString(formatter.Dim(formatter.EmptyMessage(tr.Empty)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(renderTaskTabs(tr))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Graded ") + formatter.RenderProgress(views.Progress(m.ws.CurrentClass(), tr.Active.ID), 20))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, card := range tr.Cards {
		nameWidth = max(nameWidth, lipgloss.Width(card.Name))
	}
	for i, card := range tr.Cards {
		cursor := "  "
		name := card.Name
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			name = formatter.Bold(name)
		}
		pad := strings.Repeat(" ", nameWidth-lipgloss.Width(card.Name)+2)
		b.WriteString(cursor + name + pad + formatter.GradeBadge(card.Grade) + "\n")
	}
	return b.String()
}

func renderTaskTabs(tr views.Tracking) string {
	tabs := make([]string, 0, len(tr.Tasks))
	for _, t := range tr.Tasks {
		name := formatter.Truncate(t.Name, formatter.MaxHeaderRunes)
		if tr.Active != nil && t.ID == tr.Active.ID {
			tabs = append(tabs, formatter.StyleHeader.Render("["+name+"]"))
			continue
		}
		tabs = append(tabs, formatter.Dim(" "+name+" "))
	}
	return strings.Join(tabs, " ")
}

func (m trackModel) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return formatter.StyleRed.Render(m.status)
	}
	return formatter.StyleGreen.Render(m.status)
}
