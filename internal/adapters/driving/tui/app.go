package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/spatial-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/spatial-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/spatial-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/spatial-cli/internal/core/domain"
)

// chromeHeight is the number of lines used around the table.
const chromeHeight = 7

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap
	table  table.Model

	// watcher is optional; nil disables live reload.
	watcher *Watcher

	zones      []domain.Zone
	entities   []domain.Entity
	members    []domain.Match
	memberZone string

	currentView messages.ViewType

	// Load errors are tracked per source so a successful reload of one
	// list does not hide a failure of another.
	zonesErr    error
	entitiesErr error
	membersErr  error
	watchErr    error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	t := table.New(
		table.WithColumns(zoneColumns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(s.Table())

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keys:        keymap.DefaultKeyMap(),
		table:       t,
		currentView: messages.ViewZones,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithWatcher reloads the tables whenever w reports a change.
func (a *App) WithWatcher(w *Watcher) *App {
	a.watcher = w
	return a
}

// Init implements tea.Model.
// It loads zones and entities when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("spatial - zones & entities"),
		a.loadZones(),
		a.loadEntities(),
	}
	if a.watcher != nil {
		cmds = append(cmds, a.watcher.Next(a.ctx))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.ZonesLoaded:
		a.zonesErr = msg.Err
		if msg.Err == nil {
			a.zones = msg.Zones
		}
		if a.currentView == messages.ViewZones {
			a.showView(messages.ViewZones)
		}
		return a, nil

	case messages.EntitiesLoaded:
		a.entitiesErr = msg.Err
		if msg.Err == nil {
			a.entities = msg.Entities
		}
		if a.currentView == messages.ViewEntities {
			a.showView(messages.ViewEntities)
		}
		return a, nil

	case messages.MembersLoaded:
		a.membersErr = msg.Err
		if msg.Err != nil {
			return a, nil
		}
		a.memberZone = msg.Zone
		a.members = msg.Matches
		a.showView(messages.ViewMembers)
		return a, nil

	case messages.ViewChanged:
		a.showView(msg.View)
		return a, nil

	case messages.StoreChanged:
		cmds := []tea.Cmd{a.loadZones(), a.loadEntities()}
		if a.currentView == messages.ViewMembers {
			cmds = append(cmds, a.loadMembers(a.memberZone))
		}
		if a.watcher != nil {
			cmds = append(cmds, a.watcher.Next(a.ctx))
		}
		return a, tea.Batch(cmds...)

	case messages.WatchFailed:
		a.watchErr = fmt.Errorf("watching registry: %w", msg.Err)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Tab):
		if a.currentView == messages.ViewZones {
			a.showView(messages.ViewEntities)
		} else {
			a.showView(messages.ViewZones)
		}
		return a, nil

	case key.Matches(msg, a.keys.Select):
		if a.currentView != messages.ViewZones {
			return a, nil
		}
		idx := a.table.Cursor()
		if idx < 0 || idx >= len(a.zones) {
			return a, nil
		}
		return a, a.loadMembers(a.zones[idx].Name)

	case key.Matches(msg, a.keys.Back):
		if a.currentView == messages.ViewMembers {
			a.showView(messages.ViewZones)
		}
		return a, nil

	case key.Matches(msg, a.keys.Refresh):
		return a, tea.Batch(a.loadZones(), a.loadEntities())
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// showView switches the table to the given view's columns and rows.
func (a *App) showView(view messages.ViewType) {
	a.currentView = view

	var cols []table.Column
	var rows []table.Row
	switch view {
	case messages.ViewEntities:
		cols, rows = entityColumns(), entityRows(a.entities)
	case messages.ViewMembers:
		cols, rows = memberColumns(), memberRows(a.members)
	default:
		a.currentView = messages.ViewZones
		cols, rows = zoneColumns(), zoneRows(a.zones)
	}

	// Rows must be cleared before the column count changes.
	a.table.SetRows(nil)
	a.table.SetColumns(cols)
	a.table.SetRows(rows)
	if len(rows) > 0 {
		a.table.SetCursor(0)
	}
}

// loadZones returns a command that loads all zones.
func (a *App) loadZones() tea.Cmd {
	return func() tea.Msg {
		zones, err := a.ports.Spatial.ListZones(a.ctx, false)
		return messages.ZonesLoaded{Zones: zones, Err: err}
	}
}

// loadEntities returns a command that loads all entities.
func (a *App) loadEntities() tea.Cmd {
	return func() tea.Msg {
		entities, err := a.ports.Spatial.ListEntities(a.ctx)
		return messages.EntitiesLoaded{Entities: entities, Err: err}
	}
}

// loadMembers returns a command that loads the entities inside a zone.
func (a *App) loadMembers(zone string) tea.Cmd {
	return func() tea.Msg {
		matches, err := a.ports.Spatial.FindEntitiesInZone(a.ctx, zone)
		return messages.MembersLoaded{Zone: zone, Matches: matches, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("spatial"))
	b.WriteString("  ")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	switch a.currentView {
	case messages.ViewMembers:
		b.WriteString(fmt.Sprintf("Entities in zone '%s' (%d)\n", a.memberZone, len(a.members)))
	case messages.ViewEntities:
		b.WriteString(fmt.Sprintf("Entities (%d)\n", len(a.entities)))
	default:
		b.WriteString(fmt.Sprintf("Zones (%d)\n", len(a.zones)))
	}

	b.WriteString(a.styles.Border.Render(a.table.View()))
	b.WriteString("\n")

	if err := a.Err(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			b.WriteString(a.styles.Error.Render("Error: " + line))
			b.WriteString("\n")
		}
	}
	b.WriteString(a.renderHelp())
	return b.String()
}

func (a *App) renderTabs() string {
	tabs := []messages.ViewType{messages.ViewZones, messages.ViewEntities}
	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		style := a.styles.TabInactive
		if tab == a.currentView || (tab == messages.ViewZones && a.currentView == messages.ViewMembers) {
			style = a.styles.TabActive
		}
		parts[i] = style.Render(tab.String())
	}
	return strings.Join(parts, " ")
}

func (a *App) renderHelp() string {
	bindings := a.keys.ShortHelp()
	parts := make([]string, len(bindings))
	for i, kb := range bindings {
		h := kb.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return a.styles.Help.Render(strings.Join(parts, " • "))
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the outstanding load and watch errors joined, or nil.
func (a *App) Err() error {
	return errors.Join(a.zonesErr, a.entitiesErr, a.membersErr, a.watchErr)
}

// Ready returns true once dimensions are known.
func (a *App) Ready() bool {
	return a.ready
}

// Rows returns the rows currently shown.
func (a *App) Rows() []table.Row {
	return a.table.Rows()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.table.SetWidth(max(width-2, 20))
	a.table.SetHeight(max(height-chromeHeight, 3))
}

func zoneColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: 16},
		{Title: "Center", Width: 24},
		{Title: "Radius", Width: 8},
		{Title: "Type", Width: 10},
		{Title: "State", Width: 8},
	}
}

func zoneRows(zones []domain.Zone) []table.Row {
	rows := make([]table.Row, len(zones))
	for i, z := range zones {
		state := "active"
		if !z.Active {
			state = "inactive"
		}
		rows[i] = table.Row{
			strconv.FormatInt(z.ID, 10),
			z.Name,
			z.Center.String(),
			strconv.FormatFloat(z.Radius, 'f', 1, 64),
			z.Type,
			state,
		}
	}
	return rows
}

func entityColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: 16},
		{Title: "Position", Width: 24},
		{Title: "Type", Width: 10},
		{Title: "Metadata", Width: 30},
	}
}

func entityRows(entities []domain.Entity) []table.Row {
	rows := make([]table.Row, len(entities))
	for i, e := range entities {
		meta, err := e.Metadata.Encode()
		if err != nil {
			meta = "?"
		}
		rows[i] = table.Row{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			e.Position.String(),
			e.Type,
			meta,
		}
	}
	return rows
}

func memberColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: 16},
		{Title: "Position", Width: 24},
		{Title: "Type", Width: 10},
		{Title: "Distance", Width: 10},
	}
}

func memberRows(matches []domain.Match) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, m := range matches {
		rows[i] = table.Row{
			strconv.FormatInt(m.Entity.ID, 10),
			m.Entity.Name,
			m.Entity.Position.String(),
			m.Entity.Type,
			strconv.FormatFloat(m.Distance, 'f', 2, 64),
		}
	}
	return rows
}
