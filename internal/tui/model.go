package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prioria/prioria/internal/engine"
	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/store"
	"github.com/prioria/prioria/internal/task"
)

// screen represents which view the TUI is showing.
type screen int

const (
	screenList screen = iota // task list dashboard (main)
	screenPlan               // generated schedule
)

// popup overlays on top of the current screen.
type popup int

const (
	popupNone popup = iota
	popupCreate
	popupReflect
	popupConfirmDelete
)

var createTypes = task.Types

var createDifficulties = []task.Difficulty{
	task.DifficultyLow,
	task.DifficultyMedium,
	task.DifficultyHigh,
}

// reflection choices, in display order.
var reflectChoices = []struct {
	Label      string
	Multiplier float64
}{
	{"rough", 0.8},
	{"normal", 1.0},
	{"smooth", 1.2},
}

// Model is the top-level bubbletea model.
type Model struct {
	store  *store.Store
	locale i18n.Locale
	width  int
	height int

	currentScreen screen
	currentPopup  popup

	// Loaded data.
	tasks   []task.Task
	pending []task.Task
	brain   task.BrainState
	rec     *engine.Recommendation

	// List state.
	cursor int

	// Create popup inputs.
	titleInput       textinput.Model
	minutesInput     textinput.Model
	inputFocused     int // 0=title, 1=minutes
	createType       int // index into createTypes
	createDifficulty int // index into createDifficulties
	createImportance int

	// Reflect popup state.
	reflectTaskID string
	reflectChoice int

	// Delete confirmation.
	deleteTaskID string

	// Plan screen.
	planItems []engine.ScheduleItem

	// Status message at the bottom.
	statusMsg string

	quitting bool
}

// New creates a new TUI model.
func New(s *store.Store, locale i18n.Locale) Model {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = 120
	ti.Width = 50

	mi := textinput.New()
	mi.Placeholder = "30"
	mi.CharLimit = 4
	mi.Width = 6

	return Model{
		store:            s,
		locale:           locale,
		currentScreen:    screenList,
		titleInput:       ti,
		minutesInput:     mi,
		createType:       1, // Comprehension
		createDifficulty: 1, // Medium
		createImportance: 3,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.refresh()
}

type dataLoadedMsg struct {
	tasks []task.Task
	brain task.BrainState
	err   error
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.store.ListTasks("")
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		brain, err := m.store.BrainState()
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{tasks: tasks, brain: brain}
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.pending) {
		m.cursor = len(m.pending) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectedTask() *task.Task {
	if m.cursor < len(m.pending) {
		t := m.pending[m.cursor]
		return &t
	}
	return nil
}
