package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prioria/prioria/internal/engine"
	"github.com/prioria/prioria/internal/task"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentPopup != popupNone {
			return m.handlePopupKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataLoadedMsg:
		if msg.err != nil {
			m.setStatus("Load failed: " + msg.err.Error())
			return m, nil
		}
		m.tasks = msg.tasks
		m.pending = task.Pending(msg.tasks)
		m.brain = msg.brain
		m.rec = engine.Recommend(m.pending, m.brain, m.locale, time.Now())
		m.clampCursor()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.currentScreen == screenList {
			m.quitting = true
			return m, tea.Quit
		}
		m.currentScreen = screenList
		return m, nil

	case "esc":
		m.currentScreen = screenList
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.handleListKey(msg)
	case screenPlan:
		return m.handlePlanKey(msg)
	}

	return m, nil
}

// --- List screen keys ---

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()

	// Complete the selected task (asks how it went first).
	case "enter", " ":
		if t := m.selectedTask(); t != nil {
			m.reflectTaskID = t.ID
			m.reflectChoice = 1 // normal
			m.currentPopup = popupReflect
		}

	// Delete.
	case "d", "x":
		if t := m.selectedTask(); t != nil {
			m.deleteTaskID = t.ID
			m.currentPopup = popupConfirmDelete
		}

	// Create.
	case "c", "ctrl+n":
		m.currentPopup = popupCreate
		m.titleInput.Reset()
		m.minutesInput.Reset()
		m.titleInput.Focus()
		m.minutesInput.Blur()
		m.inputFocused = 0
		m.createType = 1
		m.createDifficulty = 1
		m.createImportance = 3
		return m, textinput.Blink

	// Brain state adjustments.
	case "f":
		return m.adjustBrain(1, 0)
	case "F":
		return m.adjustBrain(-1, 0)
	case "m":
		return m.adjustBrain(0, 1)
	case "M":
		return m.adjustBrain(0, -1)

	// Build a two hour plan.
	case "p":
		m.planItems = engine.BuildSchedule(m.tasks, m.brain, "", m.locale, time.Now())
		m.currentScreen = screenPlan
		return m, nil

	// Refresh.
	case "R":
		return m, m.refresh()
	}

	return m, nil
}

func (m Model) adjustBrain(df, dm int) (tea.Model, tea.Cmd) {
	fatigue := clamp(m.brain.Fatigue+df, 1, 10)
	motivation := clamp(m.brain.Motivation+dm, 1, 10)
	if fatigue == m.brain.Fatigue && motivation == m.brain.Motivation {
		return m, nil
	}
	m.brain.Fatigue = fatigue
	m.brain.Motivation = motivation
	m.brain.LastUpdated = time.Now()
	if err := m.store.SaveBrainState(m.brain); err != nil {
		m.setStatus("Save failed: " + err.Error())
		return m, nil
	}
	// Recommendation depends on the brain state.
	m.rec = engine.Recommend(m.pending, m.brain, m.locale, time.Now())
	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Plan screen keys ---

func (m Model) handlePlanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace", "p":
		m.currentScreen = screenList
	}
	return m, nil
}

// --- Popup keys ---

func (m Model) handlePopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentPopup {
	case popupCreate:
		return m.handleCreatePopup(msg)
	case popupReflect:
		return m.handleReflectPopup(msg)
	case popupConfirmDelete:
		return m.handleDeletePopup(msg)
	}
	return m, nil
}

func (m Model) handleCreatePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentPopup = popupNone
		return m, nil

	case "tab":
		if m.inputFocused == 0 {
			m.titleInput.Blur()
			m.minutesInput.Focus()
			m.inputFocused = 1
		} else {
			m.minutesInput.Blur()
			m.titleInput.Focus()
			m.inputFocused = 0
		}
		return m, textinput.Blink

	case "ctrl+t":
		m.createType = (m.createType + 1) % len(createTypes)
		return m, nil

	case "ctrl+d":
		m.createDifficulty = (m.createDifficulty + 1) % len(createDifficulties)
		return m, nil

	case "ctrl+p":
		m.createImportance++
		if m.createImportance > 5 {
			m.createImportance = 1
		}
		return m, nil

	case "enter":
		title := m.titleInput.Value()
		if title == "" {
			m.setStatus("Title cannot be empty")
			return m, nil
		}
		minutes := 30
		if v := m.minutesInput.Value(); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				m.setStatus("Minutes must be a positive number")
				return m, nil
			}
			minutes = n
		}

		typ := createTypes[m.createType]
		difficulty := createDifficulties[m.createDifficulty]
		now := time.Now()
		t := task.Task{
			ID:               task.NewID(),
			Title:            title,
			EstimatedMinutes: minutes,
			Type:             typ,
			Difficulty:       difficulty,
			Importance:       m.createImportance,
			CognitiveLoad:    engine.Load(typ, difficulty, minutes),
			Status:           task.StatusPending,
			CreatedAt:        now,
			Recurrence:       task.RecurrenceNone,
		}
		if err := m.store.CreateTask(t); err != nil {
			m.setStatus("Error: " + err.Error())
			return m, nil
		}
		m.currentPopup = popupNone
		m.setStatus("Created: " + title)
		return m, m.refresh()
	}

	var cmd tea.Cmd
	if m.inputFocused == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.minutesInput, cmd = m.minutesInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleReflectPopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentPopup = popupNone
		return m, nil

	case "h", "left":
		if m.reflectChoice > 0 {
			m.reflectChoice--
		}
	case "l", "right":
		if m.reflectChoice < len(reflectChoices)-1 {
			m.reflectChoice++
		}
	case "1", "2", "3":
		m.reflectChoice = int(msg.String()[0] - '1')

	case "enter":
		m.currentPopup = popupNone
		return m.completeTask(m.reflectTaskID, reflectChoices[m.reflectChoice].Multiplier)
	}
	return m, nil
}

func (m Model) completeTask(id string, multiplier float64) (tea.Model, tea.Cmd) {
	t, err := m.store.GetTask(id)
	if err != nil {
		m.setStatus("Error: " + err.Error())
		return m, nil
	}

	now := time.Now()
	t.Complete(now)
	if err := m.store.UpdateTask(*t); err != nil {
		m.setStatus("Error: " + err.Error())
		return m, nil
	}

	before := m.brain.Level
	gained := task.CompletionXP(*t, multiplier)
	m.brain.AddXP(gained, now)
	if err := m.store.SaveBrainState(m.brain); err != nil {
		m.setStatus("Error: " + err.Error())
		return m, nil
	}

	if m.brain.Level > before {
		m.setStatus("✓ " + t.Title + "  +" + strconv.Itoa(gained) + " XP  ⬆ Level " + strconv.Itoa(m.brain.Level) + "!")
	} else {
		m.setStatus("✓ " + t.Title + "  +" + strconv.Itoa(gained) + " XP")
	}
	return m, m.refresh()
}

func (m Model) handleDeletePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.currentPopup = popupNone
		if err := m.store.DeleteTask(m.deleteTaskID); err != nil {
			m.setStatus("Error: " + err.Error())
			return m, nil
		}
		m.setStatus("Deleted.")
		return m, m.refresh()
	case "n", "esc":
		m.currentPopup = popupNone
	}
	return m, nil
}
