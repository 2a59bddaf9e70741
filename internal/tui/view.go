package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prioria/prioria/internal/engine"
	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/task"
)

// --- Color palette ---
var (
	clrSubtle    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#666666"}
	clrHighlight = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}
	clrGreen     = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	clrYellow    = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	clrRed       = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	clrBlue      = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	clrCyan      = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	clrDim       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#555555"}
)

// --- Styles ---
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(clrHighlight)
	dimStyle    = lipgloss.NewStyle().Foreground(clrDim)
	subtleStyle = lipgloss.NewStyle().Foreground(clrSubtle)

	recBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clrHighlight).
			Padding(0, 1)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clrHighlight).
			Padding(1, 2).
			Width(60)

	statusStyle = lipgloss.NewStyle().Foreground(clrGreen).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(clrRed).Bold(true)

	footerKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(clrHighlight)
	footerDescStyle = lipgloss.NewStyle().Foreground(clrSubtle)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.currentScreen {
	case screenList:
		content = m.viewList()
	case screenPlan:
		content = m.viewPlan()
	}

	if m.currentPopup != popupNone {
		content = m.overlayPopup(content)
	}

	return content
}

// ════════════════════════════════════════════════
// LIST VIEW — main dashboard
// ════════════════════════════════════════════════

func (m Model) viewList() string {
	var b strings.Builder

	// Header: app name, level and brain gauges.
	header := titleStyle.Render("prioria")
	header += dimStyle.Render(fmt.Sprintf(" — %d tasks", len(m.pending)))
	header += "   " + subtleStyle.Render(fmt.Sprintf("Lv %d (%d XP)", m.brain.Level, m.brain.XP))

	rightHelp := footerKeyStyle.Render("c") + footerDescStyle.Render(" new  ") +
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit")

	headerLine := header
	if m.width > 0 {
		pad := m.width - lipgloss.Width(header) - lipgloss.Width(rightHelp)
		if pad > 0 {
			headerLine = header + strings.Repeat(" ", pad) + rightHelp
		}
	}
	b.WriteString(headerLine + "\n")

	b.WriteString("  " + subtleStyle.Render("fatigue    ") + gaugeBar(m.brain.Fatigue, clrRed) +
		subtleStyle.Render(fmt.Sprintf(" %d", m.brain.Fatigue)) + "\n")
	b.WriteString("  " + subtleStyle.Render("motivation ") + gaugeBar(m.brain.Motivation, clrGreen) +
		subtleStyle.Render(fmt.Sprintf(" %d", m.brain.Motivation)) + "\n\n")

	// Recommendation box.
	if m.rec != nil {
		if rt := m.taskByID(m.rec.TaskID); rt != nil {
			var rb strings.Builder
			rb.WriteString(lipgloss.NewStyle().Bold(true).Render("▶ "+rt.Title) + "\n")
			rb.WriteString(m.rec.Reasoning + "\n")
			rb.WriteString(lipgloss.NewStyle().Foreground(clrGreen).Render(m.rec.SuggestedAction))
			b.WriteString(recBoxStyle.Render(rb.String()) + "\n\n")
		}
	} else {
		b.WriteString(dimStyle.Render("  "+i18n.T(m.locale).NoRecommendation) + "\n\n")
	}

	// Task list.
	if len(m.pending) == 0 {
		b.WriteString(dimStyle.Render("  No pending tasks. Press ") +
			footerKeyStyle.Render("c") +
			dimStyle.Render(" to create one.\n"))
	} else {
		for i, t := range m.pending {
			b.WriteString(m.renderTaskLine(t, i == m.cursor) + "\n")
		}
	}

	// Status bar.
	if m.statusMsg != "" {
		b.WriteString("\n")
		lower := strings.ToLower(m.statusMsg)
		if strings.HasPrefix(lower, "error") || strings.HasPrefix(lower, "load failed") || strings.HasPrefix(lower, "save failed") {
			b.WriteString(errorStyle.Render("  " + m.statusMsg))
		} else {
			b.WriteString(statusStyle.Render("  " + m.statusMsg))
		}
	}

	b.WriteString("\n")
	keys := []struct{ key, desc string }{
		{"↑↓", "navigate"},
		{"enter", "complete"},
		{"d", "delete"},
		{"c", "new task"},
		{"f/F", "fatigue"},
		{"m/M", "motivation"},
		{"p", "plan"},
		{"R", "refresh"},
	}
	b.WriteString(renderFooter(keys))

	return b.String()
}

func (m Model) renderTaskLine(t task.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = lipgloss.NewStyle().Foreground(clrHighlight).Render("▸ ")
	}

	loadStyle := lipgloss.NewStyle().Foreground(clrGreen)
	if t.CognitiveLoad > 6 {
		loadStyle = lipgloss.NewStyle().Foreground(clrRed)
	} else if t.CognitiveLoad > 3 {
		loadStyle = lipgloss.NewStyle().Foreground(clrYellow)
	}
	load := loadStyle.Render(fmt.Sprintf("◆%d", t.CognitiveLoad))

	title := truncate(t.Title, 40)
	if selected {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}

	meta := dimStyle.Render(fmt.Sprintf("%s · %dm · imp %d", t.Type, t.EstimatedMinutes, t.Importance))

	line := fmt.Sprintf("  %s%s %-42s %s", cursor, load, title, meta)

	if t.Deadline != nil {
		line += "  " + lipgloss.NewStyle().Foreground(clrYellow).Render("⏰ "+t.Deadline.Format("01-02 15:04"))
	}
	if t.Recurrence == task.RecurrenceDaily || t.Recurrence == task.RecurrenceWeekly {
		line += dimStyle.Render(" ↻")
	}
	if len(t.Subtasks) > 0 {
		done := 0
		for _, st := range t.Subtasks {
			if st.Completed {
				done++
			}
		}
		line += dimStyle.Render(fmt.Sprintf(" [%d/%d]", done, len(t.Subtasks)))
	}

	return line
}

func (m Model) taskByID(id string) *task.Task {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return &m.tasks[i]
		}
	}
	return nil
}

func gaugeBar(value int, color lipgloss.AdaptiveColor) string {
	const width = 10
	if value < 0 {
		value = 0
	}
	if value > width {
		value = width
	}
	filled := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▰", value))
	empty := dimStyle.Render(strings.Repeat("▱", width-value))
	return filled + empty
}

// ════════════════════════════════════════════════
// PLAN VIEW
// ════════════════════════════════════════════════

func (m Model) viewPlan() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T(m.locale).PlanHeader))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("esc back"))
	b.WriteString("\n\n")

	if len(m.planItems) == 0 {
		b.WriteString(dimStyle.Render("  " + i18n.T(m.locale).NoTasks + "\n"))
	}

	for _, item := range m.planItems {
		var style lipgloss.Style
		switch item.Kind {
		case engine.ItemBreak:
			style = lipgloss.NewStyle().Foreground(clrBlue)
		case engine.ItemBuffer:
			style = dimStyle
		default:
			style = lipgloss.NewStyle()
		}
		line := fmt.Sprintf("  %s  %-40s %3d min",
			lipgloss.NewStyle().Foreground(clrCyan).Render(item.Time),
			truncate(item.Activity, 40), item.Duration)
		b.WriteString(style.Render(line))
		if item.Note != "" {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(clrYellow).Render(item.Note))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + dimStyle.Render("  "+i18n.T(m.locale).PlanNote) + "\n\n")

	keys := []struct{ key, desc string }{
		{"esc", "back"},
	}
	b.WriteString(renderFooter(keys))

	return b.String()
}

// ════════════════════════════════════════════════
// POPUPS
// ════════════════════════════════════════════════

func (m Model) overlayPopup(bg string) string {
	var popupView string

	switch m.currentPopup {
	case popupCreate:
		popupView = m.viewCreatePopup()
	case popupReflect:
		popupView = m.viewReflectPopup()
	case popupConfirmDelete:
		popupView = m.viewDeletePopup()
	default:
		return bg
	}

	// Place popup in center of screen.
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			popupView,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	return popupView
}

func (m Model) viewCreatePopup() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(clrHighlight).Render("New Task") + "\n\n")

	b.WriteString("Title:\n")
	b.WriteString(m.titleInput.View() + "\n\n")

	b.WriteString("Minutes:\n")
	b.WriteString(m.minutesInput.View() + "\n\n")

	typ := createTypes[m.createType]
	difficulty := createDifficulties[m.createDifficulty]
	b.WriteString(fmt.Sprintf("Type: %s   Difficulty: %s   Importance: %d\n\n",
		lipgloss.NewStyle().Foreground(clrCyan).Render(string(typ)),
		lipgloss.NewStyle().Foreground(clrYellow).Render(string(difficulty)),
		m.createImportance))

	b.WriteString(footerDescStyle.Render("enter create • tab switch • ctrl+t type • ctrl+d difficulty • ctrl+p importance • esc cancel"))

	return m.popupBoxStyle().Render(b.String())
}

func (m Model) viewReflectPopup() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(clrGreen).Render("Complete Task") + "\n\n")

	if t := m.taskByID(m.reflectTaskID); t != nil {
		b.WriteString(t.Title + "\n\n")
	}
	b.WriteString("How did it go?\n\n")

	for i, c := range reflectChoices {
		label := fmt.Sprintf(" %s ", c.Label)
		if i == m.reflectChoice {
			label = lipgloss.NewStyle().Bold(true).Foreground(clrHighlight).Render("[" + c.Label + "]")
		} else {
			label = dimStyle.Render(label)
		}
		b.WriteString(label + "  ")
	}
	b.WriteString("\n\n")
	b.WriteString(footerDescStyle.Render("←→ choose • enter confirm • esc cancel"))

	return m.popupBoxStyle().Render(b.String())
}

func (m Model) viewDeletePopup() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(clrRed).Render("Delete Task") + "\n\n")

	if t := m.taskByID(m.deleteTaskID); t != nil {
		b.WriteString(t.Title + "\n\n")
	}
	b.WriteString("This cannot be undone.\n\n")
	b.WriteString(footerKeyStyle.Render("y") + footerDescStyle.Render(" confirm  ") +
		footerKeyStyle.Render("n") + footerDescStyle.Render(" cancel"))

	return m.popupBoxStyle().Render(b.String())
}

func (m Model) popupBoxStyle() lipgloss.Style {
	w := 60
	if m.width > 0 {
		w = m.width - 12
		if w < 42 {
			w = 42
		}
		if w > 84 {
			w = 84
		}
	}
	return popupStyle.Width(w)
}

// ════════════════════════════════════════════════
// SHARED HELPERS
// ════════════════════════════════════════════════

func renderFooter(keys []struct{ key, desc string }) string {
	var parts []string
	for _, k := range keys {
		key := footerKeyStyle.Render(k.key)
		desc := footerDescStyle.Render(k.desc)
		parts = append(parts, key+" "+desc)
	}
	return "  " + strings.Join(parts, "  ")
}

func truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
