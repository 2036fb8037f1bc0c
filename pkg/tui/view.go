package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
)

const minWidth = 60
const minHeight = 16

const (
	headerLines = 3 // title, gauges, separator
	commsLines  = 5 // separator, log
	footerLines = 2 // separator, help
)

// View implements tea.Model.
func (m Model) View() string {
	w := m.width
	h := m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	switch {
	case m.showHelpModal:
		return placeOverlay(m.renderHelpModal(), w, h)
	case m.showTools:
		return placeOverlay(m.renderToolsModal(), w, h)
	case m.showLevels:
		return placeOverlay(m.renderLevelsModal(), w, h)
	case m.showAchievements:
		return placeOverlay(m.renderAchievementsModal(), w, h)
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(w))
	b.WriteString("\n")
	b.WriteString(m.renderGauges(w))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	contentHeight := m.contentHeight()
	leftWidth := m.leftWidth()
	rightWidth := m.rightWidth()

	leftPanel := m.renderBodyPanel(leftWidth, contentHeight)
	rightPanel := DetailPanelStyle.Render(m.detail.View())

	sepColor := ColorGrayDim
	if m.focusedPane == 1 {
		sepColor = ColorPurple
	}
	sep := lipgloss.NewStyle().Foreground(sepColor).Render("│")
	for i := 0; i < contentHeight; i++ {
		b.WriteString(getLine(leftPanel, i, leftWidth))
		b.WriteString(sep)
		b.WriteString(getLine(rightPanel, i, rightWidth))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")
	b.WriteString(m.renderComms(w, commsLines-1))

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(w))

	return b.String()
}

func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render("🚀 Cosmic Explorer")
	if l, ok := m.cat.Level(m.snap.Level); ok {
		title += " " + LevelBadgeStyle.Render(l.Name)
	}
	switch m.snap.Status {
	case mission.StatusFailed:
		title += " " + FailedBannerStyle.Render("MISSION FAILED")
	case mission.StatusComplete:
		title += " " + CompleteBannerStyle.Render("MISSION COMPLETE")
	}

	stats := HeaderCountStyle.Render(fmt.Sprintf("score %d  %d tasks done",
		m.snap.Score, len(m.snap.CompletedTasks)))

	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = "  " + StatusStyle.Render(m.statusMsg)
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(stats) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + status + stats
}

func (m Model) renderGauges(width int) string {
	fuel := float64(m.snap.Fuel) / mission.MaxLevel
	health := float64(m.snap.Health) / mission.MaxLevel

	var b strings.Builder
	b.WriteString(ModalLabelStyle.Width(0).Render("Fuel "))
	b.WriteString(m.fuelBar.ViewAs(fuel))
	b.WriteString(fmt.Sprintf(" %3d   ", m.snap.Fuel))
	b.WriteString(ModalLabelStyle.Width(0).Render("Health "))
	b.WriteString(m.healthBar.ViewAs(health))
	b.WriteString(fmt.Sprintf(" %3d   ", m.snap.Health))
	b.WriteString("📍 " + bodyName(m.cat, m.snap.CurrentLocation))
	if m.snap.Traveling() {
		b.WriteString(" " + m.spinner.View() + " " + IconTraveling + " " + bodyName(m.cat, m.snap.TravelingTo))
	}
	if n := len(m.snap.Scanning); n > 0 {
		b.WriteString(fmt.Sprintf("   📡 %d scan(s)", n))
	}

	line := b.String()
	if lipgloss.Width(line) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

func (m Model) renderBodyPanel(width, height int) string {
	var lines []string
	lines = append(lines, SectionStyle.Render(" Bodies"))

	for i, it := range m.items {
		label := fmt.Sprintf(" %s %s %s", it.Marker(), it.Body.Emoji, it.Body.Name)
		suffix := ""
		if it.Body.Hazard != content.HazardNone {
			suffix += " " + IconHazard
		}
		if it.Scanning {
			suffix += " 📡"
		}
		if it.Reachable {
			suffix += fmt.Sprintf(" %d", it.Cost)
		}

		if i == m.cursor && m.focusedPane == 0 {
			lines = append(lines, SelectedStyle.Width(width).Render(label+suffix))
			continue
		}

		style := UnreachableStyle
		switch {
		case it.Current, it.Target:
			style = CurrentStyle
		case it.Reachable:
			style = ReachableStyle
		case it.Visited:
			style = VisitedStyle
		}
		row := style.Render(label)
		if it.Body.Hazard != content.HazardNone {
			row += HazardStyle.Render(" " + IconHazard)
		}
		if it.Scanning {
			row += " 📡"
		}
		if it.Reachable {
			row += CostStyle.Render(fmt.Sprintf(" %d", it.Cost))
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", SectionStyle.Render(" Tasks"))
	for _, name := range taskNames(m.cat, m.snap.AvailableTasks) {
		lines = append(lines, NormalStyle.Render(" "+IconTask+" "+name))
	}
	if n := len(m.snap.CompletedTasks); n > 0 {
		lines = append(lines, VisitedStyle.Render(fmt.Sprintf(" %s %d completed", IconDone, n)))
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderComms(width, height int) string {
	start := len(m.comms) - height
	if start < 0 {
		start = 0
	}
	recent := m.comms[start:]

	var b strings.Builder
	for i := 0; i < height; i++ {
		line := ""
		if i < len(recent) {
			style := CommsDimStyle
			if i == len(recent)-1 {
				style = CommsStyle
			}
			line = style.MaxWidth(width).Render(recent[i])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter(width int) string {
	help := m.keys.ShortHelp()
	if m.next != nil {
		help = "content changed, r to reload  " + help
	}
	if lipgloss.Width(help) > width {
		help = lipgloss.NewStyle().MaxWidth(width).Render(help)
	}
	return FooterStyle.Render(help)
}

func (m Model) renderHelpModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(ColorBlue).Width(16)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	for _, binding := range m.keys.FullHelp() {
		b.WriteString(keyStyle.Render(binding[0]))
		b.WriteString(descStyle.Render(binding[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ModalLabelStyle.Render("Content"))
	b.WriteString(ModalValueStyle.Render(fileHyperlink(m.store.Root)))
	b.WriteString("\n\n")
	b.WriteString(FooterStyle.Render("Press Esc or ? to close"))

	return ModalStyle.Render(b.String())
}

func (m Model) renderToolsModal() string {
	var b strings.Builder

	target := ""
	if it, ok := m.selected(); ok {
		target = it.Body.Name
	}
	b.WriteString(ModalTitleStyle.Render("Observe " + target))
	b.WriteString("\n\n")

	for i, t := range m.tools {
		mark := "  "
		if t.Recommended {
			mark = "★ "
		}
		line := fmt.Sprintf("%s%-24s %d fuel", mark, t.Tool.Name, t.Tool.FuelCost)
		style := NormalStyle
		if !t.Affordable {
			style = UnreachableStyle
		}
		if i == m.toolCursor {
			style = SelectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.toolCursor < len(m.tools) {
		b.WriteString("\n")
		b.WriteString(CommsDimStyle.Render(m.tools[m.toolCursor].Tool.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("↑↓ select  enter scan  esc cancel  ★ recommended"))

	return ModalStyle.Render(b.String())
}

func (m Model) renderLevelsModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Levels"))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		icon := "  "
		switch {
		case l.Completed:
			icon = IconDone + " "
		case !l.Unlocked:
			icon = IconLocked
		}
		line := fmt.Sprintf("%s %s", icon, l.Level.Name)
		style := NormalStyle
		if !l.Unlocked {
			style = UnreachableStyle
		}
		if i == m.levelCursor {
			style = SelectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.levelCursor < len(m.levels) {
		l := m.levels[m.levelCursor].Level
		b.WriteString("\n")
		b.WriteString(ModalValueStyle.Render(l.Description))
		b.WriteString("\n")
		for _, o := range l.Objectives {
			b.WriteString(CommsDimStyle.Render("  " + IconTask + " " + o))
			b.WriteString("\n")
		}
		if l.Duration != "" {
			b.WriteString(ModalLabelStyle.Render("Duration"))
			b.WriteString(ModalValueStyle.Render(l.Duration))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("↑↓ select  enter play  esc cancel"))

	return ModalStyle.Render(b.String())
}

func (m Model) renderAchievementsModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Achievements"))
	b.WriteString("\n\n")

	earned := make(map[string]bool)
	for _, id := range m.snap.Achievements {
		earned[id] = true
	}
	for _, a := range m.cat.Achievements {
		if earned[a.ID] {
			b.WriteString(VisitedStyle.Render(fmt.Sprintf("%s %s", a.Icon, a.Name)))
			b.WriteString(CostStyle.Render(fmt.Sprintf("  +%d", a.Points)))
		} else {
			b.WriteString(UnreachableStyle.Render(fmt.Sprintf("%s %s", IconLocked, a.Name)))
		}
		b.WriteString("\n")
		b.WriteString(CommsDimStyle.Render("   " + a.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ModalTitleStyle.Render("Knowledge"))
	b.WriteString("\n")
	if len(m.snap.Knowledge) == 0 {
		b.WriteString(CommsDimStyle.Render("Complete tasks to learn about the solar system."))
		b.WriteString("\n")
	}
	for _, k := range m.snap.Knowledge {
		b.WriteString(ModalValueStyle.Render("📚 " + k))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("Press Esc or a to close"))

	return ModalStyle.Render(b.String())
}

// detailMarkdown builds the detail page for a body: route status, local
// tasks, hints and the lesson.
func detailMarkdown(cat *content.Catalog, it BodyItem, s mission.Snapshot) string {
	var b strings.Builder
	body := it.Body

	fmt.Fprintf(&b, "# %s %s\n\n", body.Emoji, body.Name)
	switch {
	case it.Current:
		b.WriteString("📍 **You are here.**\n\n")
	case it.Target:
		b.WriteString("🚀 **En route.**\n\n")
	case it.Reachable:
		fmt.Fprintf(&b, "**Route:** %d fuel from %s\n\n", it.Cost, bodyName(cat, s.CurrentLocation))
	default:
		fmt.Fprintf(&b, "**No direct route** from %s.\n\n", bodyName(cat, s.CurrentLocation))
	}
	if body.Warning != "" {
		fmt.Fprintf(&b, "> ⚠️ %s\n\n", body.Warning)
	}
	for _, d := range body.Description {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	if len(body.Description) > 0 {
		b.WriteString("\n")
	}

	var tasks []string
	for _, id := range s.AvailableTasks {
		t, ok := cat.Task(id)
		if !ok {
			continue
		}
		if t.Target == body.ID {
			tasks = append(tasks, fmt.Sprintf("- %s %s", t.Name, rewardText(t.Reward)))
			continue
		}
		for _, o := range cat.Observations {
			if o.Body == body.ID && o.CompletesTask == id {
				tasks = append(tasks, fmt.Sprintf("- %s: observe with %s %s", t.Name, toolName(cat, o.Tool), rewardText(t.Reward)))
			}
		}
	}
	if len(tasks) > 0 {
		b.WriteString("## Tasks here\n\n")
		b.WriteString(strings.Join(tasks, "\n"))
		b.WriteString("\n\n")
	}

	if len(body.Suggestions) > 0 {
		b.WriteString("## Suggestions\n\n")
		for _, sg := range body.Suggestions {
			fmt.Fprintf(&b, "- %s\n", sg)
		}
		b.WriteString("\n")
	}

	if l, ok := cat.Lesson(body.ID); ok {
		b.WriteString("---\n\n")
		b.WriteString(l.Markdown())
	}
	return b.String()
}

// fileHyperlink wraps a path in an OSC 8 terminal hyperlink.
func fileHyperlink(path string) string {
	url := "file://" + path
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s\x1b]8;;\x1b\\", url, path)
}

// getLine extracts line at index from a multi-line string, padded to width.
func getLine(block string, idx int, width int) string {
	lines := strings.Split(block, "\n")
	if idx < len(lines) {
		line := lines[idx]
		lineWidth := lipgloss.Width(line)
		if lineWidth < width {
			return line + strings.Repeat(" ", width-lineWidth)
		}
		return line
	}
	return strings.Repeat(" ", width)
}

// placeOverlay centers a modal on screen.
func placeOverlay(modal string, width, height int) string {
	modalLines := strings.Split(modal, "\n")

	topPadding := (height - len(modalLines)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	leftPadding := (width - lipgloss.Width(modalLines[0])) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}

	var result strings.Builder
	for i := 0; i < topPadding; i++ {
		result.WriteString("\n")
	}

	for _, line := range modalLines {
		result.WriteString(strings.Repeat(" ", leftPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}
