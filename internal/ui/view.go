package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/soundsphere/internal/playback"
)

// playerBarHeight is the rendered height of the player bar: top border,
// two content rows and bottom border.
const playerBarHeight = 4

const (
	playSymbol    = "▶"
	pauseSymbol   = "⏸"
	loadingSymbol = "…"
	filledBlock   = "▓"
	emptyBlock    = "░"
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.renderPlayerBar())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

func (m Model) renderPlayerBar() string {
	innerWidth := max(m.width-4, 0)

	var line1, line2 string
	if m.snap.CurrentTrack == nil {
		line1 = dimStyle.Render("Nothing playing")
		line2 = ""
	} else {
		line1 = m.renderNowPlaying(innerWidth)
		line2 = renderProgress(m.snap, innerWidth)
	}

	content := " " + padLine(line1, innerWidth) + " \n " + padLine(line2, innerWidth) + " "
	return playerBarStyle.Width(innerWidth + 2).Render(content)
}

func (m Model) renderNowPlaying(width int) string {
	t := m.snap.CurrentTrack

	status := playSymbol
	switch m.snap.State {
	case playback.StateLoading:
		status = loadingSymbol
	case playback.StatePaused, playback.StateIdle:
		status = pauseSymbol
	}

	right := m.renderModes()
	rightWidth := lipgloss.Width(right)

	left := status + "  " + titleStyle.Render(t.Title)
	info := "  " + t.Artist + " · " + t.Album
	leftWidth := width - rightWidth - 2

	line := left + dimStyle.Render(info)
	if lipgloss.Width(line) > leftWidth {
		plain := status + "  " + t.Title + info
		line = runewidth.Truncate(plain, leftWidth, "…")
	}

	gap := max(width-lipgloss.Width(line)-rightWidth, 1)
	return line + strings.Repeat(" ", gap) + right
}

// renderModes builds the right-hand cluster: volume, shuffle and repeat.
func (m Model) renderModes() string {
	parts := []string{fmt.Sprintf("vol %3d%%", int(m.snap.Volume*100))}
	if m.snap.Shuffle {
		parts = append(parts, "shuffle")
	}
	switch m.snap.RepeatMode {
	case playback.RepeatOne:
		parts = append(parts, "repeat one")
	case playback.RepeatAll:
		parts = append(parts, "repeat all")
	}
	return dimStyle.Render(strings.Join(parts, "  "))
}

// renderProgress renders "1:23  ▓▓▓░░░  4:56" sized to width.
func renderProgress(snap playback.Snapshot, width int) string {
	posStr := formatDuration(snap.Position)
	durStr := formatDuration(snap.Duration)

	barWidth := width - lipgloss.Width(posStr) - lipgloss.Width(durStr) - 4
	if barWidth < 3 {
		return posStr + " / " + durStr
	}

	var ratio float64
	if snap.Duration > 0 {
		ratio = float64(snap.Position) / float64(snap.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	bar := progressFilledStyle.Render(strings.Repeat(filledBlock, filled)) +
		progressEmptyStyle.Render(strings.Repeat(emptyBlock, barWidth-filled))

	return posStr + "  " + bar + "  " + durStr
}

func (m Model) renderStatusLine() string {
	if m.prompt != promptNone {
		label := "New playlist: "
		switch m.prompt {
		case promptRename:
			label = "Rename: "
		case promptSearch:
			label = "Search: "
		}
		return label + m.input.View()
	}
	if m.status != "" {
		return m.status
	}
	return dimStyle.Render("enter play · space pause · tab views · / search · l like · q quit")
}

// padLine right-pads s with spaces to the given display width.
func padLine(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
