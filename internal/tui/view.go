package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sniptype/internal/diff"
	"github.com/verte-zerg/sniptype/internal/session"
)

// View implements tea.Model.
func (m *Model) View() string {
	contentWidth := m.width * 70 / 100

	sections := []string{m.renderHeader(), "", m.renderBody(contentWidth)}
	if footer := m.renderFooter(); footer != "" {
		sections = append(sections, "", footer)
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, "", m.help.View(m.keys))
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderHeader() string {
	sound := "🔇 Muted"
	if m.sound {
		sound = "🔊 Sound"
	}
	segments := []string{m.lang, string(m.level), sound}
	header := headerStyle.Render(strings.Join(segments, " · "))
	if !m.hasSession {
		return header
	}
	countdown := timerStyle.Render(m.sess.CountdownText())
	if m.sess.Timer == session.TimerRunning {
		countdown = timerLiveStyle.Render(m.sess.CountdownText())
	}
	return header + "  " + countdown
}

func (m *Model) renderBody(width int) string {
	switch {
	case m.loading:
		return m.spinner.View() + " Loading snippet..."
	case m.status != "":
		return statusStyle.Render(m.status)
	case !m.hasSession:
		return ""
	}
	typed := m.sess.Typed()
	cells := diff.Render(m.sess.Code(), typed)
	cursorIndex := -1
	if m.sess.Active() && len(typed) < len(cells) {
		cursorIndex = len(typed)
	}
	return wrapStyledRunes(buildStyledRunes(cells, cursorIndex), width)
}

func (m *Model) renderFooter() string {
	if !m.hasSession {
		return ""
	}
	if final, ok := m.sess.Final(); ok {
		cards := []string{
			metricCard("WPM", fmt.Sprintf("%d", final.WPM)),
			metricCard("Accuracy", fmt.Sprintf("%d%%", final.Accuracy)),
			metricCard("Typed", fmt.Sprintf("%d/%d", final.TotalTyped, len(m.sess.Code()))),
			metricCard("Progress", fmt.Sprintf("%d%%", m.sess.Live().Progress)),
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	live := m.sess.Live()
	bar := m.progress.ViewAs(float64(live.Progress) / 100)
	line := fmt.Sprintf("Progress %d%%  Accuracy %d%%  WPM %d", live.Progress, live.Accuracy, live.WPM)
	return bar + "\n" + footerStyle.Render(line)
}

func metricCard(label, value string) string {
	return cardStyle.Render(cardTitleStyle.Render(label) + "\n" + cardValueStyle.Render(value))
}
