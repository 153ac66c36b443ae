// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/sniptype/internal/generator"
	"github.com/verte-zerg/sniptype/internal/model"
	"github.com/verte-zerg/sniptype/internal/session"
	"github.com/verte-zerg/sniptype/internal/snippets"
	"github.com/verte-zerg/sniptype/internal/stats"
)

const loadTimeout = 15 * time.Second

const (
	statusNoSnippet  = "⚠ No snippet found."
	statusLoadFailed = "❌ Failed to load snippet."
	noticeCopied     = "Snippet copied!"
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	timerLiveStyle   = timerStyle.Background(lipgloss.Color("#A8071A")).Padding(0, 1)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cardStyle        = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

type snippetsLoadedMsg struct {
	generation uint64
	snippets   []model.Snippet
	err        error
}

type tickMsg struct {
	generation uint64
	at         time.Time
}

type copiedMsg struct {
	err error
}

// Options configures a Model.
type Options struct {
	Config    model.Config
	Source    snippets.Source
	Generator *generator.Generator
	Clipboard Clipboard
	Bell      Bell
	Logger    *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	source    snippets.Source
	gen       *generator.Generator
	clipboard Clipboard
	bell      Bell
	logger    *slog.Logger
	now       func() time.Time

	languages []string
	lang      string
	level     model.Level
	sound     bool

	generation uint64
	loading    bool
	hasSession bool
	sess       session.Session
	status     string
	notice     string

	lastResult stats.Result
	hasResult  bool

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	progress progress.Model

	width  int
	height int
}

// NewModel constructs a typing TUI model.
func NewModel(opts Options) *Model {
	m := &Model{
		source:    opts.Source,
		gen:       opts.Generator,
		clipboard: opts.Clipboard,
		bell:      opts.Bell,
		logger:    opts.Logger,
		now:       opts.Now,
		languages: opts.Config.Languages,
		lang:      strings.ToLower(opts.Config.Lang),
		level:     opts.Config.Level,
		sound:     opts.Config.Sound,
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(progressWidth(0))),
	}
	if m.gen == nil {
		m.gen = generator.New()
	}
	if m.clipboard == nil {
		m.clipboard = SystemClipboard()
	}
	if m.bell == nil {
		m.bell = TerminalBell(io.Discard)
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.level == "" {
		m.level = model.LevelBeginner
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.startLoad()
}

// LastResult returns the most recently finished session.
func (m *Model) LastResult() (stats.Result, bool) {
	return m.lastResult, m.hasResult
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = progressWidth(msg.Width * 70 / 100)
		return m, nil
	case snippetsLoadedMsg:
		m.handleLoaded(msg)
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy snippet failed", "err", msg.err)
			m.notice = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.notice = noticeCopied
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.NewSnippet):
		return m.startLoad()
	case key.Matches(msg, m.keys.NextLang):
		m.lang = nextLanguage(m.languages, m.lang)
		return m.startLoad()
	case key.Matches(msg, m.keys.NextLevel):
		m.level = m.level.Next()
		return m.startLoad()
	case key.Matches(msg, m.keys.Copy):
		return m.copySnippet()
	case key.Matches(msg, m.keys.Sound):
		m.sound = !m.sound
		return nil
	}

	if !m.inputEnabled() {
		return nil
	}
	now := m.now()
	var eff session.Effects
	switch msg.Type {
	case tea.KeyBackspace:
		m.sess, eff = m.sess.Backspace(now)
	case tea.KeyEnter:
		m.sess, eff = m.sess.Type([]rune{'\n'}, now)
	case tea.KeyTab:
		m.sess, eff = m.sess.Type([]rune{'\t'}, now)
	case tea.KeySpace:
		m.sess, eff = m.sess.Type([]rune{' '}, now)
	case tea.KeyRunes:
		m.sess, eff = m.sess.Type(msg.Runes, now)
	default:
		return nil
	}
	return m.applyEffects(eff)
}

func (m *Model) applyEffects(eff session.Effects) tea.Cmd {
	if eff.Keystroke && m.sound {
		m.bell.Ring()
	}
	if eff.Finished {
		if res, ok := m.sess.Result(); ok {
			m.lastResult = res
			m.hasResult = true
			m.logger.Info("session finished",
				"lang", res.Snippet.Language,
				"level", res.Snippet.Level,
				"outcome", res.Outcome,
				"wpm", res.Final.WPM,
				"accuracy", res.Final.Accuracy)
		}
	}
	if eff.ScheduleTick {
		return tickCmd(m.sess.Generation)
	}
	return nil
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if !m.hasSession {
		return nil
	}
	var eff session.Effects
	m.sess, eff = m.sess.Tick(msg.generation, msg.at)
	return m.applyEffects(eff)
}

// startLoad drops the current session and fetches snippets for the selected
// language and level. Results and ticks from earlier generations are ignored.
func (m *Model) startLoad() tea.Cmd {
	m.generation++
	m.loading = true
	m.hasSession = false
	m.status = ""
	m.notice = ""

	generation := m.generation
	src := m.source
	lang := m.lang
	level := m.level
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		list, err := src.Fetch(ctx, lang, level)
		return snippetsLoadedMsg{generation: generation, snippets: list, err: err}
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m *Model) handleLoaded(msg snippetsLoadedMsg) {
	if msg.generation != m.generation {
		return
	}
	m.loading = false
	if msg.err != nil {
		m.logger.Error("failed to load snippet", "lang", m.lang, "level", m.level, "err", msg.err)
		m.status = statusLoadFailed
		return
	}
	snippet, ok := m.gen.Pick(msg.snippets)
	if !ok {
		m.logger.Warn("no snippet for selection", "lang", m.lang, "level", m.level)
		m.status = statusNoSnippet
		return
	}
	m.sess = session.Start(snippet, m.level.Duration(), msg.generation)
	m.hasSession = true
}

func (m *Model) copySnippet() tea.Cmd {
	if !m.hasSession {
		return nil
	}
	clip := m.clipboard
	code := m.sess.Snippet.Code
	return func() tea.Msg {
		return copiedMsg{err: clip.WriteAll(code)}
	}
}

func (m *Model) inputEnabled() bool {
	return !m.loading && m.hasSession && m.sess.Active()
}

func progressWidth(contentWidth int) int {
	if contentWidth <= 0 || contentWidth > 60 {
		return 40
	}
	return contentWidth
}

func tickCmd(generation uint64) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{generation: generation, at: t}
	})
}

func nextLanguage(languages []string, current string) string {
	if len(languages) == 0 {
		return current
	}
	for i, lang := range languages {
		if strings.EqualFold(lang, current) {
			return strings.ToLower(languages[(i+1)%len(languages)])
		}
	}
	return strings.ToLower(languages[0])
}
