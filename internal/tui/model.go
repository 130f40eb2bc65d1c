// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avelichko/typedrill/internal/catalog"
	"github.com/avelichko/typedrill/internal/diff"
	"github.com/avelichko/typedrill/internal/metrics"
	"github.com/avelichko/typedrill/internal/model"
	"github.com/avelichko/typedrill/internal/progress"
	"github.com/avelichko/typedrill/internal/sequence"
	"github.com/avelichko/typedrill/internal/session"
)

// resultDelay is how long the result overlay stays up before the next lesson.
const resultDelay = 5 * time.Second

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	overlayStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
	pickerActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// advanceMsg fires when the result overlay times out. The generation ties it
// to the attempt that scheduled it; a stale generation means the advance was
// cancelled and the message is ignored.
type advanceMsg struct {
	gen int
}

type attemptResult struct {
	wpm     float64
	acc     float64
	elapsed time.Duration
	final   bool
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	cfg     model.Config
	store   *progress.Store
	catalog *catalog.Catalog
	seq     *sequence.Sequencer

	lesson model.Lesson
	sess   *session.Session
	input  []rune

	width  int
	height int

	result    *attemptResult
	resultGen int
	complete  bool
	errMsg    string

	pickerOpen  bool
	pickerIndex int

	lastWPM float64
	lastAcc float64
	hasLast bool

	now func() time.Time
}

// NewModel constructs a practice TUI model positioned at the first lesson.
func NewModel(cfg model.Config, store *progress.Store, cat *catalog.Catalog) (*Model, error) {
	seq := sequence.New(cat)
	lesson, err := seq.Current()
	if err != nil {
		return nil, err
	}
	m := &Model{
		cfg:     cfg,
		store:   store,
		catalog: cat,
		seq:     seq,
		now:     time.Now,
	}
	m.loadLastAttempt()
	m.startLesson(lesson)
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case advanceMsg:
		if msg.gen != m.resultGen || m.result == nil {
			return m, nil
		}
		m.advanceLesson()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.complete {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.pickerOpen {
		return m.handlePickerKey(msg)
	}
	if m.result != nil {
		// Waiting out the overlay; the scheduled advance owns the transition.
		return m, nil
	}
	switch msg.Type {
	case tea.KeyCtrlS:
		return m, m.submit()
	case tea.KeyCtrlL:
		m.openPicker()
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
			m.sess.Keystroke(string(m.input), m.now())
		}
		return m, nil
	case tea.KeyEnter:
		m.appendRunes([]rune{'\n'})
		return m, nil
	case tea.KeySpace:
		m.appendRunes([]rune{' '})
		return m, nil
	case tea.KeyRunes:
		m.appendRunes(msg.Runes)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.pickerOpen = false
		return m, nil
	case tea.KeyUp:
		if m.pickerIndex > 0 {
			m.pickerIndex--
		}
		return m, nil
	case tea.KeyDown:
		if m.pickerIndex < m.catalog.Count()-1 {
			m.pickerIndex++
		}
		return m, nil
	case tea.KeyEnter:
		m.pickerOpen = false
		lesson, err := m.seq.JumpTo(m.pickerIndex)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		// Jumping discards the live session; no record is written for it.
		m.startLesson(lesson)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) appendRunes(runes []rune) {
	m.input = append(m.input, runes...)
	m.sess.Keystroke(string(m.input), m.now())
}

func (m *Model) submit() tea.Cmd {
	result, ok := m.sess.Submit(m.now())
	if !ok {
		// Nothing typed yet, or already submitted: a guard, not an error.
		return nil
	}
	wpm, acc := metrics.Score(result.Typed, m.lesson.Content, m.sess.StartedAt(), m.sess.SubmittedAt())
	record := progress.NewRecord(m.cfg.User, m.lesson, m.sess.SubmittedAt(), wpm, acc)
	if err := m.store.Append(record); err != nil {
		m.errMsg = fmt.Sprintf("failed to save attempt: %v", err)
		return nil
	}
	m.lastWPM = wpm
	m.lastAcc = acc
	m.hasLast = true
	m.errMsg = ""
	m.result = &attemptResult{
		wpm:     wpm,
		acc:     acc,
		elapsed: result.Elapsed,
		final:   m.seq.Index()+1 >= m.catalog.Count(),
	}
	m.resultGen++
	gen := m.resultGen
	return tea.Tick(resultDelay, func(time.Time) tea.Msg {
		return advanceMsg{gen: gen}
	})
}

func (m *Model) advanceLesson() {
	m.result = nil
	next, ok := m.seq.Advance()
	if !ok {
		m.complete = true
		return
	}
	m.startLesson(next)
}

// startLesson swaps in a fresh idle session for the lesson. Bumping the
// generation cancels any advance still scheduled for the previous attempt.
func (m *Model) startLesson(lesson model.Lesson) {
	m.lesson = lesson
	m.sess = session.New(lesson)
	m.input = nil
	m.result = nil
	m.errMsg = ""
	m.resultGen++
}

func (m *Model) openPicker() {
	m.pickerOpen = true
	m.pickerIndex = m.seq.Index()
}

func (m *Model) loadLastAttempt() {
	attempts, err := m.store.Load()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if len(attempts) == 0 {
		return
	}
	last := attempts[len(attempts)-1]
	m.lastWPM = last.WPM
	m.lastAcc = last.Accuracy
	m.hasLast = true
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.complete {
		return m.place(overlayStyle.Render("Congratulations! You have completed all lessons.\n\nPress q to quit."))
	}
	if m.pickerOpen {
		return m.place(overlayStyle.Render(m.renderPicker()))
	}
	if m.result != nil {
		return m.place(overlayStyle.Render(m.renderResult()))
	}
	return m.renderPractice()
}

func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderPractice() string {
	targetRunes := []rune(m.lesson.Content)
	marks := diff.Classify(string(m.input), m.lesson.Content)
	cursorIndex := -1
	if len(m.input) < len(targetRunes) {
		cursorIndex = len(m.input)
	}
	styled := buildStyledRunes(marks, targetRunes, m.input, cursorIndex)

	title := titleStyle.Render(fmt.Sprintf("%d: %s", m.lesson.ID, m.lesson.Title))
	if m.width == 0 || m.height == 0 {
		return title + "\n\n" + renderStyledRunes(styled)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styled, contentWidth)
	body := lipgloss.NewStyle().Width(contentWidth).Render(title + "\n\n" + wrapped)
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return m.place(body)
	}
	bodyHeight := m.height - 1
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return placed + "\n" + footerLine
}

func (m *Model) renderResult() string {
	lines := []string{
		fmt.Sprintf("Time Taken: %.2f seconds", m.result.elapsed.Seconds()),
		fmt.Sprintf("WPM: %.2f", m.result.wpm),
		fmt.Sprintf("Accuracy: %.2f%%", m.result.acc),
	}
	if m.result.final {
		lines = append(lines, "", "This was the final lesson.")
	} else {
		lines = append(lines, "", "Next lesson starts shortly...")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderPicker() string {
	lines := []string{"Select Lesson", ""}
	for i, lesson := range m.catalog.Lessons() {
		label := fmt.Sprintf("%d: %s", lesson.ID, lesson.Title)
		if i == m.pickerIndex {
			label = pickerActiveStyle.Render("> " + label)
		} else {
			label = pendingStyle.Render("  " + label)
		}
		lines = append(lines, label)
	}
	lines = append(lines, "", footerStyle.Render("enter: start  esc: cancel"))
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	targetLen := len([]rune(m.lesson.Content))
	percent := 0
	if targetLen > 0 {
		typed := len(m.input)
		if typed > targetLen {
			typed = targetLen
		}
		percent = typed * 100 / targetLen
	}
	segments := []string{
		fmt.Sprintf("Lesson %d/%d", m.seq.Index()+1, m.catalog.Count()),
		fmt.Sprintf("Progress %d%%", percent),
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", m.lastWPM, m.lastAcc))
	}
	segments = append(segments, "ctrl+s submit · ctrl+l lessons")
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if m.errMsg != "" {
		footer += "\n" + errorStyle.Render(m.errMsg)
	}
	return footer
}
