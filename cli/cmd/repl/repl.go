// Package repl implements the interactive read-eval-print loop for gtcalc.
//
// Each entered line is evaluated as one expression and echoed with its
// result or error. Completions for function and unit names appear as you
// type; Tab and Shift-Tab cycle through candidates. History persists
// across sessions in the cache directory.
package repl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/gtcalc/calc"
	"github.com/ardnew/gtcalc/log"
	"github.com/ardnew/gtcalc/pkg"
)

const evalPrompt = "➜ "

// maxSuggestions limits how many completion candidates are displayed.
const maxSuggestions = 8

func helpMessage() string {
	return `
: Commands (entered as a bare word):

  help     Print this cruft
  funcs    List supported functions
  units    List supported unit suffixes
  clear    Clear screen
  quit     Exit REPL

Usage:
  Type an expression to evaluate it
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Esc to dismiss candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatEcho formats the echo line with prompt and input styled.
func formatEcho(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	input        textinput.Model
	history      *History
	pool         []string      // completion candidate list
	matches      fuzzy.Matches // current fuzzy match results
	historyIdx   int           // history cursor; Len() means "live" input
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
}

// Run starts the interactive session and blocks until the user exits.
// An empty historyPath selects the default file under the cache directory.
func Run(ctx context.Context, historyPath string) error {
	if historyPath == "" {
		historyPath = filepath.Join(pkg.CacheDir(), baseHistory)
	}

	history := NewHistory(historyPath)

	err := history.Load()
	if err != nil {
		log.WarnContext(ctx, "failed to load history",
			slog.String("path", historyPath),
			slog.Any("error", err),
		)
	}

	input := textinput.New()
	input.Prompt = promptStyle.Render(evalPrompt)
	input.Focus()

	m := model{
		input:      input,
		history:    history,
		historyIdx: history.Len(),
		pool:       candidates(),
	}

	program := tea.NewProgram(m, tea.WithContext(ctx))

	_, err = program.Run()
	if err != nil {
		return fmt.Errorf("repl terminated: %w", err)
	}

	return nil
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlD:
		return m, tea.Quit

	case tea.KeyCtrlC:
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, tea.Quit
		}

		m.resetInput()

		return m, nil

	case tea.KeyEnter:
		return m.acceptLine()

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyEsc:
		m.cancelCycle()

		return m, nil

	case tea.KeyUp:
		m.navigateHistory(-1)

		return m, nil

	case tea.KeyDown:
		m.navigateHistory(1)

		return m, nil
	}

	// Any other key ends tab-cycling and edits the input.
	m.tabActive = false

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refreshMatches()

	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	if len(m.matches) > 0 {
		b.WriteString(m.renderSuggestions())
		b.WriteByte('\n')
	}

	b.WriteString(hintStyle.Render("Tab completes, Ctrl+D exits, `help` for more"))
	b.WriteByte('\n')

	return b.String()
}

// acceptLine evaluates the current input line or runs a control command.
func (m model) acceptLine() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	err := m.history.Append(line)
	if err != nil {
		log.Warn("failed to append history", slog.Any("error", err))
	}

	m.resetInput()

	echoCmd := tea.Println(formatEcho(line))

	switch strings.ToLower(line) {
	case "help":
		return m, tea.Sequence(echoCmd, tea.Println(helpMessage()))

	case "funcs":
		return m, tea.Sequence(
			echoCmd,
			tea.Println(strings.Join(calc.FunctionNames(), " ")),
		)

	case "units":
		return m, tea.Sequence(echoCmd, tea.Println(formatUnits()))

	case "clear":
		return m, tea.ClearScreen

	case "quit":
		return m, tea.Quit
	}

	result, err := calc.Solve(line)
	if err != nil {
		// Error output is prefixed with the offending expression.
		return m, tea.Sequence(
			echoCmd,
			tea.Println(errorStyle.Render(line+": "+err.Error())),
		)
	}

	return m, tea.Sequence(
		echoCmd,
		tea.Println(resultStyle.Render("= "+result)),
	)
}

// formatUnits renders the unit table sorted by scale factor.
func formatUnits() string {
	table := calc.UnitTable()

	names := slices.Collect(maps.Keys(table))

	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(table[a], table[b]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	var b strings.Builder

	for _, name := range names {
		fmt.Fprintf(&b, "%-4s = %s\n", name, calc.FormatResult(table[name]))
	}

	if scale, ok := calc.UnitScale("maxa"); ok {
		fmt.Fprintf(&b,
			"max<letter> scales max by 4 per step (maxa = %s)",
			calc.FormatResult(scale),
		)
	}

	return b.String()
}

// resetInput clears the input line and all completion state.
func (m *model) resetInput() {
	m.input.SetValue("")
	m.input.SetCursor(0)
	m.matches = nil
	m.tabActive = false
	m.historyIdx = m.history.Len()
}

// refreshMatches recomputes fuzzy completion candidates for the current
// input and cursor position.
func (m *model) refreshMatches() {
	m.matches, m.wordStart, m.wordEnd = match(
		m.input.Value(),
		m.input.Position(),
		m.pool,
	)
	m.suggIdx = 0
}

// cycle advances the completion selection by delta and substitutes the
// selected candidate for the identifier at the cursor.
func (m model) cycle(delta int) model {
	if len(m.matches) == 0 {
		return m
	}

	if !m.tabActive {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0
	} else {
		m.suggIdx = (m.suggIdx + delta + len(m.matches)) % len(m.matches)
	}

	chosen := m.matches[m.suggIdx].Str
	text := m.preTabText[:m.wordStart] + chosen + m.preTabText[m.wordEnd:]

	m.input.SetValue(text)
	m.input.SetCursor(m.wordStart + len(chosen))

	return m
}

// cancelCycle restores the input to its state before tab-cycling began.
func (m *model) cancelCycle() {
	if m.tabActive {
		m.input.SetValue(m.preTabText)
		m.input.SetCursor(m.preTabCursor)
		m.tabActive = false
	}

	m.matches = nil
}

// navigateHistory moves the history cursor by delta and loads the entry
// into the input line. Moving past the newest entry restores a blank line.
func (m *model) navigateHistory(delta int) {
	if m.history.Len() == 0 {
		return
	}

	idx := m.historyIdx + delta
	if idx < 0 || idx > m.history.Len() {
		return
	}

	m.historyIdx = idx

	if idx == m.history.Len() {
		m.input.SetValue("")
		m.input.SetCursor(0)
	} else {
		entry := m.history.At(idx)
		m.input.SetValue(entry)
		m.input.SetCursor(len(entry))
	}

	m.matches = nil
	m.tabActive = false
}

// renderSuggestions renders the completion candidates, highlighting the
// current selection while tab-cycling.
func (m model) renderSuggestions() string {
	limit := min(len(m.matches), maxSuggestions)

	parts := make([]string, 0, limit)

	for i := 0; i < limit; i++ {
		style := suggestionStyle
		if m.tabActive && i == m.suggIdx {
			style = selectedStyle
		}

		parts = append(parts, style.Render(m.matches[i].Str))
	}

	return "  " + strings.Join(parts, " ")
}
