package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"resume-matcher/internal/domain"
	"resume-matcher/internal/report"
)

// MatchPort is the TUI-facing subset of the match service.
type MatchPort interface {
	Analyze(ctx context.Context, resume []byte, requiredInput string) (*domain.MatchResult, error)
}

// Options prefill the dashboard inputs.
type Options struct {
	ResumePath     string
	RequiredSkills string
	ReportDir      string
}

const (
	focusPath = iota
	focusSkills
	focusCount
)

// Model is the Bubble Tea model for the results dashboard.
type Model struct {
	service    MatchPort
	pathInput  textinput.Model
	skillInput textinput.Model
	focus      int
	viewport   viewport.Model
	result     *domain.MatchResult
	resumePath string
	reportDir  string
	status     string
	ready      bool
	readFile   func(string) ([]byte, error)
}

type analysisMsg struct {
	path   string
	result *domain.MatchResult
	err    error
}

type exportMsg struct {
	paths []string
	err   error
}

// New creates a new TUI model instance.
func New(service MatchPort, opts Options) Model {
	pi := textinput.New()
	pi.Prompt = "Resume PDF > "
	pi.Placeholder = "path/to/resume.pdf"
	pi.CharLimit = 0
	pi.SetValue(opts.ResumePath)
	pi.Focus()

	si := textinput.New()
	si.Prompt = "Required skills > "
	si.Placeholder = "comma-separated, e.g. Python, SQL"
	si.CharLimit = 0
	si.SetValue(opts.RequiredSkills)

	reportDir := opts.ReportDir
	if reportDir == "" {
		reportDir = "."
	}
	vp := viewport.New(0, 0)
	return Model{
		service:    service,
		pathInput:  pi,
		skillInput: si,
		viewport:   vp,
		reportDir:  reportDir,
		status:     "Enter a resume path and press Enter. Tab switches fields.",
		readFile:   os.ReadFile,
	}
}

// Init starts the cursor blink and analyses a prefilled resume path.
func (m Model) Init() tea.Cmd {
	if strings.TrimSpace(m.pathInput.Value()) != "" {
		return tea.Batch(textinput.Blink, m.analyzeCmd())
	}
	return textinput.Blink
}

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and input boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		totalHeaderLines := 1
		totalFooterLines := 1
		reserved := totalHeaderLines + totalFooterLines + 2*(1+ih)
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case analysisMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.result = msg.result
		m.resumePath = msg.path
		m.status = fmt.Sprintf("Analysed %s. Ctrl+S exports reports.", msg.path)
		if len(msg.result.Warnings) > 0 {
			m.status += " Warnings: " + strings.Join(msg.result.Warnings, "; ")
		}
		m.viewport.SetContent(m.renderResult())
		m.viewport.GotoTop()
		return m, nil
	case exportMsg:
		if msg.err != nil {
			m.status = "Export failed: " + msg.err.Error()
		} else {
			m.status = "Saved " + strings.Join(msg.paths, ", ")
		}
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab", "shift+tab":
			step := 1
			if msg.String() == "shift+tab" {
				step = focusCount - 1
			}
			m.setFocus((m.focus + step) % focusCount)
			return m, nil
		case "enter":
			if strings.TrimSpace(m.pathInput.Value()) == "" {
				m.status = "Enter a resume path first."
				return m, nil
			}
			m.status = "Analysing..."
			return m, m.analyzeCmd()
		case "ctrl+s":
			if m.result == nil {
				m.status = "Nothing to export yet."
				return m, nil
			}
			return m, exportCmd(m.reportDir, m.resumePath, m.result)
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	if m.focus == focusPath {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else {
		m.skillInput, cmd = m.skillInput.Update(msg)
	}
	return m, cmd
}

// View renders the dashboard layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("Smart Resume Matcher")
	results := resultBoxStyle.Render(m.viewport.View())
	inputs := inputBoxStyle.Render(m.pathInput.View()) + "\n" + inputBoxStyle.Render(m.skillInput.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + results + "\n" + inputs + "\n" + status
}

func (m *Model) setFocus(f int) {
	m.focus = f
	if f == focusPath {
		m.pathInput.Focus()
		m.skillInput.Blur()
		return
	}
	m.skillInput.Focus()
	m.pathInput.Blur()
}

// analyzeCmd reads the resume into memory and runs one analysis.
func (m Model) analyzeCmd() tea.Cmd {
	path := strings.TrimSpace(m.pathInput.Value())
	required := m.skillInput.Value()
	svc, readFile := m.service, m.readFile
	return func() tea.Msg {
		data, err := readFile(path)
		if err != nil {
			return analysisMsg{path: path, err: errors.Wrap(err, "read resume")}
		}
		res, err := svc.Analyze(context.Background(), data, required)
		return analysisMsg{path: path, result: res, err: err}
	}
}

func exportCmd(dir, resumePath string, result *domain.MatchResult) tea.Cmd {
	return func() tea.Msg {
		paths, err := report.ExportFiles(dir, resumePath, result)
		return exportMsg{paths: paths, err: err}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
