// Package prompt reads passwords from the user without echoing them.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels the prompt with Ctrl+C or Esc.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks for one line of input. At end of input it returns io.EOF.
type Prompter interface {
	Prompt(label string) (string, error)
}

// New returns a masked terminal prompter when in is a terminal and a plain
// line reader otherwise (pipes, redirected files, tests).
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &terminalPrompter{in: f, out: out}
	}
	return &linePrompter{r: bufio.NewReader(in), out: out}
}

type linePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

func (p *linePrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		fmt.Fprintln(p.out)
		return "", err
	}
	fmt.Fprintln(p.out)
	return strings.TrimRight(line, "\r\n"), nil
}

type terminalPrompter struct {
	in  *os.File
	out io.Writer
}

func (p *terminalPrompter) Prompt(label string) (string, error) {
	final, err := tea.NewProgram(newModel(label), tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	m := final.(model)
	switch {
	case m.eof:
		return "", io.EOF
	case m.aborted:
		return "", ErrAborted
	}
	return m.input.Value(), nil
}

type model struct {
	input   textinput.Model
	done    bool
	aborted bool
	eof     bool
}

func newModel(label string) model {
	ti := textinput.New()
	ti.Prompt = label
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Focus()
	return model{input: ti}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done || m.aborted || m.eof {
		return ""
	}
	return m.input.View()
}
