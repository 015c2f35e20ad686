package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Logo is the ASCII art banner
const Logo = `
  ____  _               _   ____   ___  _
 / ___|| |__   ___  ___| |_/ ___| / _ \| |
 \___ \| '_ \ / _ \/ _ \ __\___ \| | | | |
  ___) | | | |  __/  __/ |_ ___) | |_| | |___
 |____/|_| |_|\___|\___|\__|____/ \__\_\_____|
`

// Command describes one CLI command for the overview screen
type Command struct {
	Name    string
	Summary string
}

// Placeholder documents one template token for the overview screen
type Placeholder struct {
	Token   string
	Meaning string
}

// DefaultPlaceholders lists the template tokens sheetsql understands
var DefaultPlaceholders = []Placeholder{
	{"{value}", "the only selected column (single column mode)"},
	{"{1} {2} ...", "selected columns by position"},
	{"{A} {B} ...", "selected columns by label"},
	{"{values}", "batch: first column as an IN list"},
	{"{@row}", "batch: one ('..', '..') tuple per row"},
	{"{#1} {#A}", "batch: one column as a quoted list"},
}

// AppModel is the interactive overview screen
type AppModel struct {
	Width        int
	Height       int
	Spinner      spinner.Model
	Commands     []Command
	Placeholders []Placeholder
	StatusMsg    string
	Error        error
}

// NewAppModel creates an AppModel listing the given commands
func NewAppModel(commands []Command) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(PrimaryColor)

	return AppModel{
		Spinner:      s,
		Commands:     commands,
		Placeholders: DefaultPlaceholders,
		StatusMsg:    "Ready",
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return m.Spinner.Tick
}

// Update handles user input and updates the model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}

	var cmd tea.Cmd
	m.Spinner, cmd = m.Spinner.Update(msg)
	return m, cmd
}

// View renders the current state of the model
func (m AppModel) View() string {
	if m.Width == 0 {
		return "Loading..."
	}

	footer := FooterStyle.Render("Press q to quit")
	return lipgloss.JoinVertical(lipgloss.Center, m.renderMainView(), footer)
}

func (m AppModel) renderMainView() string {
	logo := LogoStyle.Render(Logo)
	title := TitleStyle.Render("sheetsql: spreadsheet rows to SQL")
	subtitle := SubtitleStyle.Render("Templates in, statements out. No database required.")

	var status string
	if m.Error != nil {
		status = ErrorStyle.Render(fmt.Sprintf("Error: %s", m.Error.Error()))
	} else {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), InfoStyle.Render(m.StatusMsg))
	}

	commandLines := []string{HighlightStyle.Render("Commands:")}
	for _, c := range m.Commands {
		commandLines = append(commandLines, InfoStyle.Render(fmt.Sprintf("%-14s %s", c.Name, c.Summary)))
	}
	commands := BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, commandLines...))

	placeholderLines := []string{HighlightStyle.Render("Placeholders:")}
	for _, p := range m.Placeholders {
		placeholderLines = append(placeholderLines, InfoStyle.Render(fmt.Sprintf("%-12s %s", p.Token, p.Meaning)))
	}
	placeholders := BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, placeholderLines...))

	boxes := lipgloss.JoinHorizontal(lipgloss.Top, commands, placeholders)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		title,
		subtitle,
		"",
		boxes,
		"",
		status,
	)
}
