package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TheKalyaniMohite/TableGrapeAgent/chatclient"
	"github.com/TheKalyaniMohite/TableGrapeAgent/internal/logger"
)

const (
	defaultAPIBase  = "http://127.0.0.1:8000/api"
	defaultLanguage = "en"
	requestTimeout  = 3 * time.Minute
)

type appConfig struct {
	farmID     string
	apiBase    string
	lang       string
	limit      int
	sessionDir string
	altScreen  bool
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("121"))
	statusStyle    = lipgloss.NewStyle().Faint(true)
	userLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	botLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	errLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	timeStyle      = lipgloss.NewStyle().Faint(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

type historyLoadedMsg struct{}

type sendDoneMsg struct{}

type newChatDoneMsg struct{}

type model struct {
	cfg      appConfig
	conv     *chatclient.Conversation
	input    textinput.Model
	view     viewport.Model
	spin     spinner.Model
	ready    bool
	loading  bool
	statusAt time.Time
	status   string
}

func newModel(cfg appConfig, conv *chatclient.Conversation) model {
	input := textinput.New()
	input.Placeholder = "Ask about your vineyard..."
	input.Prompt = "> "
	input.CharLimit = 2000
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return model{
		cfg:     cfg,
		conv:    conv,
		input:   input,
		spin:    spin,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick, m.loadHistoryCmd())
}

func (m model) loadHistoryCmd() tea.Cmd {
	conv := m.conv
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		conv.LoadHistory(ctx)
		return historyLoadedMsg{}
	}
}

func (m model) sendCmd(text string) tea.Cmd {
	conv := m.conv
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		conv.Send(ctx, text)
		return sendDoneMsg{}
	}
}

func (m model) newChatCmd() tea.Cmd {
	conv := m.conv
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		conv.NewChat(ctx)
		return newChatDoneMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 4
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - headerHeight - footerHeight
		}
		m.input.Width = msg.Width - 4
		m.refreshTranscript(true)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.conv.State() == chatclient.StateSending {
				break
			}
			m.input.SetValue("")
			m.refreshTranscript(true)
			cmds = append(cmds, m.sendCmd(text), m.spin.Tick)
		case "ctrl+n":
			m.setStatus("starting a new chat")
			cmds = append(cmds, m.newChatCmd())
		case "ctrl+r":
			m.loading = true
			cmds = append(cmds, m.loadHistoryCmd(), m.spin.Tick)
		}

	case historyLoadedMsg:
		m.loading = false
		m.refreshTranscript(true)

	case sendDoneMsg:
		m.refreshTranscript(true)

	case newChatDoneMsg:
		m.setStatus("new chat started")
		m.refreshTranscript(true)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.loading || m.conv.State() == chatclient.StateSending {
			cmds = append(cmds, cmd)
		}
		m.refreshTranscript(false)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) setStatus(text string) {
	m.status = text
	m.statusAt = time.Now()
}

func (m *model) refreshTranscript(gotoBottom bool) {
	if !m.ready {
		return
	}
	m.view.SetContent(m.renderTranscript())
	if gotoBottom {
		m.view.GotoBottom()
	}
}

func (m *model) renderTranscript() string {
	msgs := m.conv.Messages()
	if len(msgs) == 0 {
		if m.loading {
			return statusStyle.Render("loading history...")
		}
		return statusStyle.Render("No messages yet. Ask something about your vineyard.")
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		label := botLabelStyle.Render("agent")
		if msg.Role == chatclient.RoleUser {
			label = userLabelStyle.Render("you")
		} else if strings.HasPrefix(msg.ID, "error-") {
			label = errLabelStyle.Render("agent")
		}
		stamp := ""
		if ts := msg.Timestamp(); !ts.IsZero() {
			stamp = " " + timeStyle.Render(ts.Local().Format("15:04"))
		}
		b.WriteString(label + stamp + "\n")
		b.WriteString(wrap(msg.Content, m.view.Width) + "\n")
	}
	return b.String()
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

func (m model) View() string {
	if !m.ready {
		return "starting..."
	}

	header := titleStyle.Render("TableGrape Agent") +
		statusStyle.Render("  farm "+m.cfg.farmID)
	if m.loading || m.conv.State() == chatclient.StateSending {
		header += "  " + m.spin.View() + statusStyle.Render("thinking")
	}

	footer := m.input.View() + "\n" +
		helpStyle.Render("enter send · ctrl+n new chat · ctrl+r reload · esc quit")
	if m.status != "" && time.Since(m.statusAt) < 4*time.Second {
		footer += "\n" + statusStyle.Render(m.status)
	}

	return header + "\n\n" + m.view.View() + "\n\n" + footer
}

func parseFlags() (appConfig, error) {
	cfg := appConfig{}
	flag.StringVar(&cfg.farmID, "farm", "", "farm id to chat about (required)")
	flag.StringVar(&cfg.apiBase, "api", defaultAPIBase, "chat API base URL")
	flag.StringVar(&cfg.lang, "lang", defaultLanguage, "reply language (en, hi, es, mr)")
	flag.IntVar(&cfg.limit, "limit", 30, "history messages to load")
	flag.StringVar(&cfg.sessionDir, "session-dir", "", "directory for session state (default: user config dir)")
	flag.BoolVar(&cfg.altScreen, "alt-screen", true, "use the terminal alternate screen")
	flag.Parse()

	if strings.TrimSpace(cfg.farmID) == "" {
		return cfg, fmt.Errorf("--farm is required")
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	logger.InitFromEnv("CHAT_LOG_LEVEL")

	sessions := chatclient.NewSessionStore(cfg.sessionDir)
	client := chatclient.New(cfg.apiBase)
	conv := chatclient.NewConversation(cfg.farmID, cfg.lang, client, sessions)
	conv.SetHistoryLimit(cfg.limit)

	opts := []tea.ProgramOption{}
	if cfg.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(newModel(cfg, conv), opts...).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "chat ui failed:", err)
		os.Exit(1)
	}
}
