package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/service"
	"github.com/MKhiriev/go-pubsub-chat/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title, two dividers, input and help lines plus appStyle padding
	chromeHeight   = 8
	statusLifetime = 2 * time.Second
)

var writeClipboard = clipboard.WriteAll

type chatModel struct {
	session   service.ChatSession
	buildInfo models.AppBuildInfo

	topic        string
	pollInterval time.Duration

	history  viewport.Model
	input    textinput.Model
	lines    []string
	lastText string
	status   string

	showBuildInfo     bool
	shutdownRequested bool
	quitting          bool
}

func newChatModel(session service.ChatSession, cfg config.ClientConfig, buildInfo models.AppBuildInfo) chatModel {
	in := textinput.New()
	in.Placeholder = fmt.Sprintf("message, or %cquit", cfg.App.Sigil)
	in.Prompt = "> "
	in.Focus()
	in.Width = defaultWidth - 6

	interval := cfg.Workers.PollInterval
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}

	return chatModel{
		session:      session,
		buildInfo:    buildInfo,
		topic:        cfg.App.Topic,
		pollInterval: interval,
		history:      viewport.New(defaultWidth-4, defaultHeight-chromeHeight),
		input:        in,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdPoll(m.pollInterval), cmdWaitClosed(m.session))
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.history.Width = max(msg.Width-4, 10)
		m.history.Height = max(msg.Height-chromeHeight, 3)
		m.input.Width = max(msg.Width-6, 10)
		m.refreshHistory()
		return m, nil

	case pollMsg:
		if m.quitting {
			return m, nil
		}
		m.applyEvents(m.session.PollIncoming())
		if m.shutdownRequested {
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmdPoll(m.pollInterval)

	case sessionClosedMsg:
		// Shut down elsewhere: show what is still queued, then leave.
		if m.quitting {
			return m, nil
		}
		m.applyEvents(m.session.PollIncoming())
		m.quitting = true
		return m, tea.Quit

	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = "Copy failed: " + msg.err.Error()
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.send):
		text := m.input.Value()
		m.input.Reset()
		m.session.SendInput(text)
		return m, nil

	case key.Matches(msg, keys.copy):
		if m.lastText == "" {
			m.status = "Nothing to copy"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(m.lastText)

	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyEvents appends visible events to the history. Events after a
// ShutdownRequested in the same batch are still rendered.
func (m *chatModel) applyEvents(events []models.Event) {
	if len(events) == 0 {
		return
	}

	for _, event := range events {
		if event.Kind == models.ShutdownRequested {
			m.shutdownRequested = true
			continue
		}
		line, ok := renderEvent(event)
		if !ok {
			continue
		}
		m.lines = append(m.lines, line)
		if event.Kind == models.IncomingText {
			m.lastText = event.Text
		}
	}

	m.refreshHistory()
}

func (m *chatModel) refreshHistory() {
	m.history.SetContent(strings.Join(m.lines, "\n"))
	m.history.GotoBottom()
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	title := fitText("pubsub chat · "+m.topic, m.history.Width)

	var b strings.Builder
	b.WriteString(viewTitle(title))
	b.WriteString(m.history.View())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(renderHelp(m.status))

	return appStyle.Render(b.String())
}

func cmdPoll(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func cmdWaitClosed(session service.ChatSession) tea.Cmd {
	return func() tea.Msg {
		<-session.Done()
		return sessionClosedMsg{}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
