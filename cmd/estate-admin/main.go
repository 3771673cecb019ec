package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Moderation console: log in as a moderator, review pending listings and
// approve them without leaving the terminal.

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoadingPending
	stepSelectingProperty
	stepApproving
	stepDone
)

type property struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	City  string  `json:"city"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

type model struct {
	step         step
	serverURL    string
	pending      []property
	cursor       int
	email        string
	password     string
	token        string
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct {
	token string
}
type pendingLoadedMsg []property
type approveSuccessMsg struct {
	id string
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func serverURL() string {
	if url := os.Getenv("ESTATE_SERVER_URL"); url != "" {
		return strings.TrimRight(url, "/")
	}
	return "http://localhost:8080"
}

func initialModel() model {
	return model{
		step:      stepEnteringEmail,
		serverURL: serverURL(),
		pending:   []property{},
		cursor:    0,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(serverURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed, check email and password")}
		}

		var result map[string]string
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected login response")}
		}
		token := result["token"]
		if token == "" {
			return errMsg{fmt.Errorf("unexpected login response")}
		}

		return loginSuccessMsg{token: token}
	}
}

func loadPending(serverURL, token string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		req, _ := http.NewRequest("GET", serverURL+"/properties/pending", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to load pending listings: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusForbidden {
			return errMsg{fmt.Errorf("this account is not a moderator")}
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return errMsg{fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))}
		}

		var pending []property
		if err := json.NewDecoder(resp.Body).Decode(&pending); err != nil {
			return errMsg{fmt.Errorf("unexpected listing response")}
		}

		return pendingLoadedMsg(pending)
	}
}

func approve(serverURL, token, id string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		req, _ := http.NewRequest("PUT", serverURL+"/properties/approve/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to approve: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return errMsg{fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))}
		}

		return approveSuccessMsg{id: id}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.step == stepSelectingProperty && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepSelectingProperty && m.cursor < len(m.pending)-1 {
				m.cursor++
			}

		case "r":
			if m.step == stepSelectingProperty || m.step == stepDone {
				m.step = stepLoadingPending
				m.message = "Refreshing..."
				return m, loadPending(m.serverURL, m.token)
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, login(m.serverURL, m.email, m.password)
				}

			case stepSelectingProperty:
				if len(m.pending) > 0 {
					m.step = stepApproving
					m.message = fmt.Sprintf("Approving %s...", m.pending[m.cursor].Title)
					return m, approve(m.serverURL, m.token, m.pending[m.cursor].ID)
				}

			case stepDone:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepLoadingPending
		m.message = successStyle.Render("Logged in as " + m.email)
		return m, loadPending(m.serverURL, m.token)

	case pendingLoadedMsg:
		m.pending = []property(msg)
		m.cursor = 0
		if len(m.pending) == 0 {
			m.step = stepDone
			m.message = successStyle.Render("No listings waiting for approval")
		} else {
			m.step = stepSelectingProperty
		}

	case approveSuccessMsg:
		m.message = successStyle.Render("Approved " + msg.id)
		m.step = stepLoadingPending
		return m, loadPending(m.serverURL, m.token)

	case errMsg:
		if m.token == "" {
			m.message = errorStyle.Render(msg.err.Error())
			m.step = stepEnteringEmail
			return m, nil
		}
		m.message = errorStyle.Render(msg.err.Error())
		m.step = stepSelectingProperty
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Estate Moderation Console\n\n"))

	switch m.step {
	case stepEnteringEmail:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Moderator email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingPending, stepApproving:
		s.WriteString(m.message + "\n")

	case stepSelectingProperty:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Pending listings:\n\n"))

		for i, p := range m.pending {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			line := fmt.Sprintf("%s, %s, %.0f (%s)", p.Title, p.City, p.Price, p.Type)
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(line)))
		}

		s.WriteString("\nUse up/down, Enter to approve, r to refresh, q to quit\n")

	case stepDone:
		s.WriteString(m.message + "\n")
		s.WriteString("\nPress r to refresh, Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
