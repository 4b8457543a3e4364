package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginModel is the credential form shown before a session exists.
type LoginModel struct {
	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
}

// NewLoginModel creates the login form with the email field focused.
func NewLoginModel() *LoginModel {
	email := textinput.New()
	email.Placeholder = "admin@skiff.example"
	email.Prompt = ""
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = ""
	password.CharLimit = 120
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &LoginModel{email: email, password: password}
}

// Update forwards a message to the focused input.
func (l *LoginModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if l.focus == 0 {
		l.email, cmd = l.email.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field.
func (l *LoginModel) NextField() {
	l.focus = (l.focus + 1) % 2
	l.syncFocus()
}

// PrevField moves focus to the previous field.
func (l *LoginModel) PrevField() {
	l.focus = (l.focus + 2 - 1) % 2
	l.syncFocus()
}

func (l *LoginModel) syncFocus() {
	if l.focus == 0 {
		l.email.Focus()
		l.password.Blur()
	} else {
		l.email.Blur()
		l.password.Focus()
	}
}

// Email returns the trimmed email value.
func (l *LoginModel) Email() string {
	return strings.TrimSpace(l.email.Value())
}

// Password returns the password value as typed.
func (l *LoginModel) Password() string {
	return l.password.Value()
}

// View renders the centered login panel.
func (l *LoginModel) View(width, height int, errorMsg, info string) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Skiff Admin"))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("Sign in with an admin account"))
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(l.email.View())
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(l.password.View())
	b.WriteString("\n")

	if l.submitting {
		b.WriteString("\n" + MutedStyle.Render("Signing in…"))
	}
	if errorMsg != "" {
		b.WriteString("\n" + ErrorStyle.Render("Error: "+errorMsg))
	}
	if info != "" {
		b.WriteString("\n" + SuccessStyle.Render(info))
	}
	b.WriteString("\n\n" + helpKey("enter", "sign in") + "  " + helpKey("tab", "next field") + "  " + helpKey("ctrl+c", "quit"))

	panel := ActivePanelStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
