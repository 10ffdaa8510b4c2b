package ui

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// openedMsg reports the outcome of opening an external URL.
type openedMsg struct {
	url    string
	copied bool
	err    error
}

var errUnsupportedURL = errors.New("only http and https links can be opened")

// openExternal hands the URL to the platform's default browser.
func openExternal(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// openURLCmd opens target with opener. When that fails the URL is copied to
// the clipboard instead.
func openURLCmd(opener func(string) error, target string) tea.Cmd {
	return func() tea.Msg {
		u, err := url.Parse(target)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return openedMsg{url: target, err: errUnsupportedURL}
		}
		openErr := opener(target)
		if openErr == nil {
			return openedMsg{url: target}
		}
		if err := clipboard.WriteAll(target); err != nil {
			return openedMsg{url: target, err: errors.Join(openErr, err)}
		}
		return openedMsg{url: target, copied: true}
	}
}

func (m *Model) handleOpened(msg openedMsg) {
	switch {
	case msg.err != nil:
		m.logger.Warn("open url failed", zap.String("url", msg.url), zap.Error(msg.err))
		m.setFlash("Could not open " + msg.url)
	case msg.copied:
		m.setFlash("Copied " + msg.url + " to clipboard")
	default:
		m.logger.Info("opened url", zap.String("url", msg.url))
		m.setFlash("Opened " + msg.url)
	}
}
