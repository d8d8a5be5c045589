package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dmitrijs2005/farmsync/internal/client/services"
)

type styles struct {
	title   lipgloss.Style
	offline lipgloss.Style
	success lipgloss.Style
	failed  lipgloss.Style
	muted   lipgloss.Style
}

// newStyles draws boxed, colored banners on terminals and plain text
// everywhere else.
func newStyles(out io.Writer) styles {
	plain := lipgloss.NewStyle()
	if !isTerminal(out) {
		return styles{title: plain, offline: plain, success: plain, failed: plain, muted: plain}
	}

	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		offline: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1),
		success: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Foreground(lipgloss.Color("42")).
			Padding(0, 1),
		failed: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		muted:  lipgloss.NewStyle().Faint(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *App) offlineBanner() string {
	s := a.sync.State()
	msg := "Offline: operations are saved on this device and will be sent when the connection returns."
	if s.Pending > 0 {
		msg += fmt.Sprintf("\n%d operation(s) waiting to sync.", s.Pending)
	}
	return a.styles.offline.Render(msg)
}

func (a *App) successBanner(s services.SyncState) string {
	msg := "Sync complete."
	if r := s.LastReport; r != nil {
		msg = fmt.Sprintf("Sync complete: %d sent", r.Succeeded)
		if r.Failed > 0 {
			msg += fmt.Sprintf(", %d failed", r.Failed)
		}
		if r.Skipped > 0 {
			msg += fmt.Sprintf(", %d waiting", r.Skipped)
		}
		msg += "."
	}
	return a.styles.success.Render(msg)
}
