package editor

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/alexanderramin/lifemap/internal/domain"
)

// DeletePrompt is the question put to the Confirmer before a subtree is removed.
const DeletePrompt = "Delete this node and all sub-nodes?"

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// AlwaysConfirm approves every prompt. Used once the UI already collected
// confirmation, or with --yes.
var AlwaysConfirm Confirmer = ConfirmFunc(func(string) bool { return true })

// SelectionListener is told whenever the selected goal changes, so editor
// fields can be repopulated.
type SelectionListener interface {
	SelectionChanged(g *domain.Goal)
}

// SelectionListenerFunc adapts a function to SelectionListener.
type SelectionListenerFunc func(g *domain.Goal)

func (f SelectionListenerFunc) SelectionChanged(g *domain.Goal) { f(g) }

// LinkOpener hands a URL to something that can display it.
type LinkOpener interface {
	Open(url string) error
}

// SystemLinkOpener opens URLs with the operating system's default handler.
type SystemLinkOpener struct{}

func (SystemLinkOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	// Reap the helper process without blocking the caller.
	go func() { _ = cmd.Wait() }()
	return nil
}
