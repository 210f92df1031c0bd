package ports

import "os/exec"

// URLOpener defines the interface for opening a resource link outside the app
type URLOpener interface {
	// OpenURL opens the link with the operating system's default handler
	OpenURL(rawURL string) error

	// Command returns the exec.Cmd that would open the link.
	// This is useful for integrating with bubbletea's ExecProcess
	Command(rawURL string) (*exec.Cmd, error)
}
