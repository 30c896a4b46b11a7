package util

import (
	"os/exec"
	"runtime"
)

// open dispatches a URL or file path to the platform's default handler.
// Works on Windows 7+, macOS and Linux.
func open(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// rundll32 is more reliable than `cmd /c start`, especially on
		// older Windows, and handles both URLs and file paths.
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	return cmd.Start()
}

// OpenFile opens a file with the system's default application for its type.
func OpenFile(path string) error {
	return open(path)
}

// OpenBrowser opens the default browser at url.
func OpenBrowser(url string) error {
	return open(url)
}

// OpenBrowserWithFallback tries OpenBrowser and falls back to alternate
// launchers when the primary mechanism fails.
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", url).Start()
	case "linux":
		browsers := []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}
		for _, browser := range browsers {
			if err := exec.Command(browser, url).Start(); err == nil {
				return nil
			}
		}
	}

	return err
}
