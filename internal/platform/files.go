package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Desktop folder name, identical across supported platforms
const desktopDirName = "Desktop"

// DesktopDir returns the standard desktop directory for the current user.
func DesktopDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, desktopDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist. A path
// that exists but is not a directory is an error, so the caller fails here
// instead of on a later move into it.
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists and is not a directory: %s", dirPath)
	}
	return nil
}

// OpenFolderInManager opens the given directory in the system file manager.
func OpenFolderInManager(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("directory does not exist: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return openFolderMacOS(absPath)
	case OSWindows:
		return openFolderWindows(absPath)
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderMacOS opens the directory in Finder on macOS
func openFolderMacOS(dirPath string) error {
	cmd := exec.Command(OpenCommand, dirPath)
	return cmd.Run()
}

// openFolderWindows opens the directory in Explorer on Windows
func openFolderWindows(dirPath string) error {
	cmd := exec.Command(ExplorerCommand, dirPath)
	return cmd.Run()
}

// openFolderLinux opens the directory with xdg-open, falling back to common
// file managers when xdg-open is unavailable
func openFolderLinux(dirPath string) error {
	cmd := exec.Command(XDGOpenCommand, dirPath)
	if err := cmd.Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dirPath)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
