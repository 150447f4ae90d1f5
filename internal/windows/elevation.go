//go:build windows

package windows

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the current process token is elevated
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// RelaunchAsAdmin starts the current executable again through the UAC
// "runas" verb with the same arguments
func RelaunchAsAdmin() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	// Check if running via 'go run' (exe will be in temp dir)
	if strings.Contains(exe, "go-build") {
		return fmt.Errorf("cannot relaunch when run via 'go run', please build the executable first with: go build -o cursormon.exe")
	}

	return ShellExecute("runas", exe, relaunchArgs(os.Args[1:]))
}

// relaunchArgs quotes args into a single command line
func relaunchArgs(args []string) string {
	return windows.ComposeCommandLine(args)
}

// ShellExecute executes a file using the Windows shell
func ShellExecute(verb, file, args string) error {
	verbPtr, err := windows.UTF16PtrFromString(verb)
	if err != nil {
		return err
	}

	filePtr, err := windows.UTF16PtrFromString(file)
	if err != nil {
		return err
	}

	var argsPtr *uint16
	if args != "" {
		argsPtr, err = windows.UTF16PtrFromString(args)
		if err != nil {
			return err
		}
	}

	if err := windows.ShellExecute(0, verbPtr, filePtr, argsPtr, nil, SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("shell execute %s failed: %w", verb, err)
	}

	return nil
}
