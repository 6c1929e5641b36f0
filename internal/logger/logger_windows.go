//go:build windows
// +build windows

package logger

import (
	"os"

	"golang.org/x/sys/windows"
)

const SupportsColorEscapes = true

func GetTerminalInfo(file *os.File) TerminalInfo {
	fd := windows.Handle(file.Fd())

	// Is this file descriptor a terminal?
	var mode uint32
	if err := windows.GetConsoleMode(fd, &mode); err != nil {
		return TerminalInfo{}
	}

	// Enable virtual terminal sequences so ANSI colors work on modern consoles
	useColor := false
	if err := windows.SetConsoleMode(fd, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err == nil {
		useColor = !hasNoColorEnvironmentVariable()
	}

	// Get the width of the window
	var info windows.ConsoleScreenBufferInfo
	windows.GetConsoleScreenBufferInfo(fd, &info)

	return TerminalInfo{
		IsTTY:           true,
		Width:           int(info.Size.X) - 1,
		Height:          int(info.Size.Y) - 1,
		UseColorEscapes: useColor,
	}
}

func writeStringWithColor(file *os.File, text string) {
	file.WriteString(text)
}
