package core

import (
	"strconv"

	"github.com/fatih/color"
)

// Color identifies one of the terminal colors used to decorate output.
type Color uint8

const (
	// Blue is the default Info color
	Blue Color = iota
	// Yellow is the default Warning color
	Yellow
	// Red is the default Error color
	Red
	// Gray is the default Debug color
	Gray
	// Green is the default Success color
	Green
	// Cyan is the default Step color
	Cyan
)

// Reset clears all terminal styling. Rendered output always ends with it.
var Reset = escape(color.Reset)

// attribute maps a Color to its SGR attribute
func (c Color) attribute() color.Attribute {
	switch c {
	case Blue:
		return color.FgBlue
	case Yellow:
		return color.FgYellow
	case Red:
		return color.FgRed
	case Gray:
		return color.FgHiBlack
	case Green:
		return color.FgGreen
	case Cyan:
		return color.FgCyan
	default:
		return color.FgBlue
	}
}

// Escape returns the ANSI escape sequence for the color, e.g. "\x1b[34m"
func (c Color) Escape() string {
	return escape(c.attribute())
}

// String returns the lowercase name of the color
func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Gray:
		return "gray"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	default:
		return "unknown"
	}
}

func escape(attr color.Attribute) string {
	return "\x1b[" + strconv.Itoa(int(attr)) + "m"
}
