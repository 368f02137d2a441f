package pipeline

import (
	"fmt"

	"github.com/fatih/color"
)

// Palette holds the color functions used for console messages.
type Palette struct {
	Green  func(a ...interface{}) string
	Yellow func(a ...interface{}) string
	Cyan   func(a ...interface{}) string
	Gray   func(a ...interface{}) string
	Red    func(a ...interface{}) string
}

// ColorPalette returns a palette backed by fatih/color.
func ColorPalette() Palette {
	return Palette{
		Green:  color.New(color.FgGreen, color.Bold).SprintFunc(),
		Yellow: color.New(color.FgYellow).SprintFunc(),
		Cyan:   color.New(color.FgCyan).SprintFunc(),
		Gray:   color.New(color.FgHiBlack).SprintFunc(),
		Red:    color.New(color.FgRed).SprintFunc(),
	}
}

// PlainPalette returns a palette that adds no escape codes.
func PlainPalette() Palette {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return Palette{Green: noColor, Yellow: noColor, Cyan: noColor, Gray: noColor, Red: noColor}
}
