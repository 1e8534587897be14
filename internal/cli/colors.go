package cli

import "github.com/fatih/color"

var (
	headColor  = color.New(color.FgCyan, color.Bold)
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed, color.Bold)
	totalColor = color.New(color.FgWhite, color.Bold)
)
