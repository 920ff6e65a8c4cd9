// Package color provides the lipgloss styles pegfit uses for verdicts.
//
// Styles are bound to the writer they render for. When that writer is not
// a terminal, lipgloss falls back to its ASCII profile and the styles
// render plain text, so redirected output never carries escape codes.
// Colour can also be switched off outright (the --no-color flag, the
// NO_COLOR environment variable or `color: false` in the config file).
//
// # Theme System
//
// Colours are adaptive: each one has a light and a dark variant and
// lipgloss picks one depending on the background set with Initialize.
//
// # Usage Example
//
//	color.Initialize(true)
//	styles := color.NewStyles(os.Stdout, true)
//	fmt.Println(styles.Verdict(true))
package color
