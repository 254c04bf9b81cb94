// Package ui renders operator-facing terminal output: section titles,
// bordered previews and status lines. Colors are dropped automatically when
// the output is not a terminal or when disabled.
package ui
