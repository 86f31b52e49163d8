// Package console prints run progress and results with lipgloss styles.
package console
