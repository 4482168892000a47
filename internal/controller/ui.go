// Package controller provides output renderers for the jibfiles CLI.
package controller

import "context"

// ModuleSummary holds the list sizes for one module's file report.
type ModuleSummary struct {
	Module string
	Build  int
	Inputs int
	Ignore int
}

// UI renders human-facing views. The wire payload never goes through a UI:
// it is written directly to the command's output stream so watchers can
// parse it.
type UI interface {
	DisplaySummary(ctx context.Context, rows []ModuleSummary) error
}
