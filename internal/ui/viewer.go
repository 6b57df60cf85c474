package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"unitlite/internal/domain"
	"unitlite/internal/storage"
)

// FailureViewer displays the failures of the last run in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays the run's failures in an interactive list with a detail pane.
// Pressing R toggles the resolved flag and persists it back to storage.
func (v *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		d := results.Details[index]
		if d.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, d.TestName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, d.TestName)
	}

	for i := range results.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	countUnresolved := func() int {
		count := 0
		for _, d := range results.Details {
			if !d.Resolved {
				count++
			}
		}
		return count
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, Ctrl+C exit ",
			len(results.Details), countUnresolved()))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			detailsView.SetText(formatDetail(results.Details[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					results.Details[index].Resolved = !results.Details[index].Resolved
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					updateDetails()
					// Persist the toggle right away; a failed save only
					// loses the resolved flag, not the run itself
					_ = v.storage.SaveOutput(results)
				}
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatDetail formats one failure for the detail pane using tview color tags
func formatDetail(d domain.FailureDetail) string {
	kind := "[red]✗ Failure"
	if d.Kind == domain.KindError {
		kind = "[red]✗ Error"
	}
	text := fmt.Sprintf("%s: %s[white]\n\n", kind, d.TestName)
	text += fmt.Sprintf("[yellow]Location: %s:%d[white]\n\n", d.File, d.Line)
	if d.Message != "" {
		text += fmt.Sprintf("[yellow]Message:[white]\n%s\n", d.Message)
	}
	return text
}
