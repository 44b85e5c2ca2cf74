package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/phanxgames/dualdial"
	"github.com/phanxgames/dualdial/internal/evaluation"
	"github.com/phanxgames/dualdial/pkg/logger"
)

// Busy reports whether a dialog is open.
func (a *App) Busy() bool {
	return a.busy
}

// Save asks for a place name and stores the current selection under it.
// The selection is captured now; the dialog outcome is applied on a later
// Update. It does nothing while another dialog is open.
func (a *App) Save() {
	if a.busy {
		return
	}
	a.busy = true
	sel := a.dial.Selection()
	go func() {
		name, ok, err := a.dialogs.PromptPlaceName()
		a.results <- func() { a.finishSave(sel, name, ok, err) }
	}()
}

func (a *App) finishSave(sel dualdial.Selection, name string, ok bool, err error) {
	a.busy = false
	ctx := context.Background()
	if err != nil {
		a.logError("place name dialog failed", err)
		a.fail("Could not open the save dialog")
		return
	}
	if !ok {
		return
	}

	e, err := a.store.Save(ctx, name, sel.Outer, sel.Inner)
	switch {
	case errors.Is(err, evaluation.ErrEmptyPlaceName):
		a.fail("Please enter a place name")
		return
	case err != nil:
		a.logError("save evaluation failed", err)
		a.fail("Could not save the evaluation")
		return
	}

	if a.metrics != nil {
		a.metrics.EvaluationSaved(a.store.Count(ctx))
	}
	if a.log != nil {
		a.log.Info(ctx, "evaluation saved",
			logger.String("id", e.ID),
			logger.String("place", e.PlaceName),
			logger.String("outer", e.OuterCharacteristic),
			logger.String("inner", e.InnerCharacteristic),
		)
	}
	a.succeed(fmt.Sprintf("Evaluation saved for %s", e.PlaceName), e.Summary())
}

// Delete asks for confirmation and removes the evaluation with id.
func (a *App) Delete(id string) {
	if a.busy {
		return
	}
	e, err := a.store.Get(context.Background(), id)
	if err != nil {
		a.logError("delete unknown evaluation", err)
		return
	}
	a.busy = true
	go func() {
		yes, err := a.dialogs.ConfirmDelete(e.PlaceName)
		a.results <- func() { a.finishDelete(e, yes, err) }
	}()
}

func (a *App) finishDelete(e evaluation.Evaluation, yes bool, err error) {
	a.busy = false
	ctx := context.Background()
	if err != nil {
		a.logError("confirm dialog failed", err)
		a.fail("Could not open the confirmation dialog")
		return
	}
	if !yes {
		return
	}
	if _, err := a.store.Delete(ctx, e.ID); err != nil {
		// Already removed, for example through the inspector.
		a.logError("delete evaluation failed", err)
		return
	}
	if a.metrics != nil {
		a.metrics.EvaluationDeleted(a.store.Count(ctx))
	}
	a.succeed(fmt.Sprintf("Deleted evaluation for %s", e.PlaceName), "")
}

func (a *App) logError(msg string, err error) {
	if a.log == nil {
		return
	}
	a.log.Error(context.Background(), msg, logger.Error(err))
}
