package feedback

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// Dialogs asks the user for input. Every method blocks until the user
// answers, so callers on the game loop must run them on another goroutine.
type Dialogs interface {
	// PromptPlaceName asks for a place name. ok is false if the user cancelled.
	PromptPlaceName() (name string, ok bool, err error)
	// ConfirmDelete asks whether to delete the evaluation for place.
	ConfirmDelete(place string) (bool, error)
}

// Notifier shows transient messages outside the game window.
type Notifier interface {
	Success(title, description string) error
	Failure(title string) error
}

// Zenity implements Dialogs and Notifier with native desktop dialogs.
type Zenity struct {
	// Title is used as the dialog window title.
	Title string
}

// NewZenity returns native dialogs titled title.
func NewZenity(title string) *Zenity {
	return &Zenity{Title: title}
}

// PromptPlaceName implements Dialogs.
func (z *Zenity) PromptPlaceName() (string, bool, error) {
	name, err := zenity.Entry("Enter place name...",
		zenity.Title(z.Title),
		zenity.OKLabel("Save Evaluation"),
	)
	return entryResult(name, err)
}

// ConfirmDelete implements Dialogs.
func (z *Zenity) ConfirmDelete(place string) (bool, error) {
	err := zenity.Question(fmt.Sprintf("Delete the evaluation for %s?", place),
		zenity.Title(z.Title),
		zenity.OKLabel("Delete"),
		zenity.CancelLabel("Keep"),
		zenity.WarningIcon,
	)
	return questionResult(err)
}

// Success implements Notifier.
func (z *Zenity) Success(title, description string) error {
	text := title
	if description != "" {
		text += "\n" + description
	}
	return zenity.Notify(text, zenity.Title(z.Title), zenity.InfoIcon)
}

// Failure implements Notifier.
func (z *Zenity) Failure(title string) error {
	return zenity.Notify(title, zenity.Title(z.Title), zenity.ErrorIcon)
}

// entryResult treats a cancelled entry dialog as "no answer" rather than an
// error.
func entryResult(name string, err error) (string, bool, error) {
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("place name dialog: %w", err)
	}
	return name, true, nil
}

// questionResult maps zenity's question outcome to a yes/no answer.
func questionResult(err error) (bool, error) {
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return false, nil
		}
		return false, fmt.Errorf("confirm dialog: %w", err)
	}
	return true, nil
}
