package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"notes-client/internal/note"
)

// Options are the global flags shared by every command.
type Options struct {
	ConfigPath string
	APIURL     string
	Lenient    bool
	Verbose    bool
}

// SetupFunc builds the use case once flags are parsed. The returned close
// function runs after the command finishes.
type SetupFunc func(ctx context.Context, opts Options) (note.UseCase, func(), error)

type handler struct {
	setup   SetupFunc
	opts    Options
	uc      note.UseCase
	cleanup func()
}

// alertedError marks a failure the presenter already reported.
type alertedError struct{ err error }

func (e *alertedError) Error() string { return e.err.Error() }
func (e *alertedError) Unwrap() error { return e.err }

func alerted(err error) error {
	if err == nil {
		return nil
	}
	return &alertedError{err: err}
}

// IsAlerted reports whether err was already shown to the user.
func IsAlerted(err error) bool {
	var a *alertedError
	return errors.As(err, &a)
}

func (h *handler) presenter(cmd *cobra.Command) note.Presenter {
	return &presenter{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
}

// run wraps a command body so the setup's cleanup always runs.
func (h *handler) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if h.cleanup != nil {
			defer h.cleanup()
		}
		return fn(cmd, args)
	}
}
