package remote

import (
	"context"

	appErrors "github.com/noah-isme/college-portal/pkg/errors"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Approved is a Confirmer with a fixed answer, e.g. from a confirm=true query flag.
type Approved bool

// Confirm implements Confirmer.
func (a Approved) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

// Confirm returns ErrNotConfirmed unless c approves prompt. A nil Confirmer never
// approves.
func Confirm(ctx context.Context, c Confirmer, prompt string) error {
	if c == nil {
		return appErrors.ErrNotConfirmed
	}
	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return appErrors.ErrNotConfirmed
	}
	return nil
}
