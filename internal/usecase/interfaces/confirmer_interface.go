package interfaces

import "context"

// IConfirmer asks the user to confirm an irreversible action.
// A false answer must abort the action before any request is sent.
type IConfirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to IConfirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}
