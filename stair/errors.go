package stair

import "errors"

var (
	// ErrUnknownStair indicates an operation referenced a stair id never
	// registered via Register.
	ErrUnknownStair = errors.New("stair: stair not registered")

	// ErrNotInUse indicates Release was called for a stair with
	// users_count already at 0 — callers must uphold at most one release
	// per successful TryEnter.
	ErrNotInUse = errors.New("stair: release called with no held admission")
)
