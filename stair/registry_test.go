package stair

import (
	"testing"

	"github.com/corvid-games/waymesh/mapgraph"
	"github.com/stretchr/testify/require"
)

// TestSingleMode_AtMostOneUser covers invariant 1: a Single stair never
// admits more than one concurrent user.
func TestSingleMode_AtMostOneUser(t *testing.T) {
	r := NewRegistry()
	r.Register(0, mapgraph.StairModeSingle)

	adm, err := r.TryEnter(0, Up)
	require.NoError(t, err)
	require.Equal(t, Admitted, adm)

	adm, err = r.TryEnter(0, Up)
	require.NoError(t, err)
	require.Equal(t, Denied, adm, "second concurrent entrant must be denied")

	require.NoError(t, r.Release(0))
	adm, err = r.TryEnter(0, Down)
	require.NoError(t, err)
	require.Equal(t, Admitted, adm, "after release the stair becomes available again")
}

// TestDirectionMode_SharedDirectionOnly covers invariant 2: while
// users_count > 0 on a Direction stair, all admitted users share the
// stored direction.
func TestDirectionMode_SharedDirectionOnly(t *testing.T) {
	r := NewRegistry()
	r.Register(0, mapgraph.StairModeDirection)

	adm, err := r.TryEnter(0, Up)
	require.NoError(t, err)
	require.Equal(t, Admitted, adm)

	adm, err = r.TryEnter(0, Up)
	require.NoError(t, err)
	require.Equal(t, Admitted, adm, "same-direction entrant admitted while busy")

	adm, err = r.TryEnter(0, Down)
	require.NoError(t, err)
	require.Equal(t, Denied, adm, "opposite-direction entrant denied while busy")

	st, ok := r.State(0)
	require.True(t, ok)
	require.Equal(t, uint32(2), st.UsersCount)
	require.True(t, st.HasDirection)
	require.Equal(t, Up, st.Direction)
}

func TestDirectionMode_ClearsDirectionWhenEmpty(t *testing.T) {
	r := NewRegistry()
	r.Register(0, mapgraph.StairModeDirection)
	_, err := r.TryEnter(0, Up)
	require.NoError(t, err)
	require.NoError(t, r.Release(0))

	st, ok := r.State(0)
	require.True(t, ok)
	require.Equal(t, uint32(0), st.UsersCount)
	require.False(t, st.HasDirection)

	adm, err := r.TryEnter(0, Down)
	require.NoError(t, err)
	require.Equal(t, Admitted, adm, "an idle Direction stair accepts either direction")
}

func TestAllMode_Unlimited(t *testing.T) {
	r := NewRegistry()
	r.Register(0, mapgraph.StairModeAll)
	for i := 0; i < 50; i++ {
		adm, err := r.TryEnter(0, Up)
		require.NoError(t, err)
		require.Equal(t, Admitted, adm)
	}
	st, _ := r.State(0)
	require.Equal(t, uint32(50), st.UsersCount)
}

// TestRelease_IdempotencyGuard covers invariant 4's decrement-by-exactly-1
// contract: a Release beyond what was admitted must be rejected rather
// than silently underflowing users_count.
func TestRelease_IdempotencyGuard(t *testing.T) {
	r := NewRegistry()
	r.Register(0, mapgraph.StairModeSingle)
	_, err := r.TryEnter(0, Up)
	require.NoError(t, err)
	require.NoError(t, r.Release(0))
	require.ErrorIs(t, r.Release(0), ErrNotInUse)
}

func TestUnknownStair(t *testing.T) {
	r := NewRegistry()
	_, err := r.TryEnter(99, Up)
	require.ErrorIs(t, err, ErrUnknownStair)
	require.ErrorIs(t, r.Release(99), ErrUnknownStair)
}

// TestScenario_S3_DirectionGatedStair implements scenario S3: entity A
// travels up and holds admission; B requests up shortly after and is
// admitted (same direction); C requests down and is denied.
func TestScenario_S3_DirectionGatedStair(t *testing.T) {
	r := NewRegistry()
	const stairID mapgraph.NodeID = 7
	r.Register(stairID, mapgraph.StairModeDirection)

	admA, err := r.TryEnter(stairID, Up)
	require.NoError(t, err)
	require.Equal(t, Admitted, admA)

	admB, err := r.TryEnter(stairID, Up)
	require.NoError(t, err)
	require.Equal(t, Admitted, admB, "B shares A's direction and should be admitted")

	admC, err := r.TryEnter(stairID, Down)
	require.NoError(t, err)
	require.Equal(t, Denied, admC, "C travels the opposite direction and must be denied")
}
