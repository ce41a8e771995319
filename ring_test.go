package roadgeom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestLinearRingBasic(t *testing.T) {
	ring, issues, err := NewLinearRing([]mgl64.Vec3{
		V3(0, 0, 0),
		V3(1, 0, 0),
		V3(1, 1, 0),
		V3(0, 1, 0),
	}, DefaultTolerance)
	require.NoError(t, err)
	require.Empty(t, issues)
	diff(t, 4, len(ring.Vertices()))
	diff(t, V3(0, 0, 1), ring.Normal(), cmpopts.EquateApprox(0, 1e-12))
	require.True(t, ring.IsPlanar())
}

func TestLinearRingDropsClosingVertex(t *testing.T) {
	ring, issues, err := NewLinearRing([]mgl64.Vec3{
		V3(0, 0, 0),
		V3(2, 0, 0),
		V3(2, 2, 0),
		V3(0, 0, 0),
	}, DefaultTolerance)
	require.NoError(t, err)
	diff(t, []Issue{{Kind: DroppedClosingVertex, Index: 3}}, issues)
	diff(t, 3, len(ring.Vertices()))
}

func TestLinearRingDropsDuplicateVertex(t *testing.T) {
	ring, issues, err := NewLinearRing([]mgl64.Vec3{
		V3(0, 0, 0),
		V3(2, 0, 0),
		V3(2, 0, 5e-8),
		V3(2, 2, 0),
	}, DefaultTolerance)
	require.NoError(t, err)
	diff(t, []Issue{{Kind: DroppedDuplicateVertex, Index: 2}}, issues)
	diff(t, 3, len(ring.Vertices()))
}

func TestLinearRingDropsRedundantVertex(t *testing.T) {
	// The vertex at (1, 0, 0) lies on the segment between its neighbors.
	ring, issues, err := NewLinearRing([]mgl64.Vec3{
		V3(0, 0, 0),
		V3(1, 0, 0),
		V3(2, 0, 0),
		V3(2, 2, 0),
		V3(0, 2, 0),
	}, DefaultTolerance)
	require.NoError(t, err)
	diff(t, []Issue{{Kind: DroppedRedundantVertex, Index: 1}}, issues)
	diff(t, 4, len(ring.Vertices()))
}

func TestLinearRingColinearInputFails(t *testing.T) {
	_, _, err := NewLinearRing([]mgl64.Vec3{
		V3(0, 0, 0),
		V3(1, 0, 0),
		V3(2, 0, 0),
	}, DefaultTolerance)
	require.ErrorIs(t, err, ErrNotEnoughVertices)

	_, _, err = NewLinearRing([]mgl64.Vec3{
		V3(0, 0, 0),
		V3(1, 1, 1),
	}, DefaultTolerance)
	require.ErrorIs(t, err, ErrNotEnoughVertices)
}

func TestLinearRingReversesClockwiseLoop(t *testing.T) {
	// Clockwise about +z.
	ring, issues, err := NewLinearRing([]mgl64.Vec3{
		V3(0, 0, 0),
		V3(0, 1, 0),
		V3(1, 1, 0),
		V3(1, 0, 0),
	}, DefaultTolerance)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	diff(t, ReversedOrientation, issues[0].Kind)
	diff(t, V3(0, 0, 1), ring.Normal(), cmpopts.EquateApprox(0, 1e-12))
}

func TestLinearRingNonPlanar(t *testing.T) {
	ring, _, err := NewLinearRing([]mgl64.Vec3{
		V3(0, 0, 0),
		V3(1, 0, 0),
		V3(1, 1, 1),
		V3(0, 1, 0),
	}, DefaultTolerance)
	require.NoError(t, err)
	require.False(t, ring.IsPlanar())
}

func TestRingLadder(t *testing.T) {
	left := []mgl64.Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(2, 0, 0)}
	right := []mgl64.Vec3{V3(0, -2, 0), V3(1, -2, 0), V3(2, -2, 0)}

	rings, issues, err := RingLadder(left, right, DefaultTolerance)
	require.NoError(t, err)
	require.Empty(t, issues)
	require.Len(t, rings, 2)
	for _, r := range rings {
		diff(t, 4, len(r.Vertices()))
		diff(t, V3(0, 0, 1), r.Normal(), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestRingLadderRejectsDegenerateRung(t *testing.T) {
	// The second rung collapses: both chains share the same points there.
	left := []mgl64.Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(2, 0, 0)}
	right := []mgl64.Vec3{V3(0, 2, 0), V3(1, 0, 0), V3(2, 0, 0)}

	_, _, err := RingLadder(left, right, DefaultTolerance)
	require.Error(t, err)
}

func TestTolerantRingLadderDropsDegenerateRings(t *testing.T) {
	left := []mgl64.Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(2, 0, 0)}
	right := []mgl64.Vec3{V3(0, 2, 0), V3(1, 2, 0), V3(2, 0, 0)}

	// The second quad degenerates to a triangle and survives; collapsing
	// the whole strip must fail.
	rings, _, err := TolerantRingLadder(left, right, DefaultTolerance)
	require.NoError(t, err)
	require.Len(t, rings, 2)

	_, issues, err := TolerantRingLadder(left, left, DefaultTolerance)
	require.ErrorIs(t, err, ErrNotEnoughVertices)
	require.NotEmpty(t, issues)
}
