package roadgeom

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorMessage(t *testing.T) {
	err := &DomainError{Position: 12, Domain: ClosedInterval(0, 10)}
	diff(t, "roadgeom: position 12 outside domain [0, 10]", err.Error())
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("segment 3: %w", ErrDegenerateCurve)
	if !errors.Is(wrapped, ErrDegenerateCurve) {
		t.Error("wrapped sentinel must match errors.Is")
	}
}

func TestIssueString(t *testing.T) {
	diff(t, "dropped duplicate vertex at index 4", Issue{Kind: DroppedDuplicateVertex, Index: 4}.String())
	diff(t, "reversed orientation", ReversedOrientation.String())
}
