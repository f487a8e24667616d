package krtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestJoinDiagrams_EmptyBlock verifies the degenerate layout: a factor with
// no lines occupies a one-column blank instead of vanishing.
func TestJoinDiagrams_EmptyBlock(t *testing.T) {
	got := joinDiagrams([][]string{nil, {"  1", "  2"}})
	assert.Equal(t, "  (X)   1\n        2", got)
}

// TestJoinDiagrams_UnevenHeights pads the shorter factor with blanks of its
// own width on deeper rows.
func TestJoinDiagrams_UnevenHeights(t *testing.T) {
	got := joinDiagrams([][]string{{"  1"}, {"  1", "  2"}})
	assert.Equal(t, "  1 (X)   1\n          2", got)
}
