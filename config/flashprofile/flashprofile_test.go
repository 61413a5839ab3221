package flashprofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownNames(t *testing.T) {
	assert.Equal(t, Baseline, Lookup("baseline"))
	assert.Equal(t, Fast, Lookup("fast"))
	assert.Equal(t, Compressed, Lookup("compressed"))
}

func TestLookupUnknownFallsBackToBaseline(t *testing.T) {
	assert.Equal(t, Baseline, Lookup("nonexistent"))
}

func TestProfilesAreOrderedFastestToSlowest(t *testing.T) {
	assert.Less(t, Compressed.Read, Fast.Read)
	assert.Less(t, Fast.Read, Baseline.Read)
	assert.Less(t, Compressed.Program, Fast.Program)
	assert.Less(t, Fast.Program, Baseline.Program)
}
