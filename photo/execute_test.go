package photo

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMover captures every move it is asked to perform and can be
// told to fail from a given call onward.
type recordingMover struct {
	calls  [][2]string
	failAt int // 1-based call index that fails; 0 means never
}

func (m *recordingMover) move(oldPath, newPath string) error {
	m.calls = append(m.calls, [2]string{oldPath, newPath})
	if m.failAt > 0 && len(m.calls) >= m.failAt {
		return errors.New("disk on fire")
	}
	return nil
}

func TestExecute_DryRunTouchesNothing(t *testing.T) {
	mover := &recordingMover{}
	batch := []Rename{
		{Original: "IMG0332.JPG", Target: "20140818_202345.jpg"},
		{Original: "IMG0333.JPG", Target: "20140818_202346.jpg"},
	}

	err := Execute("/photos", batch, false, mover.move)

	require.NoError(t, err)
	assert.Empty(t, mover.calls, "dry run must not invoke the mover")
}

func TestExecute_MovesEveryEntryWithFullPaths(t *testing.T) {
	mover := &recordingMover{}
	batch := []Rename{
		{Original: "IMG0332.JPG", Target: "20140818_202345.jpg"},
		{Original: "party pic.jpeg", Target: "party_pic.jpg"},
	}

	err := Execute("/photos", batch, true, mover.move)

	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{filepath.Join("/photos", "IMG0332.JPG"), filepath.Join("/photos", "20140818_202345.jpg")},
		{filepath.Join("/photos", "party pic.jpeg"), filepath.Join("/photos", "party_pic.jpg")},
	}, mover.calls)
}

func TestExecute_HaltsOnFirstFailure(t *testing.T) {
	mover := &recordingMover{failAt: 2}
	batch := []Rename{
		{Original: "a.JPG", Target: "a.jpg"},
		{Original: "b.JPG", Target: "b.jpg"},
		{Original: "c.JPG", Target: "c.jpg"},
	}

	err := Execute("/photos", batch, true, mover.move)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.JPG")
	assert.Len(t, mover.calls, 2, "remaining entries must not be attempted")
}

func TestExecute_EmptyBatch(t *testing.T) {
	mover := &recordingMover{}
	require.NoError(t, Execute("/photos", nil, true, mover.move))
	assert.Empty(t, mover.calls)
}
