package middleware

import (
	"io"
	"log/slog"
	"testing"

	"avy-dashboard/internal/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSession map[string]any

func (m mapSession) Get(key interface{}) interface{} {
	return m[key.(string)]
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoadState_Fresh(t *testing.T) {
	st, fresh := loadState(mapSession{}, rating.DefaultGrid(), discard)
	require.True(t, fresh)
	assert.NotEmpty(t, st.SessionID)
	assert.Equal(t, rating.DefaultSelection(), st.Selection)
	assert.Equal(t, rating.DefaultGrid(), st.Grid.Grid())

	other, _ := loadState(mapSession{}, rating.DefaultGrid(), discard)
	assert.NotEqual(t, st.SessionID, other.SessionID)
}

func TestLoadState_Existing(t *testing.T) {
	edited := rating.DefaultGrid()
	edited[5][5] = rating.NoRating

	st, fresh := loadState(mapSession{
		keySessionID:    "sid-1",
		keySensitivity:  5,
		keyDistribution: 3,
		keySizeLo:       0,
		keySizeHi:       8,
		keyGrid:         edited.Encode(),
	}, rating.DefaultGrid(), discard)

	require.False(t, fresh)
	assert.Equal(t, "sid-1", st.SessionID)
	assert.Equal(t, rating.Selection{Sensitivity: 5, Distribution: 3, Size: rating.IndexRange{Lo: 0, Hi: 8}}, st.Selection)
	assert.Equal(t, edited, st.Grid.Grid())

	st.Grid.Reset()
	assert.Equal(t, rating.DefaultGrid(), st.Grid.Grid())
}

func TestLoadState_RecoversFromBadValues(t *testing.T) {
	st, fresh := loadState(mapSession{
		keySessionID:   "sid-2",
		keySensitivity: "six",
		keySizeLo:      7,
		keySizeHi:      2,
		keyGrid:        "garbage",
	}, rating.DefaultGrid(), discard)

	require.False(t, fresh)
	assert.Equal(t, 2, st.Selection.Sensitivity)
	assert.Equal(t, 1, st.Selection.Distribution)
	assert.Equal(t, rating.IndexRange{Lo: 2, Hi: 7}, st.Selection.Size)
	assert.Equal(t, rating.DefaultGrid(), st.Grid.Grid())
}
