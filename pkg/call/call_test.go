package call

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	s := NewSession("Anna Smirnova", KindAudio, 1)

	assert.Equal(t, StatusCalling, s.Status())
	assert.Equal(t, "Ringing...", s.StatusLabel())

	// Ticks before connect must not count
	s.Tick()
	s.Tick()
	assert.Equal(t, 0, s.Elapsed())

	require.NoError(t, s.Connect())
	assert.Equal(t, StatusConnected, s.Status())
	assert.Equal(t, 0, s.Elapsed())
	assert.Equal(t, "00:00", s.StatusLabel())

	s.Tick()
	s.Tick()
	s.Tick()
	assert.Equal(t, 3, s.Elapsed())
	assert.Equal(t, "00:03", s.StatusLabel())

	s.HangUp()
	assert.Equal(t, StatusEnded, s.Status())
	assert.Equal(t, "Call ended", s.StatusLabel())

	// Ticks after hang up must not count
	s.Tick()
	assert.Equal(t, 3, s.Elapsed())

	// Connect never applies after ended
	assert.ErrorIs(t, s.Connect(), ErrNotCalling)
}

func TestHangUpWhileRinging(t *testing.T) {
	s := NewSession("Anna Smirnova", KindAudio, 1)
	s.HangUp()
	assert.Equal(t, StatusEnded, s.Status())
	assert.ErrorIs(t, s.Connect(), ErrNotCalling)
}

func TestVideoStartsEnabledForVideoCalls(t *testing.T) {
	video := NewSession("Dmitry Ivanov", KindVideo, 1)
	assert.True(t, video.VideoEnabled())

	audio := NewSession("Dmitry Ivanov", KindAudio, 2)
	assert.False(t, audio.VideoEnabled())
}

func TestToggles(t *testing.T) {
	s := NewSession("Anna Smirnova", KindVideo, 1)

	require.NoError(t, s.ToggleMute())
	assert.True(t, s.Muted())
	require.NoError(t, s.ToggleMute())
	assert.False(t, s.Muted())

	require.NoError(t, s.ToggleVideo())
	assert.False(t, s.VideoEnabled())

	require.NoError(t, s.ToggleSpeaker())
	assert.True(t, s.SpeakerOn())

	// Toggles stay legal while ringing and connected, not after ended
	require.NoError(t, s.Connect())
	require.NoError(t, s.ToggleMute())

	s.HangUp()
	assert.ErrorIs(t, s.ToggleMute(), ErrEnded)
	assert.ErrorIs(t, s.ToggleVideo(), ErrEnded)
	assert.ErrorIs(t, s.ToggleSpeaker(), ErrEnded)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "00:09", FormatDuration(9))
	assert.Equal(t, "01:00", FormatDuration(60))
	assert.Equal(t, "12:34", FormatDuration(12*60+34))
	assert.Equal(t, "99:59", FormatDuration(99*60+59))
}
