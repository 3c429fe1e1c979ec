package call

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle stage of a call
type Status int

const (
	StatusCalling Status = iota
	StatusConnected
	StatusEnded
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusCalling:
		return "Calling"
	case StatusConnected:
		return "Connected"
	case StatusEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Kind distinguishes audio from video calls
type Kind int

const (
	KindAudio Kind = iota
	KindVideo
)

// String returns the string representation of the kind
func (k Kind) String() string {
	if k == KindVideo {
		return "Video"
	}
	return "Audio"
}

var (
	// ErrNotCalling is returned by Connect when the call already left the calling state
	ErrNotCalling = errors.New("call is not in the calling state")
	// ErrEnded is returned by toggles and Tick once the call has ended
	ErrEnded = errors.New("call has ended")
)

// Session is a single call's state: the lifecycle machine plus the device
// toggles. Toggles carry intent only; they never affect the lifecycle.
// The owning model holds at most one Session at a time and tags its timer
// commands with Generation so a destroyed call's tick is dropped.
type Session struct {
	ContactName string
	Kind        Kind
	Generation  uint64

	status    Status
	elapsed   int
	muted     bool
	videoOn   bool
	speakerOn bool
}

// NewSession creates a call in the calling state. Video calls start with the
// local video toggle enabled.
func NewSession(contactName string, kind Kind, generation uint64) *Session {
	return &Session{
		ContactName: contactName,
		Kind:        kind,
		Generation:  generation,
		status:      StatusCalling,
		videoOn:     kind == KindVideo,
	}
}

// Status returns the current lifecycle stage
func (s *Session) Status() Status { return s.status }

// Elapsed returns the whole seconds spent connected
func (s *Session) Elapsed() int { return s.elapsed }

// Muted reports the mute toggle
func (s *Session) Muted() bool { return s.muted }

// VideoEnabled reports the local video toggle
func (s *Session) VideoEnabled() bool { return s.videoOn }

// SpeakerOn reports the speaker toggle
func (s *Session) SpeakerOn() bool { return s.speakerOn }

// Connect moves the call from calling to connected with the elapsed counter
// at zero. The simulated connection latency fires this via a timer command.
func (s *Session) Connect() error {
	if s.status != StatusCalling {
		return ErrNotCalling
	}
	s.status = StatusConnected
	s.elapsed = 0
	return nil
}

// Tick advances the elapsed counter by one second. Ticks that arrive while
// the call is not connected are ignored.
func (s *Session) Tick() {
	if s.status == StatusConnected {
		s.elapsed++
	}
}

// HangUp ends the call from either calling or connected. Ending an already
// ended call is a no-op.
func (s *Session) HangUp() {
	s.status = StatusEnded
}

// ToggleMute flips the mute toggle
func (s *Session) ToggleMute() error {
	if s.status == StatusEnded {
		return ErrEnded
	}
	s.muted = !s.muted
	return nil
}

// ToggleVideo flips the local video toggle
func (s *Session) ToggleVideo() error {
	if s.status == StatusEnded {
		return ErrEnded
	}
	s.videoOn = !s.videoOn
	return nil
}

// ToggleSpeaker flips the speaker toggle
func (s *Session) ToggleSpeaker() error {
	if s.status == StatusEnded {
		return ErrEnded
	}
	s.speakerOn = !s.speakerOn
	return nil
}

// StatusLabel returns the text shown under the contact name: "Ringing..."
// while calling, the elapsed time while connected, "Call ended" after.
func (s *Session) StatusLabel() string {
	switch s.status {
	case StatusCalling:
		return "Ringing..."
	case StatusConnected:
		return FormatDuration(s.elapsed)
	default:
		return "Call ended"
	}
}

// FormatDuration renders whole seconds as zero-padded MM:SS
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
