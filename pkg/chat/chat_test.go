package chat

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func singleConvStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.Add(&Conversation{ID: 1, Name: "Anna Smirnova", Online: true})
	return s
}

func TestSendTextCommitsDraft(t *testing.T) {
	s := singleConvStore(t)

	require.NoError(t, s.AppendDraft(1, "hello"))
	require.NoError(t, s.AppendDraft(1, " there \U0001F60A"))

	msg, err := s.SendText(1)
	require.NoError(t, err)

	assert.Equal(t, "hello there \U0001F60A", msg.Text)
	assert.True(t, msg.Mine)
	assert.Equal(t, StatusSent, msg.Status)
	assert.Equal(t, KindText, msg.Kind)

	c, _ := s.Get(1)
	assert.Len(t, c.Messages(), 1)
	assert.Empty(t, c.Draft(), "draft must clear on send")
}

func TestSendTextEmptyDraftIsNoOp(t *testing.T) {
	s := singleConvStore(t)

	_, err := s.SendText(1)
	assert.ErrorIs(t, err, ErrEmptyDraft)

	require.NoError(t, s.SetDraft(1, "   \t  "))
	_, err = s.SendText(1)
	assert.ErrorIs(t, err, ErrEmptyDraft)

	c, _ := s.Get(1)
	assert.Empty(t, c.Messages())
	assert.Equal(t, "   \t  ", c.Draft(), "whitespace draft must stay unchanged")
}

func TestMessageIDsIncrease(t *testing.T) {
	s := singleConvStore(t)

	s.SetDraft(1, "one")
	first, err := s.SendText(1)
	require.NoError(t, err)

	second, err := s.Receive(1, "two", true)
	require.NoError(t, err)

	s.SetDraft(1, "three")
	third, err := s.SendText(1)
	require.NoError(t, err)

	assert.Equal(t, first.ID+1, second.ID)
	assert.Equal(t, second.ID+1, third.ID)
}

func TestAttachImage(t *testing.T) {
	s := singleConvStore(t)

	payload := []byte{0x89, 'P', 'N', 'G'}
	msg, err := s.Attach(1, "cat.png", "image/png", bytes.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, KindImage, msg.Kind)
	assert.Equal(t, "cat.png", msg.FileName)
	assert.Equal(t, payload, msg.Payload)
	assert.Equal(t, StatusSent, msg.Status)
	assert.True(t, msg.Mine)
}

func TestAttachGenericFile(t *testing.T) {
	s := singleConvStore(t)

	msg, err := s.Attach(1, "report.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, KindFile, msg.Kind)

	c, _ := s.Get(1)
	assert.Equal(t, "\U0001F4CE report.pdf", c.LastPreview())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestAttachReadFailureAppendsNothing(t *testing.T) {
	s := singleConvStore(t)

	_, err := s.Attach(1, "broken.bin", "application/octet-stream", failingReader{})
	require.Error(t, err)

	c, _ := s.Get(1)
	assert.Empty(t, c.Messages(), "failed read must not append a message")
}

func TestReceiveBumpsUnreadUnlessOpen(t *testing.T) {
	s := singleConvStore(t)

	_, err := s.Receive(1, "hi", false)
	require.NoError(t, err)
	_, err = s.Receive(1, "you there?", false)
	require.NoError(t, err)

	c, _ := s.Get(1)
	assert.Equal(t, 2, c.Unread())

	_, err = s.Receive(1, "ok", true)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Unread(), "open conversation must not accrue unread")

	require.NoError(t, s.Open(1))
	assert.Zero(t, c.Unread())
}

func TestAdvanceStatusMonotonic(t *testing.T) {
	s := singleConvStore(t)
	s.SetDraft(1, "hello")
	msg, err := s.SendText(1)
	require.NoError(t, err)

	require.NoError(t, s.AdvanceStatus(1, msg.ID, StatusDelivered))
	require.NoError(t, s.AdvanceStatus(1, msg.ID, StatusRead))

	err = s.AdvanceStatus(1, msg.ID, StatusDelivered)
	assert.ErrorIs(t, err, ErrStatusRegression)

	c, _ := s.Get(1)
	assert.Equal(t, StatusRead, c.Messages()[0].Status)

	// Re-applying the current status is allowed (duplicate ack)
	assert.NoError(t, s.AdvanceStatus(1, msg.ID, StatusRead))
}

func TestFilter(t *testing.T) {
	s := SeedStore()

	assert.Len(t, s.Filter(""), 5)
	assert.Len(t, s.Filter("ova"), 3)

	got := s.Filter("dmitry")
	require.Len(t, got, 1)
	assert.Equal(t, "Dmitry Ivanov", got[0].Name)

	assert.Empty(t, s.Filter("nobody"))
}

func TestUnknownConversation(t *testing.T) {
	s := NewStore()
	_, err := s.SendText(42)
	assert.ErrorIs(t, err, ErrUnknownConversation)
	assert.ErrorIs(t, s.Open(42), ErrUnknownConversation)
	assert.ErrorIs(t, s.AppendDraft(42, "x"), ErrUnknownConversation)
}

// TestConversationInvariants drives one conversation with random sends,
// receipts and acks and checks that ids stay strictly increasing and
// delivery status never regresses.
func TestConversationInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewStore()
		s.Add(&Conversation{ID: 1, Name: "test"})
		statuses := make(map[int64]DeliveryStatus)

		actions := rapid.SliceOfN(rapid.IntRange(0, 2), 1, 60).Draw(t, "actions")
		for _, a := range actions {
			switch a {
			case 0:
				s.SetDraft(1, rapid.StringMatching(`[a-z ]{0,10}`).Draw(t, "draft"))
				if msg, err := s.SendText(1); err == nil {
					statuses[msg.ID] = msg.Status
				}
			case 1:
				msg, err := s.Receive(1, "in", rapid.Bool().Draw(t, "open"))
				if err != nil {
					t.Fatalf("Receive() error = %v", err)
				}
				_ = msg
			case 2:
				c, _ := s.Get(1)
				msgs := c.Messages()
				if len(msgs) == 0 {
					continue
				}
				target := msgs[rapid.IntRange(0, len(msgs)-1).Draw(t, "target")]
				if !target.Mine {
					continue
				}
				next := DeliveryStatus(rapid.IntRange(0, 2).Draw(t, "status"))
				err := s.AdvanceStatus(1, target.ID, next)
				if next < statuses[target.ID] {
					if !errors.Is(err, ErrStatusRegression) {
						t.Fatalf("regression %v -> %v accepted", statuses[target.ID], next)
					}
				} else if err != nil {
					t.Fatalf("AdvanceStatus(%v) error = %v", next, err)
				} else {
					statuses[target.ID] = next
				}
			}
		}

		c, _ := s.Get(1)
		msgs := c.Messages()
		for i := 1; i < len(msgs); i++ {
			if msgs[i].ID <= msgs[i-1].ID {
				t.Fatalf("ids not strictly increasing: %d then %d", msgs[i-1].ID, msgs[i].ID)
			}
		}
	})
}
