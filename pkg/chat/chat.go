package chat

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// DeliveryStatus is the acknowledgment stage of an outbound message.
// It only ever advances: sent, then delivered, then read.
type DeliveryStatus int

const (
	StatusSent DeliveryStatus = iota
	StatusDelivered
	StatusRead
)

// String returns the string representation of the status
func (s DeliveryStatus) String() string {
	switch s {
	case StatusSent:
		return "Sent"
	case StatusDelivered:
		return "Delivered"
	case StatusRead:
		return "Read"
	default:
		return "Unknown"
	}
}

// ContentKind distinguishes plain text from inline images and generic files
type ContentKind int

const (
	KindText ContentKind = iota
	KindImage
	KindFile
)

var (
	// ErrEmptyDraft is returned by SendText when the trimmed draft is empty
	ErrEmptyDraft = errors.New("draft is empty")
	// ErrUnknownConversation is returned for operations on a missing conversation id
	ErrUnknownConversation = errors.New("unknown conversation")
	// ErrUnknownMessage is returned for status updates on a missing message id
	ErrUnknownMessage = errors.New("unknown message")
	// ErrStatusRegression is returned when a status update would move backwards
	ErrStatusRegression = errors.New("delivery status never regresses")
)

// Message is a single chat entry. Immutable once created except Status,
// which only advances.
type Message struct {
	ID       int64
	Text     string
	SentAt   time.Time
	Mine     bool
	Status   DeliveryStatus
	Kind     ContentKind
	FileName string
	Payload  []byte
}

// Conversation is one contact's thread: its catalog entry plus the ordered
// message list and the uncommitted draft.
type Conversation struct {
	ID     int64
	Name   string
	Online bool
	Typing bool

	messages []Message
	draft    string
	unread   int
}

// Messages returns the ordered message list
func (c *Conversation) Messages() []Message { return c.messages }

// Draft returns the uncommitted composer text
func (c *Conversation) Draft() string { return c.draft }

// Unread returns the unread message count
func (c *Conversation) Unread() int { return c.unread }

// LastPreview returns the text shown in the chat list row
func (c *Conversation) LastPreview() string {
	if len(c.messages) == 0 {
		return ""
	}
	last := c.messages[len(c.messages)-1]
	switch last.Kind {
	case KindImage:
		return "\U0001F4F7 " + last.FileName
	case KindFile:
		return "\U0001F4CE " + last.FileName
	default:
		return last.Text
	}
}

// LastActivity returns the timestamp of the newest message
func (c *Conversation) LastActivity() time.Time {
	if len(c.messages) == 0 {
		return time.Time{}
	}
	return c.messages[len(c.messages)-1].SentAt
}

// nextID returns one past the highest message id in the conversation
func (c *Conversation) nextID() int64 {
	var max int64
	for _, m := range c.messages {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// Store owns every conversation, in catalog order
type Store struct {
	order []int64
	convs map[int64]*Conversation
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{convs: make(map[int64]*Conversation)}
}

// Add registers a conversation; catalog order is insertion order
func (s *Store) Add(c *Conversation) {
	if _, exists := s.convs[c.ID]; !exists {
		s.order = append(s.order, c.ID)
	}
	s.convs[c.ID] = c
}

// Get returns a conversation by id
func (s *Store) Get(id int64) (*Conversation, bool) {
	c, ok := s.convs[id]
	return c, ok
}

// All returns the conversations in catalog order
func (s *Store) All() []*Conversation {
	out := make([]*Conversation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.convs[id])
	}
	return out
}

// Filter returns conversations whose name contains the query,
// case-insensitively; an empty query returns all of them.
func (s *Store) Filter(query string) []*Conversation {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.All()
	}
	var out []*Conversation
	for _, id := range s.order {
		c := s.convs[id]
		if strings.Contains(strings.ToLower(c.Name), query) {
			out = append(out, c)
		}
	}
	return out
}

// AppendDraft concatenates a fragment (keystroke, emoji, paste) onto the draft
func (s *Store) AppendDraft(convID int64, fragment string) error {
	c, ok := s.convs[convID]
	if !ok {
		return ErrUnknownConversation
	}
	c.draft += fragment
	return nil
}

// SetDraft replaces the draft wholesale, for composer widgets that own the text
func (s *Store) SetDraft(convID int64, draft string) error {
	c, ok := s.convs[convID]
	if !ok {
		return ErrUnknownConversation
	}
	c.draft = draft
	return nil
}

// SendText commits the draft as an outbound text message. A draft that trims
// to nothing sends nothing and stays as-is.
func (s *Store) SendText(convID int64) (Message, error) {
	c, ok := s.convs[convID]
	if !ok {
		return Message{}, ErrUnknownConversation
	}
	text := strings.TrimSpace(c.draft)
	if text == "" {
		return Message{}, ErrEmptyDraft
	}
	msg := Message{
		ID:     c.nextID(),
		Text:   text,
		SentAt: time.Now(),
		Mine:   true,
		Status: StatusSent,
		Kind:   KindText,
	}
	c.messages = append(c.messages, msg)
	c.draft = ""
	return msg, nil
}

// Attach reads a user-selected file and commits it as an outbound message:
// kind image when the declared media type says so, kind file otherwise.
// A failed read appends nothing.
func (s *Store) Attach(convID int64, name, mediaType string, r io.Reader) (Message, error) {
	c, ok := s.convs[convID]
	if !ok {
		return Message{}, ErrUnknownConversation
	}
	payload, err := io.ReadAll(r)
	if err != nil {
		return Message{}, fmt.Errorf("failed to read attachment %s: %w", name, err)
	}
	kind := KindFile
	if strings.HasPrefix(mediaType, "image/") {
		kind = KindImage
	}
	msg := Message{
		ID:       c.nextID(),
		SentAt:   time.Now(),
		Mine:     true,
		Status:   StatusSent,
		Kind:     kind,
		FileName: name,
		Payload:  payload,
	}
	c.messages = append(c.messages, msg)
	return msg, nil
}

// Receive appends an inbound text message. Unless the conversation is the
// one currently open, its unread count goes up.
func (s *Store) Receive(convID int64, text string, open bool) (Message, error) {
	c, ok := s.convs[convID]
	if !ok {
		return Message{}, ErrUnknownConversation
	}
	msg := Message{
		ID:     c.nextID(),
		Text:   text,
		SentAt: time.Now(),
		Mine:   false,
		Kind:   KindText,
	}
	c.messages = append(c.messages, msg)
	if !open {
		c.unread++
	}
	return msg, nil
}

// Open marks a conversation as being read, zeroing its unread count
func (s *Store) Open(convID int64) error {
	c, ok := s.convs[convID]
	if !ok {
		return ErrUnknownConversation
	}
	c.unread = 0
	return nil
}

// AdvanceStatus moves an outbound message's delivery status forward. A real
// transport would call this on acknowledgment events; regressions are refused.
func (s *Store) AdvanceStatus(convID, msgID int64, status DeliveryStatus) error {
	c, ok := s.convs[convID]
	if !ok {
		return ErrUnknownConversation
	}
	for i := range c.messages {
		if c.messages[i].ID == msgID {
			if status < c.messages[i].Status {
				return ErrStatusRegression
			}
			c.messages[i].Status = status
			return nil
		}
	}
	return ErrUnknownMessage
}
