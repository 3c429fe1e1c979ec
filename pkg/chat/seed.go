package chat

import "time"

// seedMessage builds a message at an offset before now, so the demo catalog
// always looks recent
func seedMessage(id int64, text string, minutesAgo int, mine bool, status DeliveryStatus) Message {
	return Message{
		ID:     id,
		Text:   text,
		SentAt: time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
		Mine:   mine,
		Status: status,
		Kind:   KindText,
	}
}

// SeedStore returns the demo conversation catalog. A real deployment would
// fill the store from the transport's contact and history feeds instead.
func SeedStore() *Store {
	s := NewStore()

	anna := &Conversation{ID: 1, Name: "Anna Smirnova", Online: true}
	anna.messages = []Message{
		seedMessage(1, "Hey! How are you?", 10, false, StatusSent),
		seedMessage(2, "Hi! Doing great, thanks!", 9, true, StatusRead),
		seedMessage(3, "Any plans for the weekend?", 8, false, StatusSent),
		seedMessage(4, "Want to meet up?", 8, false, StatusSent),
		seedMessage(5, "Yes, that would be lovely! \U0001F60A", 7, true, StatusDelivered),
	}
	anna.unread = 2
	s.Add(anna)

	dmitry := &Conversation{ID: 2, Name: "Dmitry Ivanov", Online: true}
	dmitry.messages = []Message{
		seedMessage(1, "Check out this photo", 85, false, StatusSent),
	}
	s.Add(dmitry)

	maria := &Conversation{ID: 3, Name: "Maria Petrova", Online: false}
	maria.messages = []Message{
		seedMessage(1, "Thanks for the help!", 200, false, StatusSent),
	}
	maria.unread = 1
	s.Add(maria)

	alexey := &Conversation{ID: 4, Name: "Alexey Kozlov", Online: false}
	alexey.messages = []Message{
		seedMessage(1, "See you tomorrow", 60*26, false, StatusSent),
	}
	s.Add(alexey)

	elena := &Conversation{ID: 5, Name: "Elena Novikova", Online: true}
	elena.messages = []Message{
		seedMessage(1, "Great idea! \U0001F44D", 60*27, false, StatusSent),
	}
	s.Add(elena)

	return s
}

// DemoEvent is one entry of the simulated inbound feed that stands in for a
// real transport's message stream
type DemoEvent struct {
	After          time.Duration
	ContactName    string
	Message        string
	ConversationID int64
}

// DemoFeed returns the fixed inbound events delivered after startup
func DemoFeed() []DemoEvent {
	return []DemoEvent{
		{
			After:          5 * time.Second,
			ContactName:    "Dmitry Ivanov",
			Message:        "Hey! Did you look at the documents yet?",
			ConversationID: 2,
		},
		{
			After:          10 * time.Second,
			ContactName:    "Maria Petrova",
			Message:        "Thanks for meeting up yesterday! \U0001F64C",
			ConversationID: 3,
		},
	}
}
