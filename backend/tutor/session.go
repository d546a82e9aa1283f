package tutor

import "sync"

// ChatContext is the explicit session state for one user's tutoring
// conversation: the subject/topic being studied and the exchange history.
type ChatContext struct {
	Subject string    `json:"subject"`
	Topic   string    `json:"topic"`
	History []Message `json:"history"`
}

// SessionStore keeps one ChatContext per user in memory. The context has an
// explicit lifecycle: created on the first message for a (subject, topic),
// reset when the user switches topic, cleared on logout.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*ChatContext
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*ChatContext)}
}

// Context returns the user's session for the given subject and topic,
// starting a fresh one if none exists or the user switched topics. The
// returned value is a snapshot: callers may read History without holding
// the store's lock while concurrent Appends mutate the live session.
func (s *SessionStore) Context(userID, subject, topic string) ChatContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.sessions[userID]
	if !ok || ctx.Subject != subject || ctx.Topic != topic {
		ctx = &ChatContext{Subject: subject, Topic: topic}
		s.sessions[userID] = ctx
	}

	snap := *ctx
	snap.History = append([]Message(nil), ctx.History...)
	return snap
}

// Append records one exchange in the user's current session.
func (s *SessionStore) Append(userID string, question, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.sessions[userID]
	if !ok {
		return
	}
	ctx.History = append(ctx.History, Message{Role: "user", Content: question})
	ctx.History = append(ctx.History, Message{Role: "assistant", Content: reply})
}

// Clear drops the user's session, e.g. on logout.
func (s *SessionStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
