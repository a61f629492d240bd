package api

import (
	"math/rand"

	"github.com/diogo/bardweb/internal/models"
)

// ConversationState carries the identifiers that thread a conversation
// across turns, plus the monotonic request counter. It is an explicit,
// inspectable value: callers can snapshot it mid-conversation and restore
// it later to branch or resume deterministically.
type ConversationState struct {
	ConversationID string `json:"conversation_id"`
	ResponseID     string `json:"response_id"`
	ChoiceID       string `json:"choice_id"`
	ReqID          int    `json:"req_id"`
}

// NewConversationState returns a fresh state with empty identifiers and a
// 4-digit random request id seed, matching the front end's behavior.
func NewConversationState() ConversationState {
	return ConversationState{ReqID: 1000 + rand.Intn(9000)}
}

// IsNew reports whether the state has no conversation to continue, which
// the encoder signals server-side with empty identifier strings.
func (s ConversationState) IsNew() bool {
	return s.ConversationID == "" && s.ResponseID == "" && s.ChoiceID == ""
}

// Advance overwrites the identifiers from a decoded answer. The choice id
// defaults to the first candidate, the "accepted" branch; callers may
// override it with SelectChoice before the next turn.
func (s *ConversationState) Advance(answer *models.Answer) {
	s.ConversationID = answer.ConversationID
	s.ResponseID = answer.ResponseID
	s.ChoiceID = answer.ChoiceID()
}

// SelectChoice continues the conversation from a different candidate branch
func (s *ConversationState) SelectChoice(choiceID string) {
	s.ChoiceID = choiceID
}

// Bump increments the request counter by the fixed per-exchange step
func (s *ConversationState) Bump() {
	s.ReqID += models.ReqIDStep
}

// Reset clears the identifiers, starting a new conversation on the next
// turn. The request counter keeps climbing; it has no cross-session meaning.
func (s *ConversationState) Reset() {
	s.ConversationID = ""
	s.ResponseID = ""
	s.ChoiceID = ""
}
