package models

// Choice is one candidate draft of an answer. The first content fragment
// carries the draft text; later fragments are auxiliary markers the front
// end attaches.
type Choice struct {
	ID      string   `json:"id"`
	Content []string `json:"content"`
}

// Answer is the parsed result of one ask exchange. Field names follow the
// wire-level output contract; the client keeps only the identifiers needed
// to continue the conversation.
type Answer struct {
	Content           string   `json:"content"`
	ConversationID    string   `json:"conversation_id"`
	ResponseID        string   `json:"response_id"`
	FactualityQueries []string `json:"factuality_queries"`
	TextQuery         string   `json:"text_query"`
	Choices           []Choice `json:"choices"`
	Links             []string `json:"links"`
	Images            []string `json:"images"`
	ProgramLang       string   `json:"program_lang"`
	Code              string   `json:"code"`
	StatusCode        int      `json:"status_code"`
}

// ChoiceID returns the id of the first candidate choice, the default
// "accepted" branch used to continue the conversation.
func (a *Answer) ChoiceID() string {
	if len(a.Choices) == 0 {
		return ""
	}
	return a.Choices[0].ID
}

// HasCode reports whether a fenced code block was extracted
func (a *Answer) HasCode() bool {
	return a.Code != ""
}

// SpeechResult holds synthesized audio for a text input
type SpeechResult struct {
	Audio      []byte `json:"audio"`
	StatusCode int    `json:"status_code"`
}

// ExportResult holds the URL produced by a share or sandbox export
type ExportResult struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
}
