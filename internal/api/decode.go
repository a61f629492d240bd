package api

import (
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/bardweb/internal/errors"
	"github.com/diogo/bardweb/internal/models"
)

// decodeAnswer locates the payload line in a streamed response body and
// extracts the structured answer. The stream carries several JSON-array
// lines; the real payload is marked by the wrb.fr prefix, and heartbeat
// lines near the end may carry an empty payload slot, so candidate lines
// are walked from the end until one resolves.
func decodeAnswer(body []byte, statusCode int) (*models.Answer, error) {
	lines := payloadLines(body)

	for i := len(lines) - 1; i >= 0; i-- {
		payload := gjson.Get(lines[i], PathLinePayload)
		if payload.Type != gjson.String || payload.String() == "" {
			continue
		}

		resolved := gjson.Parse(payload.String())
		choices := resolved.Get(PathChoices)
		if !choices.IsArray() || len(choices.Array()) == 0 {
			continue
		}

		return extractAnswer(resolved, statusCode), nil
	}

	return nil, apierrors.NewEmptyResponseError(string(body))
}

// payloadLines returns the body lines that carry a wrb.fr envelope. When
// the marker is absent entirely (older framings) every valid JSON line is
// considered instead.
func payloadLines(body []byte) []string {
	var marked, valid []string
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, payloadLineMarker) {
			marked = append(marked, line)
		} else if gjson.Valid(line) {
			valid = append(valid, line)
		}
	}
	if len(marked) > 0 {
		return marked
	}
	return valid
}

// extractAnswer pulls the typed fields out of the resolved answer array.
// Required slots were checked by the caller; optional slots decay to empty
// values on any structural mismatch.
func extractAnswer(resolved gjson.Result, statusCode int) *models.Answer {
	answer := &models.Answer{
		ConversationID: resolved.Get(PathConvID).String(),
		ResponseID:     resolved.Get(PathRespID).String(),
		TextQuery:      resolved.Get(PathTextQuery).String(),
		StatusCode:     statusCode,
	}

	resolved.Get(PathFactuality).ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.Type == gjson.String:
			answer.FactualityQueries = append(answer.FactualityQueries, item.String())
		case item.IsArray():
			if q := item.Get("0").String(); q != "" {
				answer.FactualityQueries = append(answer.FactualityQueries, q)
			}
		}
		return true
	})

	choices := resolved.Get(PathChoices)
	choices.ForEach(func(_, choice gjson.Result) bool {
		parsed := models.Choice{ID: choice.Get(PathChoiceID).String()}
		choice.Get(PathChoiceContent).ForEach(func(_, fragment gjson.Result) bool {
			parsed.Content = append(parsed.Content, fragment.String())
			return true
		})
		answer.Choices = append(answer.Choices, parsed)
		return true
	})

	if len(answer.Choices) > 0 && len(answer.Choices[0].Content) > 0 {
		answer.Content = answer.Choices[0].Content[0]
	}

	resolved.Get(PathImageList).ForEach(func(_, img gjson.Result) bool {
		if imgURL := img.Get(PathImageURL).String(); imgURL != "" {
			answer.Images = append(answer.Images, imgURL)
		}
		return true
	})

	answer.Links = extractLinks(choices)
	answer.ProgramLang, answer.Code = extractCodeBlock(answer.Content)

	return answer
}

// extractLinks recursively collects every absolute URL in the nested
// structure, skipping icon assets. Running it over an already-flat list of
// links returns the list unchanged.
func extractLinks(node gjson.Result) []string {
	var links []string
	node.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.Type == gjson.String:
			s := item.String()
			if strings.HasPrefix(s, "http") && !strings.Contains(s, "favicon") {
				links = append(links, s)
			}
		case item.IsArray():
			links = append(links, extractLinks(item)...)
		}
		return true
	})
	return links
}

// extractCodeBlock finds the first triple-backtick fenced block in content.
// The text after the opening fence up to the first newline is the declared
// language; the rest up to the closing fence is the code body. No fence is
// not an error: both results are empty.
func extractCodeBlock(content string) (lang, code string) {
	start := strings.Index(content, "```")
	if start < 0 {
		return "", ""
	}

	rest := content[start+3:]
	newline := strings.Index(rest, "\n")
	if newline < 0 {
		return "", ""
	}

	lang = strings.TrimSpace(rest[:newline])
	body := rest[newline+1:]
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return lang, body
}
