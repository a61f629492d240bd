// Package api implements the Bard web API client.
package api

// GJSON paths into the decoded payload arrays. Positional knowledge about
// the vendor's wire format lives here and nowhere else, so format drift
// requires touching only this file.
const (
	// Streamed answer lines: [["wrb.fr", null, "<payload JSON string>", ...]]
	// The payload string sits at [0][2] of each line.
	PathLinePayload = "0.2"

	// Resolved answer array (the double-decoded payload)
	PathConvID     = "1.0"
	PathRespID     = "1.1"
	PathTextQuery  = "2.0"
	PathFactuality = "3"
	PathChoices    = "4"

	// Relative to a choice entry: [id, [fragments...], ...]
	PathChoiceID      = "0"
	PathChoiceContent = "1"

	// Image references nest under the first choice: [4][0][4][i][0][0][0]
	PathImageList = "4.0.4"
	PathImageURL  = "0.0.0"

	// Batch-RPC payloads
	PathSpeechAudio = "0"
	PathShareID     = "2"
	PathSandboxURL  = "0"
)

// payloadLineMarker prefixes every real payload line in the streamed
// response body. The decoder searches for it instead of relying on fixed
// negative line offsets, which have shifted across server builds.
const payloadLineMarker = `[["wrb.fr`
