package models

import "strings"

// Tool selects a workspace extension the service may consult when answering
type Tool string

const (
	ToolGmail         Tool = "Gmail"
	ToolGoogleDocs    Tool = "Google Docs"
	ToolGoogleDrive   Tool = "Google Drive"
	ToolGoogleFlights Tool = "Google Flights"
	ToolGoogleHotels  Tool = "Google Hotels"
	ToolGoogleMaps    Tool = "Google Maps"
	ToolYouTube       Tool = "YouTube"
)

// AllTools lists every supported tool selector
var AllTools = []Tool{
	ToolGmail,
	ToolGoogleDocs,
	ToolGoogleDrive,
	ToolGoogleFlights,
	ToolGoogleHotels,
	ToolGoogleMaps,
	ToolYouTube,
}

// Wire returns the tool selector in the shape the request envelope embeds
func (t Tool) Wire() []interface{} {
	return []interface{}{string(t)}
}

// String returns the tool name
func (t Tool) String() string {
	return string(t)
}

// IsValid returns true if the tool is a known selector
func (t Tool) IsValid() bool {
	for _, tool := range AllTools {
		if t == tool {
			return true
		}
	}
	return false
}

// ToolFromName resolves a tool selector from a case-insensitive name.
// Returns false when the name matches no known tool.
func ToolFromName(name string) (Tool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, tool := range AllTools {
		if strings.ToLower(string(tool)) == normalized {
			return tool, true
		}
	}
	return "", false
}
