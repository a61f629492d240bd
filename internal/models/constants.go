// Package models contains data types and wire constants for the Bard web API.
package models

// Endpoints for the Bard web front end
const (
	EndpointInit      = "https://gemini.google.com/"
	EndpointGenerate  = "https://gemini.google.com/_/BardChatUi/data/assistant.lamda.BardFrontendService/StreamGenerate"
	EndpointBatchExec = "https://gemini.google.com/_/BardChatUi/data/batchexecute"

	// ShareURLPrefix is prepended to the share id returned by the export RPC
	ShareURLPrefix = "https://g.co/bard/share/"
)

// BuildParam is the "bl" routing parameter identifying the web server build.
// It is an opaque version marker the front end sends on every request.
const BuildParam = "boq_assistant-bard-web-server_20240227.09_p0"

// RPC ids for batchexecute operations
const (
	RPCSpeech        = "XqA3Ic"
	RPCExportShare   = "fuVx7"
	RPCExportSandbox = "qACoKe"
)

// ReqIDStep is added to the _reqid query parameter after every completed
// exchange. The value has no protocol meaning beyond uniqueness/ordering.
const ReqIDStep = 100000

// PivotLanguages are natively supported by the service; prompts in any
// other configured language are translated to English first.
var PivotLanguages = map[string]bool{
	"en": true, "english": true,
	"ko": true, "korean": true,
	"ja": true, "japanese": true,
}

// IsPivotLanguage reports whether lang needs no translation round-trip.
func IsPivotLanguage(lang string) bool {
	return PivotLanguages[lang]
}

// SandboxFilenames maps a fenced-code language tag to the entry filename
// the code-sandbox export expects. Languages outside this table require an
// explicit filename from the caller.
var SandboxFilenames = map[string]string{
	"python":     "main.py",
	"javascript": "index.js",
	"typescript": "main.ts",
	"go":         "main.go",
	"java":       "Main.java",
	"kotlin":     "Main.kt",
	"php":        "index.php",
	"c#":         "main.cs",
	"swift":      "main.swift",
	"r":          "main.r",
	"ruby":       "main.rb",
	"c":          "main.c",
	"c++":        "main.cpp",
	"matlab":     "main.m",
	"scala":      "main.scala",
	"sql":        "main.sql",
	"html":       "index.html",
	"css":        "style.css",
	"rust":       "main.rs",
	"perl":       "main.pl",
}

// CookiePSID is the primary authentication cookie name.
const CookiePSID = "__Secure-1PSID"

// RequiredMultiCookies are the cookie names expected when multi-cookie
// authentication is used.
var RequiredMultiCookies = []string{
	"__Secure-1PSID",
	"__Secure-1PSIDTS",
	"__Secure-1PSIDCC",
	"NID",
}

// DefaultHeaders returns the browser-emulation headers sent on every request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":       "application/x-www-form-urlencoded;charset=UTF-8",
		"Host":               "gemini.google.com",
		"Origin":             "https://gemini.google.com",
		"Referer":            "https://gemini.google.com/",
		"User-Agent":         "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36",
		"Accept":             "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		"Accept-Language":    "en-US,en;q=0.9",
		"Sec-CH-UA":          `"Google Chrome";v="133", "Chromium";v="133", "Not_A Brand";v="24"`,
		"Sec-CH-UA-Mobile":   "?0",
		"Sec-CH-UA-Platform": `"Linux"`,
		"Sec-Fetch-Site":     "same-origin",
		"Sec-Fetch-Mode":     "cors",
		"X-Same-Domain":      "1",
	}
}
