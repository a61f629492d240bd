// Package runner defines the optional code-execution capability for answers
// containing a fenced code block. The client only ever calls the Runner
// interface; a failing or missing runner never aborts an ask exchange.
package runner

import "github.com/sirupsen/logrus"

// Runner executes a code snippet in a declared language. Implementations
// are supplied by the caller; this package ships only non-executing ones.
type Runner interface {
	Run(lang, code string) error
}

// Noop discards the snippet. It is the default runner.
type Noop struct{}

// Run does nothing
func (Noop) Run(_, _ string) error {
	return nil
}

// Printer logs the snippet instead of executing it. Useful for inspecting
// what a real runner would receive.
type Printer struct {
	Logger *logrus.Logger
}

// Run logs the snippet at info level
func (p Printer) Run(lang, code string) error {
	logger := p.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithField("lang", lang).Info("extracted code block:\n" + code)
	return nil
}
