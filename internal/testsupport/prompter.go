// Package testsupport holds fakes shared by interactive-flow tests.
package testsupport

import (
	"fmt"
	"strconv"
)

// ScriptedPrompter answers prompts from a fixed list and records every
// prompt it was shown. Running out of answers fails loudly so a test that
// loops unexpectedly cannot hang.
type ScriptedPrompter struct {
	Answers []string
	Prompts []string
	next    int
}

// NewScriptedPrompter returns a prompter that plays back answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// ReadLine implements prompt.Prompter.
func (p *ScriptedPrompter) ReadLine(prompt string) (string, error) {
	p.Prompts = append(p.Prompts, prompt)
	if p.next >= len(p.Answers) {
		return "", fmt.Errorf("script exhausted at prompt %q", prompt)
	}
	answer := p.Answers[p.next]
	p.next++
	return answer, nil
}

// ReadInt implements prompt.Prompter. Out-of-range scripted answers are
// treated as test bugs and returned as errors rather than re-prompted.
func (p *ScriptedPrompter) ReadInt(prompt string, min, max int) (int, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("scripted answer %q is not a number: %w", line, err)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("scripted answer %d outside [%d, %d]", value, min, max)
	}
	return value, nil
}

// Exhausted reports whether every scripted answer was consumed.
func (p *ScriptedPrompter) Exhausted() bool {
	return p.next == len(p.Answers)
}
