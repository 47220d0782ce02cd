package runner

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/appguide/pkg/domain"
)

// InputSource supplies the next user answer.
//
// Next writes prompt (if any) and returns the answer. When no more answers can be
// produced it returns domain.ErrInputExhausted; callers treat that as a normal end
// of the session, never as a failure.
type InputSource interface {
	Next(ctx context.Context, prompt string) (string, error)
}

// Bounded is implemented by sources that know how many answers remain.
type Bounded interface {
	Remaining() int
}

// ScriptedSource replays a fixed queue of answers. It never blocks: once the
// queue is drained every call returns domain.ErrInputExhausted immediately.
type ScriptedSource struct {
	mu     sync.Mutex
	tokens []string
	pos    int
	echo   io.Writer
}

// NewScriptedSource creates a source over a copy of tokens.
// When echo is non-nil, each prompt and consumed token is written to it so that
// scripted transcripts read like interactive ones.
func NewScriptedSource(echo io.Writer, tokens ...string) *ScriptedSource {
	queue := make([]string, len(tokens))
	copy(queue, tokens)
	return &ScriptedSource{tokens: queue, echo: echo}
}

// Next pops the next token.
func (s *ScriptedSource) Next(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.echo != nil {
		fmt.Fprint(s.echo, prompt)
	}
	// Exhaustion reads like end of input on a terminal: the prompt stays visible.
	if s.pos >= len(s.tokens) {
		if s.echo != nil {
			fmt.Fprintln(s.echo)
		}
		return "", domain.ErrInputExhausted
	}
	tok := s.tokens[s.pos]
	s.pos++

	if s.echo != nil {
		fmt.Fprintln(s.echo, tok)
	}
	return tok, nil
}

// Remaining returns the number of unread tokens.
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens) - s.pos
}
