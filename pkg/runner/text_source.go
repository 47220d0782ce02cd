package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/appguide/pkg/domain"
)

// TextSource reads answers line by line from an interactive stream (usually stdin).
//
// Reads happen on a background pump so that Next can honor context cancellation
// while the underlying read blocks. End of stream maps to domain.ErrInputExhausted.
type TextSource struct {
	Reader *bufio.Reader
	Writer io.Writer

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewTextSource creates an interactive source. Nil arguments default to stdin/stdout.
func NewTextSource(r io.Reader, w io.Writer) *TextSource {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextSource{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (s *TextSource) initPump() {
	s.startOnce.Do(func() {
		s.inputChan = make(chan inputResult)
		go s.pump()
	})
}

func (s *TextSource) pump() {
	defer close(s.inputChan)
	for {
		text, err := s.Reader.ReadString('\n')
		// A final line without newline still counts.
		if text != "" {
			s.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

// Next prints prompt and blocks until a line arrives, the stream ends, or ctx is done.
// Rejected input (see SanitizeInput) is reported and the prompt repeated.
func (s *TextSource) Next(ctx context.Context, prompt string) (string, error) {
	s.initPump()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(s.Writer, prompt)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-s.inputChan:
			if !ok {
				fmt.Fprintln(s.Writer)
				return "", domain.ErrInputExhausted
			}
			if res.err != nil {
				return "", fmt.Errorf("input error: %w", res.err)
			}
			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(s.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}
