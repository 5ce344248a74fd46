// Package tokenizer estimates token counts for transcript content.
package tokenizer

import (
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

const encodingName = "cl100k_base"

// Estimator counts tokens with a BPE encoding when one is available and
// falls back to a bytes/4 heuristic otherwise. Loading the encoding takes
// around 100ms and may touch the network, so it happens off the UI loop.
type Estimator struct {
	mu  sync.Mutex
	enc *tiktoken.Tiktoken
}

// New returns an Estimator and starts loading the encoding in the
// background. Count answers with the heuristic until the load completes.
func New() *Estimator {
	e := &Estimator{}
	go func() {
		enc, err := tiktoken.GetEncoding(encodingName)
		if err != nil {
			return
		}
		e.mu.Lock()
		e.enc = enc
		e.mu.Unlock()
	}()
	return e
}

// Count returns the approximate token count of text.
func (e *Estimator) Count(text string) int {
	if text == "" {
		return 0
	}
	e.mu.Lock()
	enc := e.enc
	e.mu.Unlock()
	if enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return approx(text)
}

// approx estimates BPE output at roughly four bytes per token.
func approx(text string) int {
	return (len(text) + 3) / 4
}
