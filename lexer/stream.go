package lexer

// Source is the minimal scanning primitive a front-end's tokenizer
// implements: produce the next token from raw source text. Returning
// (Token{}, false, err) signals a scan error at the current position;
// the Stream wrapping it performs skip-to-end-of-line recovery so one
// malformed token does not abort the whole file (spec §7).
type Source interface {
	// Next returns the next token, or ok=false at end of input.
	Next() (tok Token, ok bool, err error)
	// SkipToEOL discards input up to (and including) the next newline,
	// used by Stream to recover after a scan error.
	SkipToEOL()
}

// Stream wraps a Source with an arbitrary-depth pushback buffer — every
// front-end's parser needs lookahead, and re-deriving a ring buffer per
// language would duplicate this exact logic (spec §6 lexer contract is
// shared precisely so this can be, too).
type Stream struct {
	src     Source
	pending []Token
}

// NewStream wraps src in a Stream.
func NewStream(src Source) *Stream {
	return &Stream{src: src}
}

// Next returns the next token, preferring anything previously pushed
// back over pulling a fresh one from the underlying Source. On a scan
// error it records the error via onError (if non-nil), skips to the next
// line, and retries — the lexer-level recovery strategy spec §7 assigns
// to front-ends rather than the core.
func (s *Stream) Next(onError func(err error)) (Token, bool) {
	if n := len(s.pending); n > 0 {
		tok := s.pending[n-1]
		s.pending = s.pending[:n-1]
		return tok, true
	}
	for {
		tok, ok, err := s.src.Next()
		if err == nil {
			return tok, ok
		}
		if onError != nil {
			onError(err)
		}
		s.src.SkipToEOL()
	}
}

// Pushback returns tok to the front of the stream; the next Next call
// will re-return it before consulting the underlying Source. Multiple
// pushbacks stack, most-recent-first.
func (s *Stream) Pushback(tok Token) {
	s.pending = append(s.pending, tok)
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek(onError func(err error)) (Token, bool) {
	tok, ok := s.Next(onError)
	if ok {
		s.Pushback(tok)
	}
	return tok, ok
}
