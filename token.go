// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

// Kind classifies a Token returned by Step.
type Kind uint8

const (
	// MsgStart is a zero-width marker emitted once, before any other
	// token of a message.
	MsgStart Kind = iota
	// MethodTok is the request method span (e.g. "GET").
	MethodTok
	// URLTok is the request-target span.
	URLTok
	// Field is a header (or, under chunked framing, trailer) field-name
	// span, colon excluded.
	Field
	// Value is a header (or trailer) field-value span, with leading and
	// trailing optional whitespace stripped.
	Value
	// HeaderEnd is a zero-width marker emitted once, when the empty
	// CRLF line terminating the header section is recognized.
	HeaderEnd
	// Body is a span of raw body bytes. Under chunked framing, Body
	// tokens cover chunk data only, never the chunk size line or its
	// delimiting CRLFs.
	Body
	// MsgEnd is a zero-width marker emitted once, after the body (and
	// any trailers) of a message have been fully consumed.
	MsgEnd
	// Eagain means the caller must supply more bytes (or, at a message
	// boundary, that no token was pending) before Step can make
	// progress.
	Eagain
	// EOF means the lexer will never produce another token: either the
	// connection isn't keep-alive and the prior message ended, or the
	// lexer just surrendered the remaining buffer to an upgrade tunnel.
	EOF
	// Error means a grammar violation was found; the span covers the
	// offending byte (or the last byte examined). The lexer is now
	// permanently non-advancing: every subsequent Step call returns
	// another Error token without consuming input.
	Error
)

func (k Kind) String() string {
	switch k {
	case MsgStart:
		return "MsgStart"
	case MethodTok:
		return "MethodTok"
	case URLTok:
		return "URLTok"
	case Field:
		return "Field"
	case Value:
		return "Value"
	case HeaderEnd:
		return "HeaderEnd"
	case Body:
		return "Body"
	case MsgEnd:
		return "MsgEnd"
	case Eagain:
		return "Eagain"
	case EOF:
		return "EOF"
	case Error:
		return "Error"
	}
	return "invalid"
}

// Token is a tagged view of a contiguous span of the buffer passed to
// the Step call that produced it. Its lifetime does not outlive that
// buffer: callers who need the bytes past the next Step call must copy
// them out first.
type Token struct {
	Kind  Kind
	Start int
	End   int
	// Partial is true when Kind is one of MethodTok, URLTok, Field,
	// Value, or Body and the span is a prefix of a semantic unit that continues
	// in a later Step call because input ran out mid-token. Consumers
	// concatenate the payloads of all tokens of the same kind belonging
	// to the same unit.
	Partial bool
}

// Get returns the byte slice inside buf corresponding to the token.
func (t Token) Get(buf []byte) []byte {
	return buf[t.Start:t.End]
}
