// Copyright 2019-2020 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Test utils

package hl

import (
	"math/rand"
)

func randWS() string {
	ws := [...]string{"", " ", "\t"}
	var s string
	n := rand.Intn(5) // max 5 whitespace "tokens"
	for i := 0; i < n; i++ {
		s += ws[rand.Intn(len(ws))]
	}
	return s
}

// randCase randomizes the letter case of s, for exercising
// case-insensitive matching (bytescase) against varied input.
func randCase(s string) string {
	r := make([]byte, len(s))
	for i, b := range []byte(s) {
		switch rand.Intn(3) {
		case 0:
			if b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
		case 1:
			if b >= 'a' && b <= 'z' {
				b -= 'a' - 'A'
			}
		}
		r[i] = b
	}
	return string(r)
}

// feedInPieces drives lx.Step with msg split into up to n random-sized
// fragments, collecting every token produced, the same way a caller
// whose reads arrive at arbitrary TCP segment boundaries would. It is
// the chunking-invariance harness: Step's output for a message must not
// depend on how it was fragmented across calls.
func feedInPieces(lx *Lexer, msg []byte, n int) []Token {
	var toks []Token
	pos := 0
	pieces := 0
	pending := []byte(nil)
	for {
		var chunk []byte
		if pos < len(msg) {
			remaining := len(msg) - pos
			sz := remaining
			if n > 1 && pieces < n-1 {
				sz = 1 + rand.Intn(remaining)
			}
			chunk = msg[pos : pos+sz]
			pos += sz
			pieces++
		}
		buf := append(pending, chunk...)
		tok := lx.Step(buf)
		toks = append(toks, tok)
		pending = append([]byte(nil), buf[tok.End:]...)
		if tok.Kind == Eagain && pos >= len(msg) {
			// no more input will ever arrive; avoid spinning forever
			// on a message this harness failed to fully describe.
			break
		}
		if tok.Kind == EOF || tok.Kind == Error {
			break
		}
		if len(toks) > 4*len(msg)+64 {
			panic("feedInPieces: runaway token loop")
		}
	}
	return toks
}
