// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import "github.com/intuitivelabs/bytescase"

// Framing is the tagged variant describing how a message body is
// delimited once a message completes headers.
type Framing uint8

const (
	// FramingNone means a zero-length body (no Content-Length, no
	// Transfer-Encoding, request).
	FramingNone Framing = iota
	// FramingIdentity means the body runs for exactly ContentLength
	// bytes.
	FramingIdentity
	// FramingChunked means the body is RFC 7230 chunked transfer coded.
	FramingChunked
	// FramingUpgrade means the connection tunnels after HeaderEnd.
	FramingUpgrade
)

func (f Framing) String() string {
	switch f {
	case FramingNone:
		return "none"
	case FramingIdentity:
		return "identity"
	case FramingChunked:
		return "chunked"
	case FramingUpgrade:
		return "upgrade"
	}
	return "invalid"
}

// UpgradeProto classifies an Upgrade: header token the same way the
// teacher's UpgProtoT/UpgProtoResolve does, so a caller doesn't have to
// re-scan the Upgrade value it already received as a Value token.
type UpgradeProto uint8

const (
	UpgradeProtoNone UpgradeProto = iota
	UpgradeProtoWebSocket
	UpgradeProtoH2C
	UpgradeProtoOther
)

// ResolveUpgradeProto classifies a single Upgrade protocol token.
func ResolveUpgradeProto(tok []byte) UpgradeProto {
	switch len(tok) {
	case 9:
		if bytescase.CmpEq(tok, []byte("websocket")) {
			return UpgradeProtoWebSocket
		}
	case 3:
		if bytescase.CmpEq(tok, []byte("h2c")) {
			return UpgradeProtoH2C
		}
	case 8:
		if bytescase.CmpEq(tok, []byte("http/2.0")) {
			return UpgradeProtoH2C
		}
	}
	if len(tok) == 0 {
		return UpgradeProtoNone
	}
	return UpgradeProtoOther
}

// wordAccum is a small, bounded, copy-free accumulator used to classify
// one comma-separated word of a framing header's value (e.g. one
// Connection directive, one Transfer-Encoding coding) while it is being
// scanned byte by byte, possibly across several Step calls. It mirrors
// nameHint's technique applied to values instead of names: a fixed
// array, never grown, discarded at each separator.
type wordAccum struct {
	buf      [16]byte // longest recognized word here is "keep-alive" (10)
	n        int
	overflow bool
}

func (w *wordAccum) reset() {
	w.n = 0
	w.overflow = false
}

func (w *wordAccum) add(c byte) {
	if w.overflow || w.n >= len(w.buf) {
		w.overflow = true
		return
	}
	w.buf[w.n] = bytescase.ByteToLower(c)
	w.n++
}

func (w *wordAccum) eq(s string) bool {
	if w.overflow || w.n != len(s) {
		return false
	}
	return bytescase.CmpEq(w.buf[:w.n], []byte(s))
}

func (w *wordAccum) empty() bool {
	return w.n == 0 && !w.overflow
}
