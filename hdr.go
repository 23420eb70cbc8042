// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import "github.com/intuitivelabs/bytescase"

// FramingHdr classifies a header name as one of the small, fixed set the
// framing decider inspects. Any other header name
// classifies as hdrOther: the lexer still emits its Field/Value tokens,
// it just doesn't feed them into framing decisions.
type FramingHdr uint8

const (
	hdrOther FramingHdr = iota
	hdrCLen
	hdrTrEncoding
	hdrConnection
	hdrUpgrade
)

type hdr2Type struct {
	n []byte
	t FramingHdr
}

// the closed set of header names the framing decider recognizes
// (always lowercase).
var framingHdrNames = [...]hdr2Type{
	{n: []byte("content-length"), t: hdrCLen},
	{n: []byte("transfer-encoding"), t: hdrTrEncoding},
	{n: []byte("connection"), t: hdrConnection},
	{n: []byte("upgrade"), t: hdrUpgrade},
}

const (
	hnBitsLen   uint = 2
	hnBitsFChar uint = 5
)

var framingHdrLookup [1 << (hnBitsLen + hnBitsFChar)][]hdr2Type

func hashHdrName(n []byte) int {
	const (
		mC = (1 << hnBitsFChar) - 1
		mL = (1 << hnBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) |
		((len(n) & mL) << hnBitsFChar)
}

func init() {
	for _, h := range framingHdrNames {
		i := hashHdrName(h.n)
		framingHdrLookup[i] = append(framingHdrLookup[i], h)
	}
}

// classifyFramingHdr returns the FramingHdr for name, or hdrOther if
// name isn't one of the four headers message framing depends on.
func classifyFramingHdr(name []byte) FramingHdr {
	if len(name) == 0 {
		return hdrOther
	}
	i := hashHdrName(name)
	for _, h := range framingHdrLookup[i] {
		if bytescase.CmpEq(name, h.n) {
			return h.t
		}
	}
	return hdrOther
}

// nameHint is the bounded, copy-free accumulator the lexer uses to
// recognize a framing header name while its FIELD token is still being
// scanned, one byte at a time, across however many Step calls it takes.
// It never grows past the longest recognized name ("transfer-encoding",
// 17 bytes): once more bytes arrive than the longest name has,
// recognition is abandoned for the rest of the name; otherwise classify
// matches the accumulated name against framingHdrNames once the name is
// complete (the FIELD token itself is unaffected — it still spans the
// full name).
type nameHint struct {
	buf      [17]byte
	n        int
	overflow bool
}

func (h *nameHint) reset() {
	h.n = 0
	h.overflow = false
}

func (h *nameHint) add(c byte) {
	if h.overflow || h.n >= len(h.buf) {
		h.overflow = true
		return
	}
	h.buf[h.n] = bytescase.ByteToLower(c)
	h.n++
}

// classify returns the FramingHdr this hint matches, or hdrOther.
func (h *nameHint) classify() FramingHdr {
	if h.overflow {
		return hdrOther
	}
	return classifyFramingHdr(h.buf[:h.n])
}
