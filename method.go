// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import (
	"bytes"

	"github.com/intuitivelabs/bytescase"
)

// Method is the type used to hold the classified HTTP request method.
type Method uint8

// Method classification values.
const (
	MUndef Method = iota
	MGet
	MHead
	MPost
	MPut
	MDelete
	MConnect
	MOptions
	MTrace
	MPatch
	MOther // must be last
)

// method2Name translates a numeric Method to its canonical ASCII name.
var method2Name = [MOther + 1][]byte{
	MUndef:   []byte(""),
	MGet:     []byte("GET"),
	MHead:    []byte("HEAD"),
	MPost:    []byte("POST"),
	MPut:     []byte("PUT"),
	MDelete:  []byte("DELETE"),
	MConnect: []byte("CONNECT"),
	MOptions: []byte("OPTIONS"),
	MTrace:   []byte("TRACE"),
	MPatch:   []byte("PATCH"),
	MOther:   []byte("OTHER"),
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m > MOther {
		return string(method2Name[MUndef])
	}
	return string(method2Name[m])
}

type mth2Type struct {
	n []byte
	t Method
}

// magic values: after adding/removing methods, re-check that the lookup
// table keeps at most two entries per bucket (TestMthNameLookup).
const (
	mthBitsLen   uint = 2
	mthBitsFChar uint = 3
)

var mthNameLookup [1 << (mthBitsLen + mthBitsFChar)][]mth2Type

func hashMthName(n []byte) int {
	const (
		mC = (1 << mthBitsFChar) - 1
		mL = (1 << mthBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & mC) |
		((len(n) & mL) << mthBitsFChar)
}

func init() {
	for i := MUndef + 1; i < MOther; i++ {
		h := hashMthName(method2Name[i])
		mthNameLookup[h] = append(mthNameLookup[h], mth2Type{method2Name[i], i})
	}
}

// methodHint is the bounded, copy-free accumulator the lexer uses to
// classify the method token once it is complete, even when the method
// name spans several Step calls (e.g. "GE" in one call, "T " in the
// next). It mirrors hdr.go's nameHint technique, but keeps bytes as-is
// rather than lowercasing them, since method names are matched
// case-sensitively.
type methodHint struct {
	buf      [7]byte // longest known method is "CONNECT"/"OPTIONS" (7)
	n        int
	overflow bool
}

func (h *methodHint) add(c byte) {
	if h.overflow || h.n >= len(h.buf) {
		h.overflow = true
		return
	}
	h.buf[h.n] = c
	h.n++
}

// classify returns the Method the accumulated name matches, or MOther
// once the name has overflowed the longest known method.
func (h *methodHint) classify() Method {
	if h.overflow {
		return MOther
	}
	return classifyMethod(h.buf[:h.n])
}

// classifyMethod converts an ASCII method span to its numeric Method
// value, or MOther if it doesn't match one of the known methods. Method
// tokens are case-sensitive per RFC 7230 (the only case folding applied
// anywhere is hashMthName's first-byte lowering for the bucket hash).
func classifyMethod(buf []byte) Method {
	if len(buf) == 0 {
		return MUndef
	}
	i := hashMthName(buf)
	for _, m := range mthNameLookup[i] {
		if bytes.Equal(buf, m.n) {
			return m.t
		}
	}
	return MOther
}
