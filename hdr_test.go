// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import "testing"

// TestFramingHdrLookup checks framingHdrLookup bucket crowding the same
// way TestMthNameLookup checks mthNameLookup.
func TestFramingHdrLookup(t *testing.T) {
	var max, total int
	for _, l := range framingHdrLookup {
		if len(l) > max {
			max = len(l)
		}
		total += len(l)
	}
	if total != len(framingHdrNames) {
		t.Errorf("framingHdrLookup has %d entries, expected %d", total, len(framingHdrNames))
	}
	if max > 2 {
		t.Errorf("framingHdrLookup bucket too crowded: max %d", max)
	}
}

func TestClassifyFramingHdr(t *testing.T) {
	tests := []struct {
		in   string
		want FramingHdr
	}{
		{"Content-Length", hdrCLen},
		{"content-length", hdrCLen},
		{"CONTENT-LENGTH", hdrCLen},
		{"Transfer-Encoding", hdrTrEncoding},
		{"Connection", hdrConnection},
		{"Upgrade", hdrUpgrade},
		{"Content-Type", hdrOther},
		{"X-Request-Id", hdrOther},
		{"", hdrOther},
	}
	for _, tc := range tests {
		got := classifyFramingHdr([]byte(tc.in))
		if got != tc.want {
			t.Errorf("classifyFramingHdr(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNameHint(t *testing.T) {
	var h nameHint
	for _, c := range []byte("Transfer-Encoding") {
		h.add(c)
	}
	if got := h.classify(); got != hdrTrEncoding {
		t.Errorf("nameHint.classify() = %v, want hdrTrEncoding", got)
	}

	h.reset()
	for _, c := range []byte("x-this-header-name-is-way-too-long-to-fit") {
		h.add(c)
	}
	if got := h.classify(); got != hdrOther {
		t.Errorf("overflowed nameHint.classify() = %v, want hdrOther", got)
	}

	h.reset()
	for _, c := range []byte("connection") {
		h.add(c)
	}
	if got := h.classify(); got != hdrConnection {
		t.Errorf("nameHint.classify() = %v, want hdrConnection", got)
	}
}
