// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import "testing"

func TestResolveUpgradeProto(t *testing.T) {
	tests := []struct {
		in   string
		want UpgradeProto
	}{
		{"websocket", UpgradeProtoWebSocket},
		{"WebSocket", UpgradeProtoWebSocket},
		{"h2c", UpgradeProtoH2C},
		{"H2C", UpgradeProtoH2C},
		{"HTTP/2.0", UpgradeProtoH2C},
		{"foo/1.0", UpgradeProtoOther},
		{"", UpgradeProtoNone},
	}
	for _, tc := range tests {
		got := ResolveUpgradeProto([]byte(tc.in))
		if got != tc.want {
			t.Errorf("ResolveUpgradeProto(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWordAccum(t *testing.T) {
	var w wordAccum
	if !w.empty() {
		t.Fatal("fresh wordAccum should be empty")
	}
	for _, c := range []byte(randCase("keep-alive")) {
		w.add(c)
	}
	if w.empty() {
		t.Fatal("wordAccum with bytes added should not be empty")
	}
	if !w.eq("keep-alive") {
		t.Error("wordAccum should compare equal case-insensitively")
	}
	if w.eq("close") {
		t.Error("wordAccum should not match a different word")
	}

	w.reset()
	for i := 0; i < 32; i++ {
		w.add('x')
	}
	if !w.overflow {
		t.Error("wordAccum should report overflow past its fixed capacity")
	}
	if w.eq("x") {
		t.Error("overflowed wordAccum must never compare equal")
	}
}

func TestFramingString(t *testing.T) {
	tests := []struct {
		f    Framing
		want string
	}{
		{FramingNone, "none"},
		{FramingIdentity, "identity"},
		{FramingChunked, "chunked"},
		{FramingUpgrade, "upgrade"},
		{Framing(99), "invalid"},
	}
	for _, tc := range tests {
		if got := tc.f.String(); got != tc.want {
			t.Errorf("Framing(%d).String() = %q, want %q", tc.f, got, tc.want)
		}
	}
}
