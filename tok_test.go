// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import "testing"

func TestParseValueTokensSimple(t *testing.T) {
	buf := []byte("gzip, chunked")
	toks, err := ParseValueTokens(buf, 0, len(buf))
	if err != errOk {
		t.Fatalf("ParseValueTokens error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if !toks[0].Eq(buf, "gzip") {
		t.Errorf("tok[0] = %q, want gzip", toks[0].Name.Get(buf))
	}
	if !toks[1].Eq(buf, "chunked") {
		t.Errorf("tok[1] = %q, want chunked", toks[1].Name.Get(buf))
	}
}

func TestParseValueTokensParams(t *testing.T) {
	buf := []byte(`gzip;q=0.8, identity;q=0.1, foo;bar="baz, qux"`)
	toks, err := ParseValueTokens(buf, 0, len(buf))
	if err != errOk {
		t.Fatalf("ParseValueTokens error: %v", err)
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if len(toks[0].Params) != 1 || string(toks[0].Params[0].Name.Get(buf)) != "q" {
		t.Errorf("tok[0] params = %+v", toks[0].Params)
	}
	if string(toks[0].Params[0].Val.Get(buf)) != "0.8" {
		t.Errorf("tok[0] param value = %q, want 0.8", toks[0].Params[0].Val.Get(buf))
	}
	if string(toks[2].Params[0].Val.Get(buf)) != "baz, qux" {
		t.Errorf("quoted param value = %q, want %q", toks[2].Params[0].Val.Get(buf), "baz, qux")
	}
}

func TestParseValueTokensBadChar(t *testing.T) {
	buf := []byte("gzip, (bad)")
	_, err := ParseValueTokens(buf, 0, len(buf))
	if err != errBadChar {
		t.Errorf("ParseValueTokens error = %v, want errBadChar", err)
	}
}

func TestParseValueTokensUnterminatedQuote(t *testing.T) {
	buf := []byte(`foo;bar="baz`)
	_, err := ParseValueTokens(buf, 0, len(buf))
	if err != errMoreBytes {
		t.Errorf("ParseValueTokens error = %v, want errMoreBytes", err)
	}
}
