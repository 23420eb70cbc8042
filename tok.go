// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE_BSD.txt file in the root of the source
// tree.

package hl

// tokAllowedChar returns true if c is an allowed ascii char inside a
// RFC 7230 token (method names, header field names, generic header
// value tokens). See RFC 7230 section 3.2.6.
func tokAllowedChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// isURLChar returns true for any octet allowed inside a request-target:
// anything but CTL (0x00-0x1F, 0x7F) and SP.
func isURLChar(c byte) bool {
	return c > 0x20 && c != 0x7f
}

// isValueChar returns true for bytes allowed inside a header field-value
// (VCHAR / obs-text / SP / HTAB), excluding CR and LF which always terminate
// the value.
func isValueChar(c byte) bool {
	if c == '\t' {
		return true
	}
	return c >= 0x20 && c != 0x7f
}

// ValueParam is one ";name=value" (or bare ";name") parameter following
// a ValueToken, e.g. the "q=0.8" in "gzip;q=0.8".
type ValueParam struct {
	Name Span
	Val  Span // empty if the parameter had no value
}

// ValueToken is one element of a comma-separated header value list, such
// as one encoding in "Transfer-Encoding: gzip, chunked" or one directive
// in "Connection: keep-alive, Upgrade".
type ValueToken struct {
	Name   Span
	Params []ValueParam
}

// Eq reports whether the token's name equals s, case-insensitively,
// without copying (uses caseEq, i.e. bytescase.CmpEq, over
// buf[Name.Start:Name.End]).
func (t ValueToken) Eq(buf []byte, s string) bool {
	return caseEq(t.Name.Get(buf), s)
}

// ParseValueTokens splits a fully-buffered, OWS-trimmed header value
// into comma-separated tokens, each with its optional ";param=val"
// parameters. Unlike the byte-at-a-time lexer core, this is a
// convenience parser: it requires the complete value already present in
// buf[offs:end] (the lexer hands callers complete, non-partial VALUE
// spans once a header line is fully read, so this is always safe to call
// from a HeaderEnd or trailer callback).
//
// It is the same grammar the lexer's own framing decider walks
// byte-by-byte while a VALUE is still being scanned (see
// Lexer.scanFramingWord in lexer.go); this function exists so callers
// get the same token/param breakdown without re-implementing RFC 7230's
// token list grammar for headers the lexer doesn't interpret (e.g.
// Accept, Cache-Control).
func ParseValueTokens(buf []byte, offs, end int) ([]ValueToken, ParseError) {
	var toks []ValueToken
	i := offs
	for i < end {
		i = skipCommaWS(buf, i, end)
		if i >= end {
			break
		}
		var tok ValueToken
		start := i
		for i < end && tokAllowedChar(buf[i]) {
			i++
		}
		if i == start {
			return nil, errBadChar
		}
		tok.Name.Set(start, i)
		for i < end {
			i = skipWSOnly(buf, i, end)
			if i >= end || buf[i] != ';' {
				break
			}
			i++ // skip ';'
			i = skipWSOnly(buf, i, end)
			var p ValueParam
			pStart := i
			for i < end && tokAllowedChar(buf[i]) {
				i++
			}
			if i == pStart {
				return nil, errEmptyTok
			}
			p.Name.Set(pStart, i)
			i = skipWSOnly(buf, i, end)
			if i < end && buf[i] == '=' {
				i++
				i = skipWSOnly(buf, i, end)
				if i < end && buf[i] == '"' {
					i++
					vStart := i
					var err ParseError
					i, err = skipQuoted(buf, i, end)
					if err != errOk {
						return nil, err
					}
					p.Val.Set(vStart, i-1)
				} else {
					vStart := i
					for i < end && tokAllowedChar(buf[i]) {
						i++
					}
					p.Val.Set(vStart, i)
				}
			}
			tok.Params = append(tok.Params, p)
		}
		toks = append(toks, tok)
		if i < end && buf[i] == ',' {
			i++
		}
	}
	return toks, errOk
}

// skipCommaWS skips whitespace and comma separators between tokens.
func skipCommaWS(buf []byte, i, end int) int {
	for i < end && (buf[i] == ' ' || buf[i] == '\t' || buf[i] == ',') {
		i++
	}
	return i
}

// skipWSOnly skips SP/HTAB (no commas).
func skipWSOnly(buf []byte, i, end int) int {
	for i < end && (buf[i] == ' ' || buf[i] == '\t') {
		i++
	}
	return i
}

// skipQuoted skips a quoted-string's contents, starting right after the
// opening '"'. It handles backslash escapes and rejects CR/LF inside the
// quotes (RFC 7230 section 3.2.6). Returns the offset right after the
// closing '"'.
func skipQuoted(buf []byte, i, end int) (int, ParseError) {
	for i < end {
		switch buf[i] {
		case '"':
			return i + 1, errOk
		case '\\':
			if i+1 >= end {
				return i, errMoreBytes
			}
			if buf[i+1] == '\r' || buf[i+1] == '\n' {
				return i + 1, errBadChar
			}
			i += 2
			continue
		case '\n', '\r':
			return i, errBadChar
		}
		i++
	}
	return i, errMoreBytes
}
