// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import "math"

// lexState is the top-level DFA position (the `state` field), a single
// enum covering request-line, header, body, and chunk sub-phases so
// Step can resume inside any of them after a single byte.
type lexState uint8

const (
	stMsgStart lexState = iota
	stMethod
	stURL
	stVersion
	stLineStart // decide: empty line (end of section) | new field | obs-fold error
	stHeaderField
	stHeaderSep // ':' and surrounding OWS between field-name and value
	stHeaderValue
	stHeaderEOL // consume a just-scanned header/trailer line's CRLF before stLineStart looks at the next line
	stBodyNone
	stBodyIdentity
	stBodyUpgradeEnd // emit MsgEnd right after HeaderEnd, per spec 4.4
	stChunkSize
	stChunkSizeExt
	stChunkSizeEOL
	stChunkData
	stChunkDataEOL
	stMsgEnd
	stPostMsg
	stUpgradeTunnel
	stClosed
	stError
)

// hdrSepPhase is stHeaderSep's internal sub-phase.
type hdrSepPhase uint8

const (
	sepBeforeColon hdrSepPhase = iota
	sepAfterColon
)

// verPhase is stVersion's internal sub-phase (request-target's trailing
// SP, "HTTP/" literal, one major digit, '.', one minor digit, CRLF).
type verPhase uint8

const (
	vpSep verPhase = iota // the SP left unconsumed by the URL token
	vpLit
	vpMajor
	vpDot
	vpMinor
	vpEOL
)

var httpVerLit = []byte("HTTP/")

// Lexer is an incremental, zero-copy HTTP/1.x request lexer. The zero
// value is ready to parse a fresh, non-pipelined request; Init resets
// a Lexer to reuse it (e.g. between connections).
//
// A Lexer is single-threaded and cooperative: exactly one caller drives
// it through Step with one buffer at a time.
type Lexer struct {
	state lexState

	// Fields readable by the caller once the corresponding part of the
	// message has been parsed.
	VersionMajor     int
	VersionMinor     int
	MethodNo         Method
	KeepAlive        bool
	Framing          Framing
	ContentLength    int64
	UpgradeRequested bool
	UpgradeProto     UpgradeProto

	// --- request line ---
	methodAny  bool
	methodHint methodHint
	urlAny     bool
	urlStarted bool
	verPhase   verPhase
	verLitIdx  int

	// --- headers ---
	inTrailers  bool
	fieldAny    bool
	hdrSepPhase hdrSepPhase
	curHdr      FramingHdr
	nameHint    nameHint

	clenDigits int
	clenSet    bool

	trEncSeen        bool
	trEncLastChunked bool
	trEncWord        wordAccum
	trEncInParam     bool

	connClose     bool
	connUpgrade   bool
	connKeepAlive bool
	connWord      wordAccum
	connInParam   bool

	upgradeWord     wordAccum
	upgradeInParam  bool
	upgradeResolved bool

	// --- body ---
	bodyRemaining int64

	// --- chunked ---
	chunkVal      int64
	chunkSawDigit bool
}

// Init (re)initializes lx to begin a fresh, non-pipelined request. It is
// the same operation the zero value already performs; call it to reuse
// a Lexer across connections instead of allocating a new one.
func (lx *Lexer) Init() {
	*lx = Lexer{}
}

// armPipelined resets per-message state while keeping lx ready to parse
// the next request on the same (keep-alive) connection, without
// allocating a new Lexer.
func (lx *Lexer) armPipelined() {
	*lx = Lexer{state: stMsgStart}
}

// fail puts the lexer into its sticky error state and returns the
// Error token for the call that discovered the problem. pos is the
// offending byte's offset in the buffer passed to the current Step
// call (or len(buf) if the problem was detected past the last byte
// examined).
func (lx *Lexer) fail(buf []byte, pos int) Token {
	lx.state = stError
	end := pos + 1
	if end > len(buf) {
		end = pos
	}
	return Token{Kind: Error, Start: pos, End: end}
}

// scanRun returns the index of the first byte in buf[start:] for which
// allowed returns false, or len(buf) if all remaining bytes are
// allowed.
func scanRun(buf []byte, start int, allowed func(byte) bool) int {
	i := start
	for i < len(buf) && allowed(buf[i]) {
		i++
	}
	return i
}

// skipEOL consumes a lenient line ending at buf[i]: "\r\n", a lone "\r",
// or a lone "\n" (lenient line-ending handling). Used for
// the request line, header lines, and chunk size lines.
func skipEOL(buf []byte, i int) (int, ParseError) {
	if i >= len(buf) {
		return i, errMoreBytes
	}
	switch buf[i] {
	case '\r':
		if i+1 >= len(buf) {
			return i, errMoreBytes
		}
		if buf[i+1] == '\n' {
			return i + 2, errOk
		}
		return i + 1, errOk
	case '\n':
		return i + 1, errOk
	}
	return i, errBadChar
}

// expectCRLF consumes a strict "\r\n" at buf[i]. Used after chunk data,
// where the chunked grammar requires exactly one CRLF.
func expectCRLF(buf []byte, i int) (int, ParseError) {
	if i >= len(buf) {
		return i, errMoreBytes
	}
	if buf[i] != '\r' {
		return i, errBadChar
	}
	if i+1 >= len(buf) {
		return i, errMoreBytes
	}
	if buf[i+1] != '\n' {
		return i + 1, errBadChar
	}
	return i + 2, errOk
}

// Step consumes as much of buf as it can and returns the single token
// describing the longest prefix it could classify. token.End is the
// offset the caller must resume from: bytes
// buf[token.End:] were not consumed and must be re-presented, optionally
// with more bytes appended, on the next Step call.
func (lx *Lexer) Step(buf []byte) Token {
	i := 0
	for {
		switch lx.state {
		case stError:
			return Token{Kind: Error}

		case stMsgStart:
			if len(buf) == 0 {
				return Token{Kind: Eagain}
			}
			lx.state = stMethod
			return Token{Kind: MsgStart, Start: i, End: i}

		case stMethod:
			j := scanRun(buf, i, tokAllowedChar)
			for k := i; k < j; k++ {
				lx.methodHint.add(buf[k])
			}
			if j < len(buf) {
				if buf[j] != ' ' {
					return lx.fail(buf, j)
				}
				if j == i && !lx.methodAny {
					return lx.fail(buf, j)
				}
				if j > i {
					lx.methodAny = true
					lx.MethodNo = lx.methodHint.classify()
					lx.state = stURL
					return Token{Kind: MethodTok, Start: i, End: j}
				}
				// no new bytes this call, method already complete from
				// earlier partial tokens: classify from the accumulated
				// name and let stURL consume the SP.
				lx.MethodNo = lx.methodHint.classify()
				lx.state = stURL
				continue
			}
			if j > i {
				lx.methodAny = true
				return Token{Kind: MethodTok, Start: i, End: j, Partial: true}
			}
			return Token{Kind: Eagain, Start: i, End: i}

		case stURL:
			if !lx.urlStarted {
				if i >= len(buf) {
					return Token{Kind: Eagain, Start: i, End: i}
				}
				if buf[i] != ' ' {
					return lx.fail(buf, i)
				}
				i++
				lx.urlStarted = true
			}
			j := scanRun(buf, i, isURLChar)
			if j < len(buf) {
				if buf[j] != ' ' {
					return lx.fail(buf, j)
				}
				if j == i && !lx.urlAny {
					return lx.fail(buf, j)
				}
				if j > i {
					lx.urlAny = true
					lx.state = stVersion
					return Token{Kind: URLTok, Start: i, End: j}
				}
				lx.state = stVersion
				continue
			}
			if j > i {
				lx.urlAny = true
				return Token{Kind: URLTok, Start: i, End: j, Partial: true}
			}
			// i may already have advanced past the SP consumed above
			// even though no URL bytes followed it in this call; report
			// that position so the caller doesn't re-present the SP.
			return Token{Kind: Eagain, Start: i, End: i}

		case stVersion:
			n, err := lx.scanVersion(buf, i)
			if err == errMoreBytes {
				// scanVersion's own loop consumes bytes up to n before
				// running out; report n, not the stale entry position,
				// or the caller would re-feed already-examined bytes.
				return Token{Kind: Eagain, Start: n, End: n}
			}
			if err != errOk {
				return lx.fail(buf, n)
			}
			i = n
			lx.state = stLineStart
			continue

		case stLineStart:
			if i >= len(buf) {
				return Token{Kind: Eagain, Start: i, End: i}
			}
			switch buf[i] {
			case '\r', '\n':
				n, err := skipEOL(buf, i)
				if err == errMoreBytes {
					return Token{Kind: Eagain, Start: i, End: i}
				}
				if err != errOk {
					return lx.fail(buf, i)
				}
				i = n
				if lx.inTrailers {
					lx.state = stMsgEnd
					continue
				}
				if ferr := lx.finishHeaders(); ferr != errOk {
					return lx.fail(buf, i)
				}
				lx.state = lx.bodyState()
				return Token{Kind: HeaderEnd, Start: i, End: i}
			case ' ', '\t':
				return lx.fail(buf, i)
			default:
				if !tokAllowedChar(buf[i]) {
					return lx.fail(buf, i)
				}
				lx.fieldAny = false
				lx.nameHint.reset()
				lx.curHdr = hdrOther
				lx.state = stHeaderField
				continue
			}

		case stHeaderField:
			j := scanRun(buf, i, tokAllowedChar)
			for k := i; k < j; k++ {
				if !lx.inTrailers {
					lx.nameHint.add(buf[k])
				}
			}
			if j < len(buf) {
				if buf[j] != ':' && buf[j] != ' ' && buf[j] != '\t' {
					return lx.fail(buf, j)
				}
				if j == i && !lx.fieldAny {
					return lx.fail(buf, j)
				}
				if !lx.inTrailers {
					lx.curHdr = lx.nameHint.classify()
				}
				lx.hdrSepPhase = sepBeforeColon
				if j > i {
					lx.fieldAny = true
					lx.state = stHeaderSep
					return Token{Kind: Field, Start: i, End: j}
				}
				lx.state = stHeaderSep
				continue
			}
			if j > i {
				lx.fieldAny = true
				return Token{Kind: Field, Start: i, End: j, Partial: true}
			}
			return Token{Kind: Eagain, Start: i, End: i}

		case stHeaderSep:
			n, err := lx.scanHeaderSep(buf, i)
			if err == errMoreBytes {
				// scanHeaderSep consumes OWS bytes up to n before
				// running out; report n so they aren't re-presented.
				return Token{Kind: Eagain, Start: n, End: n}
			}
			if err != errOk {
				return lx.fail(buf, n)
			}
			i = n
			lx.resetValueScan()
			lx.state = stHeaderValue
			continue

		case stHeaderValue:
			j := scanRun(buf, i, isValueChar)
			if j < len(buf) {
				// buf[j] is CR, LF, or a disallowed control byte: the
				// value is complete. Trim trailing OWS immediately
				// preceding it before feeding or emitting any of it,
				// per "field-value with leading and trailing optional
				// whitespace stripped" (leading OWS is already
				// stripped by scanHeaderSep before stHeaderValue is
				// ever entered).
				end := j
				for end > i && (buf[end-1] == ' ' || buf[end-1] == '\t') {
					end--
				}
				for k := i; k < end; k++ {
					if perr := lx.observeValueByte(buf[k]); perr != errOk {
						return lx.fail(buf, k)
					}
				}
				if buf[j] != '\r' && buf[j] != '\n' {
					return lx.fail(buf, j)
				}
				if perr := lx.finishValue(); perr != errOk {
					return lx.fail(buf, j)
				}
				lx.state = stHeaderEOL
				return Token{Kind: Value, Start: i, End: end}
			}
			// Ran out of buffer before the terminating CR/LF: it's not
			// yet known whether a trailing run of SP/HTAB is interior
			// whitespace (more value bytes follow in a later call) or
			// the value's trailing OWS (CR/LF follows instead). Hold it
			// back rather than committing it to this partial token, so
			// a value whose trailing OWS spans a buffer boundary still
			// ends up trimmed once CR/LF is actually seen. At least one
			// byte is still consumed whenever one is available, so an
			// all-OWS fragment can't stall Step's per-call progress.
			end := j
			for end > i+1 && (buf[end-1] == ' ' || buf[end-1] == '\t') {
				end--
			}
			for k := i; k < end; k++ {
				if perr := lx.observeValueByte(buf[k]); perr != errOk {
					return lx.fail(buf, k)
				}
			}
			// Value tokens may legitimately be empty (an empty
			// field-value), so end == i here is still reported, just
			// as Partial: more bytes (or the terminator) are still
			// expected.
			return Token{Kind: Value, Start: i, End: end, Partial: true}

		case stHeaderEOL:
			// buf[i:j] is the trailing OWS run stHeaderValue saw and
			// trimmed from the VALUE span but, since a token's End also
			// tells the caller where to resume, could not consume
			// itself — deferred here instead. buf[j] is the CR (or
			// lone LF) that stHeaderValue saw but deliberately left
			// unconsumed, since the VALUE token's span must exclude it
			// too. Skip both, then let stLineStart examine the byte
			// that actually starts the next line — it must never
			// mistake this already-known terminator for the header
			// section's blank line.
			j := scanRun(buf, i, func(c byte) bool { return c == ' ' || c == '\t' })
			n, err := skipEOL(buf, j)
			if err == errMoreBytes {
				return Token{Kind: Eagain, Start: j, End: j}
			}
			if err != errOk {
				return lx.fail(buf, j)
			}
			i = n
			lx.state = stLineStart
			continue

		case stBodyNone:
			lx.state = stMsgEnd
			continue

		case stBodyIdentity:
			if lx.bodyRemaining == 0 {
				lx.state = stMsgEnd
				continue
			}
			if len(buf)-i == 0 {
				return Token{Kind: Eagain, Start: i, End: i}
			}
			avail := int64(len(buf) - i)
			n := avail
			partial := true
			if n >= lx.bodyRemaining {
				n = lx.bodyRemaining
				partial = false
			}
			lx.bodyRemaining -= n
			end := i + int(n)
			return Token{Kind: Body, Start: i, End: end, Partial: partial}

		case stBodyUpgradeEnd:
			lx.state = stUpgradeTunnel
			return Token{Kind: MsgEnd, Start: i, End: i}

		case stChunkSize:
			n, err := lx.scanChunkSize(buf, i)
			if err == errMoreBytes {
				// scanChunkSize consumes hex digits up to n before
				// running out; report n, not the stale entry position.
				return Token{Kind: Eagain, Start: n, End: n}
			}
			if err != errOk {
				return lx.fail(buf, n)
			}
			i = n
			if buf[i] == ';' {
				lx.state = stChunkSizeExt
			} else {
				lx.state = stChunkSizeEOL
			}
			continue

		case stChunkSizeExt:
			j := scanRun(buf, i, func(c byte) bool { return c != '\r' && c != '\n' })
			if j >= len(buf) {
				return Token{Kind: Eagain, Start: j, End: j}
			}
			i = j
			lx.state = stChunkSizeEOL
			continue

		case stChunkSizeEOL:
			n, err := skipEOL(buf, i)
			if err == errMoreBytes {
				return Token{Kind: Eagain, Start: i, End: i}
			}
			if err != errOk {
				return lx.fail(buf, i)
			}
			i = n
			if lx.chunkVal == 0 {
				lx.inTrailers = true
				lx.state = stLineStart
				continue
			}
			lx.bodyRemaining = lx.chunkVal
			lx.state = stChunkData
			continue

		case stChunkData:
			if lx.bodyRemaining == 0 {
				lx.state = stChunkDataEOL
				continue
			}
			if len(buf)-i == 0 {
				return Token{Kind: Eagain, Start: i, End: i}
			}
			avail := int64(len(buf) - i)
			n := avail
			partial := true
			if n >= lx.bodyRemaining {
				n = lx.bodyRemaining
				partial = false
			}
			lx.bodyRemaining -= n
			end := i + int(n)
			return Token{Kind: Body, Start: i, End: end, Partial: partial}

		case stChunkDataEOL:
			n, err := expectCRLF(buf, i)
			if err == errMoreBytes {
				return Token{Kind: Eagain, Start: i, End: i}
			}
			if err != errOk {
				return lx.fail(buf, n)
			}
			i = n
			lx.chunkVal = 0
			lx.chunkSawDigit = false
			lx.state = stChunkSize
			continue

		case stMsgEnd:
			// The MsgEnd emission point for every non-upgrade path:
			// identity/none body exhaustion and the chunked trailers'
			// blank line transition here via continue rather than
			// returning their own MsgEnd. The upgrade path emits its
			// MsgEnd from stBodyUpgradeEnd and never reaches this
			// state. Either way exactly one MsgEnd token is produced
			// per message.
			lx.state = stPostMsg
			return Token{Kind: MsgEnd, Start: i, End: i}

		case stPostMsg:
			if len(buf) == 0 {
				if lx.KeepAlive {
					return Token{Kind: Eagain, Start: i, End: i}
				}
				lx.state = stClosed
				return Token{Kind: EOF, Start: i, End: i}
			}
			if !lx.KeepAlive {
				lx.state = stClosed
				return Token{Kind: EOF, Start: i, End: i}
			}
			lx.armPipelined()
			continue

		case stUpgradeTunnel:
			lx.state = stClosed
			return Token{Kind: EOF, Start: i, End: len(buf)}

		case stClosed:
			return Token{Kind: EOF, Start: i, End: i}
		}
	}
}

// bodyState picks the body-consuming state once Framing has been
// decided at HeaderEnd.
func (lx *Lexer) bodyState() lexState {
	switch lx.Framing {
	case FramingNone:
		return stBodyNone
	case FramingIdentity:
		lx.bodyRemaining = lx.ContentLength
		return stBodyIdentity
	case FramingChunked:
		return stChunkSize
	case FramingUpgrade:
		return stBodyUpgradeEnd
	}
	return stBodyNone
}

// scanVersion drives the request line's version sub-grammar:
// SP "HTTP/" DIGIT "." DIGIT CRLF (the leading SP is the delimiter URL
// left unconsumed).
func (lx *Lexer) scanVersion(buf []byte, i int) (int, ParseError) {
	for i < len(buf) {
		c := buf[i]
		switch lx.verPhase {
		case vpSep:
			if c != ' ' {
				return i, errBadVersion
			}
			lx.verPhase = vpLit
			i++
		case vpLit:
			if c != httpVerLit[lx.verLitIdx] {
				return i, errBadVersion
			}
			lx.verLitIdx++
			i++
			if lx.verLitIdx == len(httpVerLit) {
				lx.verPhase = vpMajor
			}
		case vpMajor:
			if c < '0' || c > '9' {
				return i, errBadVersion
			}
			lx.VersionMajor = int(c - '0')
			lx.verPhase = vpDot
			i++
		case vpDot:
			if c != '.' {
				return i, errBadVersion
			}
			lx.verPhase = vpMinor
			i++
		case vpMinor:
			if c < '0' || c > '9' {
				return i, errBadVersion
			}
			lx.VersionMinor = int(c - '0')
			lx.verPhase = vpEOL
			i++
		case vpEOL:
			return skipEOL(buf, i)
		}
	}
	return i, errMoreBytes
}

// scanHeaderSep consumes optional OWS, the mandatory ':', and the
// optional OWS preceding the field-value (teacher's hNameEnd/hBodyStart
// phases, collapsed since neither emits a token).
func (lx *Lexer) scanHeaderSep(buf []byte, i int) (int, ParseError) {
	for i < len(buf) {
		c := buf[i]
		switch lx.hdrSepPhase {
		case sepBeforeColon:
			switch c {
			case ' ', '\t':
				i++
			case ':':
				i++
				lx.hdrSepPhase = sepAfterColon
			default:
				return i, errBadChar
			}
		case sepAfterColon:
			if c == ' ' || c == '\t' {
				i++
				continue
			}
			return i, errOk
		}
	}
	return i, errMoreBytes
}

// resetValueScan clears the per-header-instance scratch state used to
// recognize a framing header's value, without disturbing the
// already-decided persistent flags (connClose, connUpgrade, trEncSeen,
// clenSet, ...), which must survive across every subsequent header of
// the same message.
func (lx *Lexer) resetValueScan() {
	lx.trEncWord.reset()
	lx.trEncInParam = false
	lx.connWord.reset()
	lx.connInParam = false
	lx.upgradeWord.reset()
	lx.upgradeInParam = false
	if lx.curHdr == hdrCLen {
		lx.ContentLength = 0
		lx.clenDigits = 0
	}
	if lx.curHdr == hdrUpgrade {
		lx.upgradeResolved = false
	}
}

// observeValueByte feeds one field-value byte into the framing decider
// while the value is still being scanned (possibly across several Step
// calls), so a framing header's value is inspected byte-by-byte as it
// arrives rather than requiring it to be fully buffered first.
func (lx *Lexer) observeValueByte(c byte) ParseError {
	switch lx.curHdr {
	case hdrCLen:
		if c == ' ' || c == '\t' {
			return errOk
		}
		if c < '0' || c > '9' {
			return errNotNumber
		}
		if lx.ContentLength > (math.MaxInt64-int64(c-'0'))/10 {
			return errOverflow
		}
		lx.ContentLength = lx.ContentLength*10 + int64(c-'0')
		lx.clenDigits++
	case hdrTrEncoding:
		lx.scanFramingWord(&lx.trEncWord, &lx.trEncInParam, c, func(w *wordAccum) {
			if !w.empty() {
				lx.trEncSeen = true
				lx.trEncLastChunked = w.eq("chunked")
			}
		})
	case hdrConnection:
		lx.scanFramingWord(&lx.connWord, &lx.connInParam, c, func(w *wordAccum) {
			if w.eq("close") {
				lx.connClose = true
			} else if w.eq("upgrade") {
				lx.connUpgrade = true
			} else if w.eq("keep-alive") {
				lx.connKeepAlive = true
			}
		})
	case hdrUpgrade:
		if c != ' ' && c != '\t' {
			lx.UpgradeRequested = true
		}
		lx.scanFramingWord(&lx.upgradeWord, &lx.upgradeInParam, c, lx.resolveUpgradeWord)
	}
	return errOk
}

// resolveUpgradeWord classifies the first protocol token of an Upgrade
// header's value; later tokens in the same comma-separated list are
// ignored, since the first is the caller's preferred protocol.
func (lx *Lexer) resolveUpgradeWord(w *wordAccum) {
	if lx.upgradeResolved || w.empty() {
		return
	}
	lx.UpgradeProto = ResolveUpgradeProto(w.buf[:w.n])
	lx.upgradeResolved = true
}

// scanFramingWord feeds one byte of a comma-separated token list into
// word, calling onWord at each token boundary (',' or ';') and
// resetting word for the next token.
func (lx *Lexer) scanFramingWord(word *wordAccum, inParam *bool, c byte, onWord func(*wordAccum)) {
	switch c {
	case ',':
		onWord(word)
		word.reset()
		*inParam = false
	case ';':
		onWord(word)
		*inParam = true
	case ' ', '\t':
		// ignore; tokens are separated by commas, not bare whitespace
	default:
		if !*inParam {
			word.add(c)
		}
	}
}

// finishValue is called once a VALUE token's terminating CR/LF has been
// found, to flush whatever framing word is still pending (there was no
// trailing ',' or ';' to trigger scanFramingWord's onWord callback) and
// to validate Content-Length had at least one digit.
func (lx *Lexer) finishValue() ParseError {
	switch lx.curHdr {
	case hdrCLen:
		if lx.clenDigits == 0 {
			return errNotNumber
		}
		lx.clenSet = true
	case hdrTrEncoding:
		if !lx.trEncWord.empty() {
			lx.trEncSeen = true
			lx.trEncLastChunked = lx.trEncWord.eq("chunked")
		}
	case hdrConnection:
		w := &lx.connWord
		if w.eq("close") {
			lx.connClose = true
		} else if w.eq("upgrade") {
			lx.connUpgrade = true
		} else if w.eq("keep-alive") {
			lx.connKeepAlive = true
		}
	case hdrUpgrade:
		lx.resolveUpgradeWord(&lx.upgradeWord)
	}
	return errOk
}

// finishHeaders validates the HTTP version and computes Framing and
// KeepAlive once the terminating empty header line has been recognized.
func (lx *Lexer) finishHeaders() ParseError {
	if lx.VersionMajor != 1 || (lx.VersionMinor != 0 && lx.VersionMinor != 1) {
		return errBadVersion
	}
	switch {
	case lx.UpgradeRequested && lx.connUpgrade:
		lx.Framing = FramingUpgrade
	case lx.trEncSeen:
		if !lx.trEncLastChunked {
			return errBadChar
		}
		lx.Framing = FramingChunked
	case lx.clenSet:
		lx.Framing = FramingIdentity
	default:
		lx.Framing = FramingNone
	}
	if lx.VersionMinor == 1 {
		lx.KeepAlive = !lx.connClose
	} else {
		lx.KeepAlive = lx.connKeepAlive
	}
	return errOk
}

// scanChunkSize accumulates the hex chunk-size digits of a chunk
// delimiter line, stopping at ';' (extension,
// handled by stChunkSizeExt) or CR/LF.
func (lx *Lexer) scanChunkSize(buf []byte, i int) (int, ParseError) {
	for i < len(buf) {
		c := buf[i]
		if d, ok := hexDigit(c); ok {
			if lx.chunkVal > (maxChunkSize-d)/16 {
				return i, errOverflow
			}
			lx.chunkVal = lx.chunkVal*16 + d
			lx.chunkSawDigit = true
			i++
			continue
		}
		if !lx.chunkSawDigit {
			return i, errBadChar
		}
		if c == ';' {
			return i, errOk // caller transitions to stChunkSizeExt
		}
		if c == '\r' || c == '\n' {
			return i, errOk
		}
		return i, errBadChar
	}
	return i, errMoreBytes
}
