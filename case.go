// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import "github.com/intuitivelabs/bytescase"

// caseEq reports whether buf (a zero-copy span into the caller's
// buffer) equals s case-insensitively, without allocating.
func caseEq(buf []byte, s string) bool {
	return bytescase.CmpEq(buf, []byte(s))
}
