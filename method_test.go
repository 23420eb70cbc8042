// Copyright 2021 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package hl

import "testing"

// TestMthNameLookup checks the hashMthName bucket statistics the way the
// teacher's TestMthNameLookup does: every known method must hash into
// the table, and no bucket should grow so crowded that lookup degrades
// into a long linear scan.
func TestMthNameLookup(t *testing.T) {
	var max, crowded, total int
	for _, l := range mthNameLookup {
		if len(l) > max {
			max = len(l)
		}
		if len(l) > 1 {
			crowded++
		}
		total += len(l)
	}
	if total != int(MOther)-1 {
		t.Errorf("mthNameLookup has %d entries, expected %d", total, int(MOther)-1)
	}
	if max > 2 {
		t.Errorf("mthNameLookup bucket too crowded: max %d, crowded buckets %d", max, crowded)
	}
}

func TestClassifyMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"GET", MGet},
		{"HEAD", MHead},
		{"POST", MPost},
		{"PUT", MPut},
		{"DELETE", MDelete},
		{"CONNECT", MConnect},
		{"OPTIONS", MOptions},
		{"TRACE", MTrace},
		{"PATCH", MPatch},
		{"get", MOther},
		{"PoSt", MOther},
		{"PROPFIND", MOther},
		{"", MUndef},
	}
	for _, tc := range tests {
		got := classifyMethod([]byte(tc.in))
		if got != tc.want {
			t.Errorf("classifyMethod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMethodString(t *testing.T) {
	if MGet.String() != "GET" {
		t.Errorf("MGet.String() = %q, want GET", MGet.String())
	}
	if Method(200).String() != "" {
		t.Errorf("out-of-range Method.String() = %q, want empty", Method(200).String())
	}
}
