// Copyright 2026 The d2stash Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package codec

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/d2tools/stashsort/internal/bitbuf"
)

// TestDataDriven exercises Integer and Chars against fixed bit patterns,
// including seed scenario 3 (chars_to_bits("azAZ09")), in the
// cmd/input/expected-output shape used throughout the corpus for
// table-format test suites.
func TestDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/primitives", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "decode-integer":
			c := Integer{Width: cmdArgInt(td, "width")}
			val, consumed, err := c.Decode(bitsFromString(strings.TrimSpace(td.Input)))
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			return fmt.Sprintf("value=%d consumed=%d\n", val, consumed)

		case "encode-integer":
			c := Integer{Width: cmdArgInt(td, "width")}
			v, err := strconv.ParseUint(strings.TrimSpace(td.Input), 10, 64)
			if err != nil {
				t.Fatalf("bad input %q: %v", td.Input, err)
			}
			bits, err := c.Encode(v)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			return bitsToString(bits) + "\n"

		case "decode-chars":
			c := Chars{Count: cmdArgInt(td, "count")}
			val, consumed, err := c.Decode(bitsFromString(strings.TrimSpace(td.Input)))
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			return fmt.Sprintf("value=%q consumed=%d\n", val, consumed)

		case "encode-chars":
			c := Chars{Count: cmdArgInt(td, "count")}
			bits, err := c.Encode(strings.TrimSpace(td.Input))
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			return bitsToString(bits) + "\n"

		default:
			t.Fatalf("unknown command %q", td.Cmd)
			return ""
		}
	})
}

func cmdArgInt(td *datadriven.TestData, key string) int {
	for _, arg := range td.CmdArgs {
		if arg.Key == key {
			n, _ := strconv.Atoi(arg.Vals[0])
			return n
		}
	}
	return 0
}

func bitsFromString(s string) bitbuf.Bits {
	out := make(bitbuf.Bits, len(s))
	for i, r := range s {
		if r == '1' {
			out[i] = 1
		}
	}
	return out
}

func bitsToString(b bitbuf.Bits) string {
	var sb strings.Builder
	for _, bit := range b {
		if bit == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
