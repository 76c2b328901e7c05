// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"fmt"
	"log"
	"testing"
)

func TestPrinters(t *testing.T) {
	var pout, spout string
	SetPrintf(func(s string, a ...interface{}) {
		pout += fmt.Sprintf(s, a...)
	})
	SetSafePrintf(func(s string, a ...interface{}) {
		spout += fmt.Sprintf(s, a...)
	})
	defer SetPrintf(log.Printf)
	defer SetSafePrintf(log.Printf)

	Printf("hello %d\n", 1)
	SafePrintf("list %s\n", "a")
	SetDeveloper(false)
	DPrintf("hidden\n")
	SetDeveloper(true)
	DPrintf("shown\n")
	SetDeveloper(false)

	if want := "hello 1\nshown\n"; pout != want {
		t.Errorf("Printf output = %q, want %q", pout, want)
	}
	if want := "list a\n"; spout != want {
		t.Errorf("SafePrintf output = %q, want %q", spout, want)
	}
}
