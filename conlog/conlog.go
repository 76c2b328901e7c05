// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the console output of the exporter. The printers can be
// replaced, the default prints through the standard logger.
package conlog

import (
	"log"
	"sync"
)

var (
	mu        sync.Mutex
	p         = log.Printf
	sp        = log.Printf
	developer bool
)

func SetPrintf(f func(string, ...interface{})) {
	mu.Lock()
	defer mu.Unlock()
	p = f
}

func SetSafePrintf(f func(string, ...interface{})) {
	mu.Lock()
	defer mu.Unlock()
	sp = f
}

// SetDeveloper enables DPrintf output.
func SetDeveloper(on bool) {
	mu.Lock()
	defer mu.Unlock()
	developer = on
}

func Printf(format string, v ...interface{}) {
	mu.Lock()
	f := p
	mu.Unlock()
	f(format, v...)
}

// SafePrintf is used for listings that should never be filtered.
func SafePrintf(format string, v ...interface{}) {
	mu.Lock()
	f := sp
	mu.Unlock()
	f(format, v...)
}

// DPrintf prints only in developer mode.
func DPrintf(format string, v ...interface{}) {
	mu.Lock()
	f, on := p, developer
	mu.Unlock()
	if on {
		f(format, v...)
	}
}
