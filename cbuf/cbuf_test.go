// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"fmt"
	"log"
	"testing"

	"github.com/pkg/errors"

	"objexport/cmd"
	"objexport/conlog"
)

func TestSplitLines(t *testing.T) {
	var got []string
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			got = append(got, a.Full())
			return true, nil
		}})
	c.AddText("set a 1; set b 2\n")
	c.AddText("set c \"x;y\"\n\n")
	c.AddText("// comment\n")
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	want := []string{`set a 1`, `set b 2`, `set c "x;y"`}
	if len(got) != len(want) {
		t.Fatalf("executed %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInsertText(t *testing.T) {
	var got []string
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			name := a.Argv(0).String()
			got = append(got, name)
			if name == "exec" {
				cb.InsertText("inner1\ninner2")
			}
			return true, nil
		}})
	c.AddText("exec\nafter\n")
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	want := []string{"exec", "inner1", "inner2", "after"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("executed %v, want %v", got, want)
	}
}

func TestExecutorOrder(t *testing.T) {
	first, second := 0, 0
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			first++
			return a.Argv(0).String() == "mine", nil
		},
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			second++
			return true, nil
		}})
	c.AddText("mine\nyours\n")
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	if first != 2 || second != 1 {
		t.Errorf("first=%d second=%d, want 2 and 1", first, second)
	}
}

func TestUnknownCommand(t *testing.T) {
	var out string
	conlog.SetPrintf(func(s string, a ...interface{}) {
		out += fmt.Sprintf(s, a...)
	})
	defer conlog.SetPrintf(log.Printf)
	c := CommandBuffer{}
	c.AddText("frobnicate now\n")
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	if want := "Unknown command \"frobnicate\"\n"; out != want {
		t.Errorf("printed %q, want %q", out, want)
	}
}

func TestExecuteError(t *testing.T) {
	boom := errors.New("boom")
	ran := 0
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			ran++
			return false, boom
		}})
	c.AddText("a\nb\n")
	if err := c.Execute(); !errors.Is(err, boom) {
		t.Errorf("Execute() = %v, want %v", err, boom)
	}
	if ran != 1 {
		t.Errorf("ran %d commands after a failure, want 1", ran)
	}
}
