// Package testutil holds fixtures shared by package tests: a parsed todo page,
// an ordered handler recorder and helpers for comparing terminal output.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/todo-popup/internal/dom"
	"github.com/atomicstack/todo-popup/internal/template"
	"github.com/charmbracelet/x/ansi"
)

// NewDocument parses the page skeleton or fails the test.
func NewDocument(t testing.TB) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(template.Index)
	if err != nil {
		t.Fatalf("failed to parse page skeleton: %v", err)
	}
	return doc
}

// MustQuery returns the first element matching selector under scope or fails
// the test.
func MustQuery(t testing.TB, doc *dom.Document, selector string, scope *dom.Element) *dom.Element {
	t.Helper()
	el := doc.QueryOne(selector, scope)
	if el == nil {
		t.Fatalf("expected an element matching %q", selector)
	}
	return el
}

// Call is one recorded handler invocation.
type Call struct {
	Name    string
	Payload interface{}
}

func (c Call) String() string {
	if c.Payload == nil {
		return c.Name
	}
	return fmt.Sprintf("%s(%v)", c.Name, c.Payload)
}

// Recorder collects handler invocations in the order they happen.
type Recorder struct {
	calls []Call
}

// Record appends a call.
func (r *Recorder) Record(name string, payload interface{}) {
	r.calls = append(r.calls, Call{Name: name, Payload: payload})
}

// Func returns a listener-style callback that records name with no payload.
func (r *Recorder) Func(name string) func() {
	return func() { r.Record(name, nil) }
}

// Calls returns a copy of every recorded call.
func (r *Recorder) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Names returns the recorded call names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.calls))
	for i, call := range r.calls {
		names[i] = call.Name
	}
	return names
}

// Count reports how often name was recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, call := range r.calls {
		if call.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.calls = nil
}

// PlainLines strips escape sequences from rendered output, trims trailing
// blanks and splits it into lines.
func PlainLines(output string) []string {
	lines := strings.Split(ansi.Strip(output), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// AssertContainsLine fails unless some line of output contains want.
func AssertContainsLine(t testing.TB, output, want string) {
	t.Helper()
	for _, line := range PlainLines(output) {
		if strings.Contains(line, want) {
			return
		}
	}
	t.Fatalf("expected output to contain %q\nactual:\n%s", want, ansi.Strip(output))
}

// AssertNoLine fails if any line of output contains unwanted.
func AssertNoLine(t testing.TB, output, unwanted string) {
	t.Helper()
	for _, line := range PlainLines(output) {
		if strings.Contains(line, unwanted) {
			t.Fatalf("expected output not to contain %q\nactual:\n%s", unwanted, ansi.Strip(output))
		}
	}
}
