// Package testutil provides test doubles for subprocess execution.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// StubRunner implements remote.Runner against canned responses, keyed
// by the full command line. Unexpected commands fail loudly.
type StubRunner struct {
	mu       sync.Mutex
	stubs    map[string][]stubResponse
	defaults map[string]stubResponse
	calls    []string
}

type stubResponse struct {
	out  string
	code int
	err  error
}

func NewStubRunner() *StubRunner {
	return &StubRunner{
		stubs:    make(map[string][]stubResponse),
		defaults: make(map[string]stubResponse),
	}
}

// Stub queues one response for the exact command line.
func (s *StubRunner) Stub(cmdline string, out string, code int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[cmdline] = append(s.stubs[cmdline], stubResponse{out: out, code: code, err: err})
}

// StubDefault sets a fallback response for the command line, used when
// no queued response remains.
func (s *StubRunner) StubDefault(cmdline string, out string, code int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[cmdline] = stubResponse{out: out, code: code, err: err}
}

func (s *StubRunner) Run(ctx context.Context, name string, args ...string) (string, int, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	s.mu.Lock()
	s.calls = append(s.calls, key)
	queue := s.stubs[key]
	if len(queue) == 0 {
		if resp, ok := s.defaults[key]; ok {
			s.mu.Unlock()
			return resp.out, resp.code, resp.err
		}
		s.mu.Unlock()
		return "", 0, fmt.Errorf("unexpected command: %s", key)
	}
	resp := queue[0]
	s.stubs[key] = queue[1:]
	s.mu.Unlock()
	return resp.out, resp.code, resp.err
}

// Calls returns every command line seen, in order.
func (s *StubRunner) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CallsFor counts how often the exact command line was run.
func (s *StubRunner) CallsFor(cmdline string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, call := range s.calls {
		if call == cmdline {
			count++
		}
	}
	return count
}
