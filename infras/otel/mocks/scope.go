package mocks

import (
	"sync"

	"tzdate/infras/otel"
)

// Scope is a no-op otel.Scope that remembers what was recorded on it.
type Scope struct {
	mu         sync.Mutex
	Attributes map[string]any
	Errors     []error
	Ended      bool
}

// AddEvent implements otel.Scope.
func (s *Scope) AddEvent(_ string) {

}

// End implements otel.Scope.
func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

// SetAttribute implements otel.Scope.
func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Attributes == nil {
		s.Attributes = make(map[string]any)
	}

	s.Attributes[key] = value
}

// SetAttributes implements otel.Scope.
func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

// TraceError implements otel.Scope.
func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

// TraceIfError implements otel.Scope.
func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func NewScope() otel.Scope {
	return &Scope{}
}
