package aihorde

import "fmt"

// UnknownEnumError is returned when the catch-all member of an enum is
// encoded. The catch-all only exists on the decode side: it stands for a wire
// value this SDK version does not know, so there is nothing to send back.
type UnknownEnumError struct {
	// Kind is the enum type name, e.g. "Sampler".
	Kind string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("aihorde: cannot encode unrecognized %s value", e.Kind)
}

// enumSet maps a closed set of wire strings onto an integer enum type.
// Member 0 is always the catch-all.
type enumSet[E ~uint8 | ~uint16] struct {
	kind  string
	names []string
	index map[string]E
}

func newEnumSet[E ~uint8 | ~uint16](kind string, wire ...string) *enumSet[E] {
	s := &enumSet[E]{
		kind:  kind,
		names: append([]string{"unknown"}, wire...),
		index: make(map[string]E, len(wire)),
	}
	for i, w := range wire {
		s.index[w] = E(i + 1)
	}
	return s
}

func (s *enumSet[E]) known(e E) bool {
	return int(e) > 0 && int(e) < len(s.names)
}

func (s *enumSet[E]) name(e E) string {
	if !s.known(e) {
		return s.names[0]
	}
	return s.names[int(e)]
}

func (s *enumSet[E]) marshal(e E) ([]byte, error) {
	if !s.known(e) {
		return nil, &UnknownEnumError{Kind: s.kind}
	}
	return []byte(s.names[int(e)]), nil
}

// parse never fails; unmapped values land on the catch-all.
func (s *enumSet[E]) parse(v string) E {
	return s.index[v]
}

func (s *enumSet[E]) values() []E {
	out := make([]E, 0, len(s.names)-1)
	for i := 1; i < len(s.names); i++ {
		out = append(out, E(i))
	}
	return out
}
