package main

import "sort"

// Sequence collects ints.
type Sequence interface {
	Append(values ...int)
	Values() []int
}

// ListSequence keeps every value in insertion order.
type ListSequence struct{ items []int }

func (s *ListSequence) Append(values ...int) { s.items = append(s.items, values...) }
func (s *ListSequence) Values() []int         { return append([]int(nil), s.items...) }

// SetSequence keeps distinct values in ascending order.
type SetSequence struct{ items map[int]struct{} }

func NewSetSequence() *SetSequence { return &SetSequence{items: make(map[int]struct{})} }

func (s *SetSequence) Append(values ...int) {
	for _, v := range values {
		s.items[v] = struct{}{}
	}
}

func (s *SetSequence) Values() []int {
	out := make([]int, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
