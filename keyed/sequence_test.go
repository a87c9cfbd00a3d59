package keyed_test

import (
	"sort"

	"github.com/kbukum/keyedi/di"
	"github.com/kbukum/keyedi/keyed"
)

// Sequence is a read-only sequence of ints.
type Sequence interface {
	Len() int
	Values() []int
}

// ListSequence keeps values in insertion order.
type ListSequence struct{ items []int }

func (s *ListSequence) Len() int      { return len(s.items) }
func (s *ListSequence) Values() []int { return append([]int(nil), s.items...) }

// SetSequence keeps distinct values in ascending order.
type SetSequence struct{ items map[int]struct{} }

func NewSetSequence() *SetSequence { return &SetSequence{items: make(map[int]struct{})} }

func (s *SetSequence) Len() int { return len(s.items) }

func (s *SetSequence) Values() []int {
	out := make([]int, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// ClientA depends on the "list" implementation.
type ClientA struct{ Seq Sequence }

// ClientB depends on the "hashSet" implementation.
type ClientB struct{ Seq Sequence }

// ClientZ picks its implementation through the factory.
type ClientZ struct{ Seq Sequence }

func NewClientZ(f keyed.Factory[string, Sequence]) (*ClientZ, error) {
	seq, err := f.GetByKey("hashSet")
	if err != nil {
		return nil, err
	}
	return &ClientZ{Seq: seq}, nil
}

func registerSequences(c di.Container) error {
	if err := di.ProvideTransient(c, func(di.Container) (*ListSequence, error) {
		return &ListSequence{}, nil
	}); err != nil {
		return err
	}
	return di.ProvideTransient(c, func(di.Container) (*SetSequence, error) {
		return NewSetSequence(), nil
	})
}

func registerClients(c di.Container) error {
	if err := di.ProvideTransient(c, func(c di.Container) (*ClientA, error) {
		seq, err := keyed.GetServiceByName[Sequence](c, "list")
		if err != nil {
			return nil, err
		}
		return &ClientA{Seq: seq}, nil
	}); err != nil {
		return err
	}
	if err := di.ProvideTransient(c, func(c di.Container) (*ClientB, error) {
		return &ClientB{Seq: keyed.MustGetServiceByName[Sequence](c, "hashSet")}, nil
	}); err != nil {
		return err
	}
	return di.ProvideTransient(c, func(c di.Container) (*ClientZ, error) {
		f, err := di.ResolveType[keyed.Factory[string, Sequence]](c)
		if err != nil {
			return nil, err
		}
		return NewClientZ(f)
	})
}
