package store

import (
	"bytes"

	"github.com/kittyverse/weft/errors"
)

// sliceIterator walks over a sorted slice of models.
type sliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*sliceIterator)(nil)

// NewSliceIterator returns an iterator over data in the given order.
func NewSliceIterator(data []Model) Iterator {
	return &sliceIterator{data: data}
}

func (s *sliceIterator) Next() ([]byte, []byte, error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

func (s *sliceIterator) Release() {
	s.data = nil
}

// ReadAll drains the iterator and releases it.
func ReadAll(it Iterator) ([]Model, error) {
	defer it.Release()
	var res []Model
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		} else if err != nil {
			return nil, err
		}
		res = append(res, Model{Key: k, Value: v})
	}
}

// inRange returns true if start <= key < end. Nil bounds are open.
func inRange(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(key, end) >= 0 {
		return false
	}
	return true
}

// merge overlays the cached writes on top of the parent models. Both lists
// must be sorted ascending. Deleted entries hide the parent value.
func merge(parent []Model, cached []entry) []Model {
	res := make([]Model, 0, len(parent)+len(cached))
	i, j := 0, 0
	for i < len(parent) || j < len(cached) {
		switch {
		case j >= len(cached):
			res = append(res, parent[i])
			i++
		case i >= len(parent):
			if !cached[j].deleted {
				res = append(res, cached[j].model())
			}
			j++
		default:
			c := bytes.Compare(parent[i].Key, cached[j].key)
			if c < 0 {
				res = append(res, parent[i])
				i++
				continue
			}
			if c == 0 {
				i++
			}
			if !cached[j].deleted {
				res = append(res, cached[j].model())
			}
			j++
		}
	}
	return res
}

func reverse(ms []Model) []Model {
	for i, j := 0, len(ms)-1; i < j; i, j = i+1, j-1 {
		ms[i], ms[j] = ms[j], ms[i]
	}
	return ms
}
