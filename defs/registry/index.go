package registry

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/alivastudio/motorracing-manager/defs"
)

// index is one entity kind's ordered collection plus its id lookup. Values
// leave the index through clone, so callers never share nested slices or maps
// with it.
type index[K interface {
	comparable
	fmt.Stringer
}, V any] struct {
	kind  string
	all   []V
	byID  map[K]V
	clone func(V) V
}

// newIndex indexes items by key. A nil clone means V holds no slices or maps
// and a plain copy is enough.
func newIndex[K interface {
	comparable
	fmt.Stringer
}, V any](kind string, items []V, key func(V) K, clone func(V) V) index[K, V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return index[K, V]{
		kind:  kind,
		all:   items,
		byID:  lo.KeyBy(items, key),
		clone: clone,
	}
}

func (ix index[K, V]) get(id K) (V, error) {
	v, ok := ix.byID[id]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %s '%s'", defs.ErrNotFound, ix.kind, id)
	}
	return ix.clone(v), nil
}

func (ix index[K, V]) list() []V {
	return lo.Map(ix.all, func(v V, _ int) V { return ix.clone(v) })
}

func (ix index[K, V]) len() int { return len(ix.all) }
