package utils

// Optional holds a value that may be absent. The zero value is None.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Joined pairs a primary record with its first secondary match, if any.
type Joined[P any, S any] struct {
	Primary P
	Match   Optional[S]
}

// LeftJoinFirst returns one Joined per primary record, in primary order. Secondary
// records are indexed once; when several share a key the first one wins. Secondary
// records without a primary never appear.
func LeftJoinFirst[P any, S any, K comparable](primary []P, secondary []S, primaryKey func(P) K, secondaryKey func(S) K) []Joined[P, S] {
	index := make(map[K]S, len(secondary))
	for _, s := range secondary {
		k := secondaryKey(s)
		if _, seen := index[k]; seen {
			continue
		}
		index[k] = s
	}

	out := make([]Joined[P, S], 0, len(primary))
	for _, p := range primary {
		j := Joined[P, S]{Primary: p}
		if s, ok := index[primaryKey(p)]; ok {
			j.Match = Some(s)
		}
		out = append(out, j)
	}
	return out
}
