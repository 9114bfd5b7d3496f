package hook

import (
	"sort"

	"github.com/google/uuid"
)

// Impl is one registered implementation together with its dispatch metadata
type Impl[F any] struct {
	Fn      F
	ID      uuid.UUID
	Weight  int
	Default bool
	// Origin is the function symbol the implementation was registered from
	Origin string
	// Seq is the registration position within its entry
	Seq int
}

// Order selects the implementations that take part in a call and sorts them.
// Defaults participate only when there is no regular implementation.
// The sort is stable, so equal weights keep registration order.
func Order[F any](impls []Impl[F]) []Impl[F] {
	var regular, defaults []Impl[F]
	for _, impl := range impls {
		if impl.Default {
			defaults = append(defaults, impl)
		} else {
			regular = append(regular, impl)
		}
	}

	participating := regular
	if len(participating) == 0 {
		participating = defaults
	}

	sort.SliceStable(participating, func(i, j int) bool {
		return participating[i].Weight < participating[j].Weight
	})
	return participating
}

// Info describes a registered implementation for introspection
type Info struct {
	ID      uuid.UUID `json:"id" yaml:"id" toml:"id"`
	Weight  int       `json:"weight" yaml:"weight" toml:"weight"`
	Default bool      `json:"default" yaml:"default" toml:"default"`
	Origin  string    `json:"origin" yaml:"origin" toml:"origin"`
	Seq     int       `json:"seq" yaml:"seq" toml:"seq"`
	// Position is the index in dispatch order, or -1 when the
	// implementation is currently shadowed
	Position int `json:"position" yaml:"position" toml:"position"`
}

// Participates reports whether the implementation runs on the next call
func (i Info) Participates() bool {
	return i.Position >= 0
}

// Inspect reports every implementation in registration order, along with
// the position each one takes in dispatch order.
func Inspect[F any](impls []Impl[F]) []Info {
	positions := make(map[int]int, len(impls))
	for pos, impl := range Order(impls) {
		positions[impl.Seq] = pos
	}

	infos := make([]Info, 0, len(impls))
	for _, impl := range impls {
		pos, ok := positions[impl.Seq]
		if !ok {
			pos = -1
		}
		infos = append(infos, Info{
			ID:       impl.ID,
			Weight:   impl.Weight,
			Default:  impl.Default,
			Origin:   impl.Origin,
			Seq:      impl.Seq,
			Position: pos,
		})
	}
	return infos
}
