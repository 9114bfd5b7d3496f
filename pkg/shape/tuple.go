package shape

import "reflect"

// Tuple is an argument tuple that expands to several call parameters
type Tuple interface {
	Types() []reflect.Type
	Values() []reflect.Value
}

type filler interface {
	fill(vals []reflect.Value)
}

// Tuple2 carries two arguments
type Tuple2[P0, P1 any] struct {
	V0 P0
	V1 P1
}

// T2 builds a Tuple2
func T2[P0, P1 any](v0 P0, v1 P1) Tuple2[P0, P1] {
	return Tuple2[P0, P1]{V0: v0, V1: v1}
}

func (Tuple2[P0, P1]) Types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[P0](), reflect.TypeFor[P1]()}
}

func (t Tuple2[P0, P1]) Values() []reflect.Value {
	return []reflect.Value{valueOf(t.V0), valueOf(t.V1)}
}

func (t *Tuple2[P0, P1]) fill(vals []reflect.Value) {
	set(&t.V0, vals[0])
	set(&t.V1, vals[1])
}

// Tuple3 carries three arguments
type Tuple3[P0, P1, P2 any] struct {
	V0 P0
	V1 P1
	V2 P2
}

// T3 builds a Tuple3
func T3[P0, P1, P2 any](v0 P0, v1 P1, v2 P2) Tuple3[P0, P1, P2] {
	return Tuple3[P0, P1, P2]{V0: v0, V1: v1, V2: v2}
}

func (Tuple3[P0, P1, P2]) Types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[P0](), reflect.TypeFor[P1](), reflect.TypeFor[P2]()}
}

func (t Tuple3[P0, P1, P2]) Values() []reflect.Value {
	return []reflect.Value{valueOf(t.V0), valueOf(t.V1), valueOf(t.V2)}
}

func (t *Tuple3[P0, P1, P2]) fill(vals []reflect.Value) {
	set(&t.V0, vals[0])
	set(&t.V1, vals[1])
	set(&t.V2, vals[2])
}

// Tuple4 carries four arguments
type Tuple4[P0, P1, P2, P3 any] struct {
	V0 P0
	V1 P1
	V2 P2
	V3 P3
}

// T4 builds a Tuple4
func T4[P0, P1, P2, P3 any](v0 P0, v1 P1, v2 P2, v3 P3) Tuple4[P0, P1, P2, P3] {
	return Tuple4[P0, P1, P2, P3]{V0: v0, V1: v1, V2: v2, V3: v3}
}

func (Tuple4[P0, P1, P2, P3]) Types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[P0](), reflect.TypeFor[P1](), reflect.TypeFor[P2](), reflect.TypeFor[P3]()}
}

func (t Tuple4[P0, P1, P2, P3]) Values() []reflect.Value {
	return []reflect.Value{valueOf(t.V0), valueOf(t.V1), valueOf(t.V2), valueOf(t.V3)}
}

func (t *Tuple4[P0, P1, P2, P3]) fill(vals []reflect.Value) {
	set(&t.V0, vals[0])
	set(&t.V1, vals[1])
	set(&t.V2, vals[2])
	set(&t.V3, vals[3])
}
