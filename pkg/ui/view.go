package ui

// ImplView is one implementation as shown by list and describe
type ImplView struct {
	Seq      int    `json:"seq" yaml:"seq" toml:"seq"`
	Origin   string `json:"origin" yaml:"origin" toml:"origin"`
	Weight   int    `json:"weight" yaml:"weight" toml:"weight"`
	Default  bool   `json:"default" yaml:"default" toml:"default"`
	Position int    `json:"position" yaml:"position" toml:"position"`
	ID       string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
}

// Active reports whether the implementation runs on the next call
func (v ImplView) Active() bool {
	return v.Position >= 0
}

// HookView describes a declared point or one shape of a named hook
type HookView struct {
	Name            string     `json:"name" yaml:"name" toml:"name"`
	Kind            string     `json:"kind" yaml:"kind" toml:"kind"`
	Signature       string     `json:"signature" yaml:"signature" toml:"signature"`
	Doc             string     `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`
	Implementations []ImplView `json:"implementations" yaml:"implementations" toml:"implementations"`
}

// Active counts the implementations that run on the next call
func (h HookView) Active() int {
	n := 0
	for _, impl := range h.Implementations {
		if impl.Active() {
			n++
		}
	}
	return n
}

// Listing is the result of the list command
type Listing struct {
	Hooks []HookView `json:"hooks" yaml:"hooks" toml:"hooks"`
}

// Invocation is the result of invoking a hook from the command line
type Invocation struct {
	Hook      string   `json:"hook" yaml:"hook" toml:"hook"`
	Signature string   `json:"signature" yaml:"signature" toml:"signature"`
	Results   []string `json:"results" yaml:"results" toml:"results"`
}
