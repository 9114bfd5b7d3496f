// Package inventory turns the process's declared points and named hooks
// into views for hookctl.
package inventory

import (
	"sort"

	"github.com/arthur-debert/hooks/pkg/hook"
	"github.com/arthur-debert/hooks/pkg/ui"
)

const (
	KindPoint = "point"
	KindNamed = "named"
)

// Options controls what Collect includes
type Options struct {
	// IncludeIDs adds each implementation's random ID
	IncludeIDs bool
}

// Collect lists every declared point and every named hook shape, sorted by
// name. Points sort before named hooks of the same name.
func Collect(table *hook.Table, opts Options) ui.Listing {
	var hooks []ui.HookView
	for _, p := range hook.Points() {
		hooks = append(hooks, pointView(p, opts))
	}
	for _, entry := range table.Entries() {
		hooks = append(hooks, entryView(entry, opts))
	}

	sort.SliceStable(hooks, func(i, j int) bool {
		if hooks[i].Name != hooks[j].Name {
			return hooks[i].Name < hooks[j].Name
		}
		return hooks[i].Kind == KindPoint && hooks[j].Kind != KindPoint
	})
	return ui.Listing{Hooks: hooks}
}

// Find returns the views registered under name, in Collect order
func Find(table *hook.Table, name string, opts Options) []ui.HookView {
	var found []ui.HookView
	for _, h := range Collect(table, opts).Hooks {
		if h.Name == name {
			found = append(found, h)
		}
	}
	return found
}

func pointView(p hook.Described, opts Options) ui.HookView {
	return ui.HookView{
		Name:            p.Name(),
		Kind:            KindPoint,
		Signature:       p.Signature().String(),
		Doc:             p.Doc(),
		Implementations: implViews(p.Implementations(), opts),
	}
}

func entryView(entry hook.Entry, opts Options) ui.HookView {
	return ui.HookView{
		Name:            entry.Name,
		Kind:            KindNamed,
		Signature:       entry.Signature.String(),
		Implementations: implViews(entry.Implementations, opts),
	}
}

func implViews(infos []hook.Info, opts Options) []ui.ImplView {
	views := make([]ui.ImplView, 0, len(infos))
	for _, info := range infos {
		v := ui.ImplView{
			Seq:      info.Seq,
			Origin:   info.Origin,
			Weight:   info.Weight,
			Default:  info.Default,
			Position: info.Position,
		}
		if opts.IncludeIDs {
			v.ID = info.ID.String()
		}
		views = append(views, v)
	}
	return views
}
