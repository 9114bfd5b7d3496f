package inventory

import (
	"strings"
	"testing"

	"github.com/arthur-debert/hooks/pkg/hook"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = hook.Declare[string, int]("inventory.sample").WithDoc("Counts things.")

func init() {
	sample.Register(func(s string) int { return len(s) }, hook.Weight(3))
}

func newTable() *hook.Table {
	table := hook.NewTable()
	hook.RegisterIn(table, "inventory.sample", strings.ToUpper)
	hook.RegisterIn(table, "inventory.alpha", strings.ToLower, hook.AsDefault())
	return table
}

func TestCollect(t *testing.T) {
	listing := Collect(newTable(), Options{})

	require.Len(t, listing.Hooks, 3)
	assert.Equal(t, "inventory.alpha", listing.Hooks[0].Name)
	assert.Equal(t, KindNamed, listing.Hooks[0].Kind)
	assert.Equal(t, KindPoint, listing.Hooks[1].Kind, "points sort before named hooks")
	assert.Equal(t, KindNamed, listing.Hooks[2].Kind)

	point := listing.Hooks[1]
	assert.Equal(t, "(string) -> int", point.Signature)
	assert.Equal(t, "Counts things.", point.Doc)
	require.Len(t, point.Implementations, 1)
	assert.Equal(t, 3, point.Implementations[0].Weight)
	assert.Empty(t, point.Implementations[0].ID)

	alpha := listing.Hooks[0].Implementations[0]
	assert.True(t, alpha.Default)
	assert.Equal(t, 0, alpha.Position, "a lone default runs")
	assert.Equal(t, "strings.ToLower", alpha.Origin)
}

func TestCollectWithIDs(t *testing.T) {
	listing := Collect(newTable(), Options{IncludeIDs: true})

	for _, h := range listing.Hooks {
		for _, impl := range h.Implementations {
			_, err := uuid.Parse(impl.ID)
			assert.NoError(t, err)
		}
	}
}

func TestFind(t *testing.T) {
	table := newTable()

	found := Find(table, "inventory.sample", Options{})
	require.Len(t, found, 2)
	assert.Equal(t, "(string) -> int", found[0].Signature)
	assert.Equal(t, "(string) -> string", found[1].Signature)

	assert.Empty(t, Find(table, "inventory.missing", Options{}))
}
