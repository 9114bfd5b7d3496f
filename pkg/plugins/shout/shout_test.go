package shout

import (
	"testing"

	"github.com/arthur-debert/hooks/pkg/greeting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetShouts(t *testing.T) {
	transcript, err := greeting.Greet("ada")

	require.NoError(t, err)
	assert.Equal(t, []string{"Hello, ada!"}, transcript.Salutations)
	assert.Equal(t, []string{"HELLO, ADA!"}, transcript.Decorations)
	assert.Equal(t, []string{"shouted 1 line(s)"}, transcript.Notes)
}

func TestShout(t *testing.T) {
	assert.Equal(t, "HEY", Shout("hey"))
}
