package hook

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func TestQuietLogging(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
