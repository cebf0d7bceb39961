package clipboard_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/alkime/itranscript/internal/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := clipboard.NewOSC52(&buf)

	require.NoError(t, c.Copy("SUBJECTIVE: tingling"))
	assert.Contains(t, buf.String(), "\x1b]52;c;")
	assert.Contains(t, buf.String(), base64.StdEncoding.EncodeToString([]byte("SUBJECTIVE: tingling")))

	require.ErrorIs(t, c.Copy(""), clipboard.ErrEmpty)
}

func TestMemory(t *testing.T) {
	t.Parallel()

	var m clipboard.Memory
	assert.Empty(t, m.Last())

	require.NoError(t, m.Copy("one"))
	require.NoError(t, m.Copy("two"))
	require.ErrorIs(t, m.Copy(""), clipboard.ErrEmpty)

	assert.Equal(t, "two", m.Last())
	assert.Equal(t, 2, m.Len())
}
