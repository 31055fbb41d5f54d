package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInfo(t *testing.T) {
	t.Parallel()

	t.Run("parses key:value lines", func(t *testing.T) {
		t.Parallel()

		raw := "# Memory\r\nused_memory:1048576\r\nused_memory_human:1.00M\r\n\r\n"
		fields := parseInfo(raw)

		require.Equal(t, "1048576", fields["used_memory"])
		require.Equal(t, "1.00M", fields["used_memory_human"])
	})

	t.Run("skips section headers and malformed lines", func(t *testing.T) {
		t.Parallel()

		raw := "# Stats\nkeyspace_hits:42\nnot a field\nkeyspace_misses:8\n"
		fields := parseInfo(raw)

		require.Len(t, fields, 2)
		require.Equal(t, "42", fields["keyspace_hits"])
		require.Equal(t, "8", fields["keyspace_misses"])
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, parseInfo(""))
	})
}
