package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekendguide/berlin/pkg/catalog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBudgetCommand(t *testing.T) {
	t.Run("should use defaults without favorites", func(t *testing.T) {
		out, err := run(t, "budget")

		require.NoError(t, err)
		assert.Equal(t, "Museums & attractions: €20.00\nFood: €22.50\nTransport: €17.60\nTotal: €60.10 (1.5 days)\n", out)
	})

	t.Run("should price favorites", func(t *testing.T) {
		out, err := run(t, "budget", "-f", "museum_0", "--favorite", "restaurant_0", "--days", "2")

		require.NoError(t, err)
		assert.Equal(t, "Museums & attractions: €14.00\nFood: €90.00\nTransport: €17.60\nTotal: €121.60 (2 days)\n", out)
	})

	t.Run("should count a repeated favorite once", func(t *testing.T) {
		out, err := run(t, "budget", "-f", "museum_0", "-f", "museum_0")

		require.NoError(t, err)
		assert.Equal(t, "Museums & attractions: €14.00\nFood: €22.50\nTransport: €17.60\nTotal: €54.10 (1.5 days)\n", out)
	})

	t.Run("should print csv", func(t *testing.T) {
		out, err := run(t, "budget", "--transport", "16", "--csv")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Category,Source,Total (EUR)\n"))
		assert.Contains(t, out, "Transport,estimate,16.00\n")
	})
}

func TestCatalogCommand(t *testing.T) {
	t.Run("should list one category", func(t *testing.T) {
		out, err := run(t, "catalog", "--category", "restaurant")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 6)
		assert.Contains(t, lines[0], "restaurant_0")
		assert.Contains(t, lines[0], "Café Krone")
		assert.Contains(t, lines[0], "15.00")
	})

	t.Run("should show free items", func(t *testing.T) {
		out, err := run(t, "catalog", "--category", "attraction")

		require.NoError(t, err)
		assert.Contains(t, out, "Free")
	})

	t.Run("should reject unknown category", func(t *testing.T) {
		_, err := run(t, "catalog", "--category", "hotel")

		assert.ErrorIs(t, err, catalog.ErrUnknownCategory)
	})
}
