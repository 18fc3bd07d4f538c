package leet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestTransformConcurrentUse(t *testing.T) {
	const callers = 32

	tr := New(WithSymbols(Cheatsheet))
	want, err := tr.Transform("Hola Johnnatan 2024")
	require.NoError(t, err)

	results := make([]string, callers)

	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			for range 100 {
				out, err := tr.Transform("Hola Johnnatan 2024")
				if err != nil {
					return err
				}

				if out != want {
					return fmt.Errorf("caller %d: got %q, want %q", i, out, want)
				}

				results[i] = Transform(out)
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
}
