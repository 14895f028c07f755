package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lefpe/compilador/syntax"
	"github.com/stretchr/testify/require"
)

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	good := filepath.Join(dir, "good.c")
	require.NoError(t, os.WriteFile(good, []byte("x = 1;\nif (x) y = 2;"), 0o644))
	require.NoError(t, checkFile(ctx, good, false))

	bad := filepath.Join(dir, "bad.c")
	require.NoError(t, os.WriteFile(bad, []byte("x @ 1;"), 0o644))
	require.Error(t, checkFile(ctx, bad, false))

	require.Error(t, checkFile(ctx, filepath.Join(dir, "missing.c"), false))
}

func TestCheckFileStrict(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// Unbraced branch compiles, but fails the strict style check.
	unbraced := filepath.Join(dir, "unbraced.c")
	require.NoError(t, os.WriteFile(unbraced, []byte("x = 1;\nif (x) y = 2;"), 0o644))
	require.NoError(t, checkFile(ctx, unbraced, false))

	err := checkFile(ctx, unbraced, true)
	require.Error(t, err)
	var verrs *syntax.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Errors, 1)
	require.Contains(t, err.Error(), "if branches must use braces")

	braced := filepath.Join(dir, "braced.c")
	require.NoError(t, os.WriteFile(braced, []byte("x = 1;\nif (x) {\n  y = 2;\n}"), 0o644))
	require.NoError(t, checkFile(ctx, braced, true))
}
