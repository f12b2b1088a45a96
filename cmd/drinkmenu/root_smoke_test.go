package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTUIWithoutTerminalReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	root.SetArgs([]string{})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"drinkmenu", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}

func TestRootWiresSubcommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"categories"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Cocktail")
}

func TestRootPersistentMenuFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"list", "--menu", "missing-menu.yaml"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load menu")
}
