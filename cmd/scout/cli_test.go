package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/mstanek/scout/cmd/scout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	// Parse --help (Kong writes help to stdout)
	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	expectedCommands := []string{"scan", "batch", "pitch"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ScanFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"scan", "https://youtube.com/@creator", "--from-file", "page.html", "--pretty"})
	require.NoError(t, err)

	assert.Equal(t, "https://youtube.com/@creator", cli.Scan.URL)
	assert.Equal(t, "page.html", cli.Scan.FromFile)
	assert.True(t, cli.Scan.Pretty)
}

func TestCLI_BatchDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"batch", "urls.txt"})
	require.NoError(t, err)

	assert.Equal(t, "urls.txt", cli.Batch.File)
	assert.Equal(t, 4, cli.Batch.Concurrency)
	assert.Equal(t, 1.0, cli.Batch.Rate)
}
