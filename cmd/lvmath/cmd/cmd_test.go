// SPDX-License-Identifier: MIT

package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/cmd/lvmath/cmd"
	"github.com/katalvlaran/lvmath/config"
	"github.com/katalvlaran/lvmath/factory"
)

// run executes the command tree with args. Output goes to buffers, so it is
// never a terminal and results print as JSON.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestCall(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "call", "linspace", "0", "3", "4")
	require.NoError(t, err)
	assert.JSONEq(t, `{"mathjs":"DenseMatrix","data":[0,1,2,3],"size":[4]}`, out)

	out, _, err = run(t, "call", "--matrix", "Array", "linspace", "0", "3", "7")
	require.NoError(t, err)
	assert.JSONEq(t, `[0,0.5,1,1.5,2,2.5,3]`, out)

	out, _, err = run(t, "--matrix", "Array", "call", "--transform", "range", "1:3")
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, out)

	out, _, err = run(t, "call", "--json", "mean", "1/2", "1/3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"mathjs":"Fraction","n":5,"d":12}`, out)

	out, _, err = run(t, "call", "subset", "[[1,2],[3,4]]", `{"mathjs":"Index","dimensions":[1,0]}`)
	require.NoError(t, err)
	assert.JSONEq(t, `3`, out)
}

func TestCall_NumberAndPrecisionFlags(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "call", "--number", "Fraction", "--matrix", "Array", "range", "0:1/4:1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"mathjs":"Fraction","n":0,"d":1},{"mathjs":"Fraction","n":1,"d":4},{"mathjs":"Fraction","n":1,"d":2},{"mathjs":"Fraction","n":3,"d":4}]`, out)

	out, _, err = run(t, "call", "--number", "BigNumber", "--precision", "20", "max", "0.1", "0.2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"mathjs":"BigNumber","value":"0.2"}`, out)
}

func TestCall_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "call", "nope")
	assert.ErrorIs(t, err, factory.ErrUnknownFunction)

	_, _, err = run(t, "call", "--matrix", "Grid", "linspace", "0", "1", "2")
	assert.ErrorIs(t, err, config.ErrInvalidMatrix)

	_, _, err = run(t, "call")
	assert.Error(t, err)

	_, _, err = run(t, "call", "linspace", "0", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linspace(number, number)")
}

func TestCall_ConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	yml := filepath.Join(dir, "lvmath.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("matrix: Array\n"), 0o600))
	out, _, err := run(t, "--config", yml, "call", "linspace", "0", "1", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `[0,0.5,1]`, out)

	// Flags override the file.
	out, _, err = run(t, "--config", yml, "--matrix", "Matrix", "call", "size", "[1,2,3]")
	require.NoError(t, err)
	assert.JSONEq(t, `{"mathjs":"DenseMatrix","data":[3],"size":[1]}`, out)

	tml := filepath.Join(dir, "lvmath.toml")
	require.NoError(t, os.WriteFile(tml, []byte("number = \"Fraction\"\nmatrix = \"Array\"\n"), 0o600))
	out, _, err = run(t, "--config", tml, "call", "linspace", "0", "1", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"mathjs":"Fraction","n":0,"d":1},{"mathjs":"Fraction","n":1,"d":2},{"mathjs":"Fraction","n":1,"d":1}]`, out)

	_, _, err = run(t, "--config", filepath.Join(dir, "lvmath.ini"), "list")
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestList(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "list")
	require.NoError(t, err)
	var entries []struct {
		Name       string   `json:"name"`
		Signatures []string `json:"signatures"`
		Transform  bool     `json:"transform"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 15)
	assert.Equal(t, "concat", entries[0].Name)
	assert.True(t, entries[0].Transform)

	for _, e := range entries {
		assert.NotEmpty(t, e.Signatures, e.Name)
		if e.Name == "linspace" {
			assert.False(t, e.Transform)
		}
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	_, errOut, err := run(t, "-vv", "call", "size", "4")
	require.NoError(t, err)
	assert.Contains(t, errOut, "factory: namespace built")

	_, errOut, err = run(t, "call", "size", "4")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvmath "+cmd.Version)
}
