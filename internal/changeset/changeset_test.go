package changeset

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metailurini/dictionary"
)

func TestParse(t *testing.T) {
	input := `
# cats
put macavity the mystery cat
set gus 3
get gus
remove gus
del nobody
clear
dump
`
	ops, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ops, 7)

	assert.Equal(t, Op{Kind: Put, Key: "macavity", Value: "the mystery cat", Line: 3}, ops[0])
	assert.Equal(t, Op{Kind: Put, Key: "gus", Value: "3", Line: 4}, ops[1])
	assert.Equal(t, Get, ops[2].Kind)
	assert.Equal(t, Remove, ops[3].Kind)
	assert.Equal(t, "nobody", ops[4].Key)
	assert.Equal(t, Clear, ops[5].Kind)
	assert.Equal(t, Dump, ops[6].Kind)
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"put onlykey",
		"remove",
		"get a b",
		"clear now",
		"dump all",
		"upsert a b",
	} {
		_, err := Parse(strings.NewReader("put ok 1\n" + input))
		require.Error(t, err, input)
		assert.Contains(t, err.Error(), "line 2", input)
	}
}

func TestApply(t *testing.T) {
	for _, backing := range []dictionary.Backing{dictionary.TreeBacking, dictionary.ListBacking} {
		t.Run(backing.String(), func(t *testing.T) {
			ops, err := Parse(strings.NewReader(`
put 3 c
put 1 a
put 5 e
put 2 b
get 2
get 9
remove 5
remove 5
dump
`))
			require.NoError(t, err)

			var out bytes.Buffer
			d := dictionary.New[string, string](dictionary.Natural[string](), dictionary.WithBacking(backing))
			stats, err := Apply(context.Background(), d, ops, Options{
				Out:           &out,
				Log:           zerolog.Nop(),
				ProgressEvery: 2,
			})
			require.NoError(t, err)

			assert.Equal(t, 9, stats.Applied)
			assert.Equal(t, 2, stats.Misses)
			assert.Equal(t, "2\tb\n9\t<missing>\n1\ta\n2\tb\n3\tc\n", out.String())
			assert.Equal(t, 3, d.Len())
		})
	}
}

func TestApplyStrict(t *testing.T) {
	ops, err := Parse(strings.NewReader("put a 1\nremove b\nput c 3\n"))
	require.NoError(t, err)

	d := dictionary.New[string, string](dictionary.Natural[string]())
	stats, err := Apply(context.Background(), d, ops, Options{Strict: true, Log: zerolog.Nop()})
	require.ErrorIs(t, err, dictionary.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, stats.Applied)
	assert.Equal(t, 1, d.Len())
}

func TestApplyStopsOnCancel(t *testing.T) {
	ops, err := Parse(strings.NewReader("put a 1\nput b 2\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := dictionary.New[string, string](dictionary.Natural[string]())
	stats, err := Apply(ctx, d, ops, Options{Log: zerolog.Nop()})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, stats.Applied)
	assert.True(t, d.IsEmpty())
}

func TestApplyClear(t *testing.T) {
	ops, err := Parse(strings.NewReader("put a 1\nput b 2\nclear\nput c 3\ndump\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	d := dictionary.New[string, string](dictionary.Natural[string]())
	_, err = Apply(context.Background(), d, ops, Options{Out: &out, Log: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, "c\t3\n", out.String())
}
