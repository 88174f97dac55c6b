package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuannh982/segment-decoder/config"
	"github.com/tuannh982/segment-decoder/segment"
	"github.com/tuannh982/segment-decoder/segment/input"
)

const sample = `be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
edbfga begcd cbg gc gcadebf fbgde acbgfd abcde gfcbed gfec | fcgedb cgb dgebacf gc
fgaebd cg bdaec gdafb agbcfd gdcbef bgcad gfac gcb cdgabef | cg cg fdcagb cbg
fbegcd cbd adcefb dageb afcb bc aefdc ecdab fgdeca fcdbega | efabcd cedba gadfec cb
aecbfdg fbg gf bafeg dbefa fcge gcbea fcaegb dgceab fcbdga | gecf egdcabf bgf bfgea
fgeab ca afcebg bdacfeg cfaedg gcfdb baec bfadeg bafgc acf | gebdcfa ecba ca fadegcb
dbcfg fgd bdegcaf fgec aegbdf ecdfab fbedc dacgb gdcebf gf | cefg dcbef fcge gbcadfe
bdfegc cbegaf gecbf dfcage bdacg ed bedf ced adcbefg gebcd | ed bcgafe cdgba cbgef
egadfb cdbfeg cegd fecab cgb gbdefca cg fgcdab egfdb bfceg | gbdfcae bgc cg cgb
gcafb gcf dcaebfg ecagb gf abcdeg gaef cafbge fdbac fegbdc | fgae cfgab fg bagce
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveFromStdin(t *testing.T) {
	out, err := run(t, sample, "solve")
	require.Nil(t, err)
	require.Equal(t, "26\n61229\n", out)
}

func TestCountAndSumFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.Nil(t, os.WriteFile(path, []byte(sample), 0600))

	out, err := run(t, "", "count", path)
	require.Nil(t, err)
	require.Equal(t, "26\n", out)

	out, err = run(t, "", "sum", "--workers", "4", "--strict", path)
	require.Nil(t, err)
	require.Equal(t, "61229\n", out)
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cagedb ab dab acedgfb\n", "decode", "-")
	require.Nil(t, err)
	require.Equal(t, "0178\n", out)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, sample, "sum", "--workers", "0")
	require.ErrorIs(t, err, config.ErrInvalidWorkers)

	_, err = run(t, "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb a\n", "sum")
	require.ErrorIs(t, err, input.ErrInvalidTokenLength)

	// anchors ef and abcd leave abcdg matching no overlap rule
	_, err = run(t, "ef abcd abc abcdefg abcde abcdf abcdg abcdef abcdeg abcdfg | abcdg abcdg abcdg abcdg\n", "sum")
	require.ErrorIs(t, err, segment.ErrAmbiguousSignal)
	require.Contains(t, err.Error(), "line 1")

	_, err = run(t, "ab cd abc abcdefg abcde abcdf abcdg abcdef abcdeg abcdfg | abcdg abcdg abcdg abcdg\n", "sum")
	require.ErrorIs(t, err, segment.ErrMissingAnchor)

	_, err = run(t, "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdfeb\nnot an entry\n", "count")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "line 2")

	_, err = run(t, "", "count", filepath.Join(t.TempDir(), "missing.txt"))
	require.NotNil(t, err)
}
