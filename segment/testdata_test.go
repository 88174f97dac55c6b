package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuannh982/segment-decoder/segment/commons"
	"github.com/tuannh982/segment-decoder/segment/input"
)

const sampleEntries = `
be cfbegad cbdgef fgaecd cgeb fdcge agebfd fecdb fabcd edb | fdgacbe cefdb cefbgd gcbe
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

var sampleValues = []int{8394, 9781, 1197, 9361, 4873, 8418, 4548, 1625, 8717, 4315}

const singleEntry = "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf"

func mustParse(t *testing.T, text string) []commons.Entry {
	entries, err := input.Parse(strings.NewReader(text))
	require.Nil(t, err)
	return entries
}

func mustParseLine(t *testing.T, line string) commons.Entry {
	entry, err := input.ParseLine(line)
	require.Nil(t, err)
	return entry
}

func sets(tokens ...string) []commons.SymbolSet {
	arr := make([]commons.SymbolSet, 0, len(tokens))
	for _, tok := range tokens {
		arr = append(arr, commons.MustParseSymbolSet(tok))
	}
	return arr
}
