package year24

import (
	"math/bits"
	"regexp"
	"strconv"

	"github.com/polarkac/advent-of-code/internal/parse"
)

var instruction = regexp.MustCompile(`mul\((\d+),(\d+)\)|do\(\)|don't\(\)`)

// Day03Part1 sums the products of every well-formed mul instruction.
func Day03Part1(input string) (string, error) {
	return scanMemory(input, false)
}

// Day03Part2 is Day03Part1 honouring do() and don't() toggles.
func Day03Part2(input string) (string, error) {
	return scanMemory(input, true)
}

func scanMemory(input string, conditional bool) (string, error) {
	enabled := true
	var total uint64
	for _, m := range instruction.FindAllStringSubmatch(input, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if conditional && !enabled {
				continue
			}
			a, err := parse.Uint64(0, m[1])
			if err != nil {
				return "", err
			}
			b, err := parse.Uint64(0, m[2])
			if err != nil {
				return "", err
			}
			hi, product := bits.Mul64(a, b)
			sum, carry := bits.Add64(total, product, 0)
			if hi != 0 || carry != 0 {
				return "", parse.Errorf(0, "%s overflows 64 bits", m[0])
			}
			total = sum
		}
	}
	return strconv.FormatUint(total, 10), nil
}
