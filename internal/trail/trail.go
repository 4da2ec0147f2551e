// Package trail counts hiking trails on a topographic height map.
//
// A trail starts at a height-0 cell (a trailhead), moves orthogonally and
// climbs exactly one unit per step until it reaches a height-9 cell (a
// summit). Two metrics are derived per trailhead and summed over all heads:
//
//   - Score:  the number of distinct summits reachable from the head.
//   - Rating: the number of distinct trails from the head to any summit.
//
// Complexity: each head is expanded level by level (height 0 → 9), merging
// path counts per cell, so a head costs O(W×H) regardless of how many paths
// fan out from it.
package trail

import (
	"github.com/polarkac/advent-of-code/internal/grid"
	"github.com/polarkac/advent-of-code/internal/parse"
)

const (
	// HeadHeight is the height of a trailhead.
	HeadHeight = 0
	// SummitHeight is the height at which a trail ends.
	SummitHeight = 9

	impassable = -1
)

// HeightMap is a parsed topographic map. It is immutable after parsing.
type HeightMap struct {
	area    *grid.Grid
	heights [][]int
	heads   []grid.Position
}

// ParseHeightMap reads rows of digits. A '.' marks an impassable cell.
func ParseHeightMap(text string) (*HeightMap, error) {
	area, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	hm := &HeightMap{
		area:    area,
		heights: make([][]int, area.Height()),
	}
	for y := range hm.heights {
		hm.heights[y] = make([]int, area.Width())
	}
	var bad *parse.Error
	area.Each(func(p grid.Position, c byte) {
		switch {
		case c >= '0' && c <= '9':
			h := int(c - '0')
			hm.heights[p.Row][p.Col] = h
			if h == HeadHeight {
				hm.heads = append(hm.heads, p)
			}
		case c == '.':
			hm.heights[p.Row][p.Col] = impassable
		default:
			if bad == nil {
				bad = parse.Errorf(p.Row+1, "unexpected height %q at column %d", c, p.Col+1)
			}
		}
	})
	if bad != nil {
		return nil, bad
	}
	return hm, nil
}

// Heads returns the trailheads in row-major order.
func (hm *HeightMap) Heads() []grid.Position {
	return hm.heads
}

// Height returns the height at p, or ok == false for out-of-range or
// impassable cells.
func (hm *HeightMap) Height(p grid.Position) (h int, ok bool) {
	if !hm.area.InBounds(p) {
		return 0, false
	}
	h = hm.heights[p.Row][p.Col]
	return h, h != impassable
}

// Summits returns every summit reachable from head mapped to the number of
// distinct trails that reach it. A head that is not at HeadHeight yields an
// empty map.
func (hm *HeightMap) Summits(head grid.Position) map[grid.Position]int {
	if h, ok := hm.Height(head); !ok || h != HeadHeight {
		return map[grid.Position]int{}
	}
	level := map[grid.Position]int{head: 1}
	for h := HeadHeight; h < SummitHeight; h++ {
		next := make(map[grid.Position]int)
		for p, paths := range level {
			for _, n := range hm.area.Neighbors(p) {
				if nh, ok := hm.Height(n); ok && nh == h+1 {
					next[n] += paths
				}
			}
		}
		if len(next) == 0 {
			return next
		}
		level = next
	}
	return level
}

// Score sums, over all heads, the number of distinct reachable summits.
func (hm *HeightMap) Score() int {
	total := 0
	for _, head := range hm.heads {
		total += len(hm.Summits(head))
	}
	return total
}

// Rating sums, over all heads, the number of distinct trails to any summit.
func (hm *HeightMap) Rating() int {
	total := 0
	for _, head := range hm.heads {
		for _, paths := range hm.Summits(head) {
			total += paths
		}
	}
	return total
}
