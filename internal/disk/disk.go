// Package disk compacts a run-length encoded disk layout and computes its
// filesystem checksum.
//
// The dense format alternates file lengths and free-space lengths, one digit
// each: "12345" is a 1-block file, 2 free blocks, a 3-block file, 4 free
// blocks and a 5-block file. Files are numbered in order of appearance.
package disk

import (
	"strconv"
	"strings"

	"github.com/polarkac/advent-of-code/internal/parse"
)

// Block is one disk block: either a block of the file with a given id or
// free space.
type Block int

// Space is a free block.
const Space Block = -1

// File returns a block owned by the file with the given id.
func File(id int) Block {
	return Block(id)
}

// IsSpace reports whether b is free space.
func (b Block) IsSpace() bool {
	return b < 0
}

// FileID returns the owning file id, or ok == false for free space.
func (b Block) FileID() (id int, ok bool) {
	if b.IsSpace() {
		return 0, false
	}
	return int(b), true
}

// Disk is an expanded block sequence.
type Disk struct {
	blocks []Block
}

// ParseDiskMap expands the dense digit format into individual blocks.
func ParseDiskMap(text string) (*Disk, error) {
	lines := parse.Lines(text)
	if len(lines) == 0 {
		return nil, parse.Errorf(0, "empty disk map")
	}
	if len(lines) > 1 {
		return nil, parse.Errorf(2, "disk map must be a single line")
	}
	dense := lines[0]
	d := &Disk{}
	nextID := 0
	for i := 0; i < len(dense); i++ {
		c := dense[i]
		if c < '0' || c > '9' {
			return nil, parse.Errorf(1, "unexpected character %q at column %d", c, i+1)
		}
		block := Space
		if i%2 == 0 {
			block = File(nextID)
			nextID++
		}
		for n := int(c - '0'); n > 0; n-- {
			d.blocks = append(d.blocks, block)
		}
	}
	return d, nil
}

// Blocks returns the current block sequence.
func (d *Disk) Blocks() []Block {
	return d.blocks
}

// Compact moves file blocks one at a time from the end of the disk into the
// leftmost free block until no free block precedes a file block.
//
// Runs in O(n) in the number of blocks and works in place; compacting an
// already compact disk is a no-op.
func (d *Disk) Compact() {
	head, tail := 0, len(d.blocks)-1
	for {
		for head < tail && !d.blocks[head].IsSpace() {
			head++
		}
		for head < tail && d.blocks[tail].IsSpace() {
			tail--
		}
		if head >= tail {
			return
		}
		d.blocks[head], d.blocks[tail] = d.blocks[tail], d.blocks[head]
		head++
		tail--
	}
}

// Compacted reports whether no free block precedes a file block.
func (d *Disk) Compacted() bool {
	seenSpace := false
	for _, b := range d.blocks {
		if b.IsSpace() {
			seenSpace = true
		} else if seenSpace {
			return false
		}
	}
	return true
}

// Checksum sums position × file id over every file block.
func (d *Disk) Checksum() int {
	sum := 0
	for i, b := range d.blocks {
		if id, ok := b.FileID(); ok {
			sum += i * id
		}
	}
	return sum
}

// String renders file blocks as their decimal id and free blocks as '.'.
func (d *Disk) String() string {
	var sb strings.Builder
	for _, b := range d.blocks {
		if id, ok := b.FileID(); ok {
			sb.WriteString(strconv.Itoa(id))
			continue
		}
		sb.WriteByte('.')
	}
	return sb.String()
}
