package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tesseract/maze"
	"github.com/katalvlaran/tesseract/prize"
)

// Descriptor is the on-disk form of a maze problem. JSON is accepted as well,
// being a subset of YAML.
//
//	dimensions: [x, y]
//	size: 3
//	spaces:
//	  - {x: 0, y: 0, moves: xy}
//	  - {x: 1, moves: y}        # y defaults to 0
//	start: "(0, 0)"
//	end: "(1, 1)"
//	prizes:
//	  "(0, 2)": 5
type Descriptor struct {
	Dimensions []string       `yaml:"dimensions"`
	Size       int            `yaml:"size"`
	Spaces     []Space        `yaml:"spaces"`
	Start      string         `yaml:"start"`
	End        string         `yaml:"end"`
	Prizes     map[string]int `yaml:"prizes,omitempty"`
}

// Space is one cell entry. Omitted axes default to 0.
type Space struct {
	X     *int   `yaml:"x,omitempty"`
	Y     *int   `yaml:"y,omitempty"`
	Z     *int   `yaml:"z,omitempty"`
	W     *int   `yaml:"w,omitempty"`
	Moves string `yaml:"moves"`
}

// Coord returns the cell's coordinate with omitted axes set to 0.
func (s Space) Coord() maze.Coord {
	var c maze.Coord
	for i, v := range [maze.Dimensions]*int{s.X, s.Y, s.Z, s.W} {
		if v != nil {
			c[i] = *v
		}
	}

	return c
}

// Decode reads one descriptor from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Descriptor, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Descriptor
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrBadDescriptor)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDescriptor, err)
	}

	return &d, nil
}

// LoadFile opens and decodes the descriptor at path.
func LoadFile(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return d, nil
}

// Labels returns the dimension names padded with empty labels to four.
func (d *Descriptor) Labels() ([]string, error) {
	if len(d.Dimensions) < 1 || len(d.Dimensions) > maze.Dimensions {
		return nil, fmt.Errorf("%w: %d dimensions declared", maze.ErrDimensionMismatch, len(d.Dimensions))
	}
	labels := make([]string, maze.Dimensions)
	for i, l := range d.Dimensions {
		if l == "" {
			return nil, fmt.Errorf("%w: dimension %d has no name", ErrBadDescriptor, i)
		}
		labels[i] = l
	}

	return labels, nil
}

// Maze builds the maze the descriptor describes.
func (d *Descriptor) Maze() (*maze.Maze, error) {
	labels, err := d.Labels()
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	cells := make([]maze.CellSpec, 0, len(d.Spaces))
	for i, s := range d.Spaces {
		c := s.Coord()
		for axis := len(d.Dimensions); axis < maze.Dimensions; axis++ {
			if c[axis] != 0 {
				return nil, fmt.Errorf("%w: space %d sets undeclared axis %d", ErrBadDescriptor, i, axis)
			}
		}
		// Undeclared axes hold only 0, so any move along one leaves the grid.
		// Unknown symbols are left for maze.Build to report.
		for j := 0; j < len(s.Moves); j++ {
			axis, _, err := maze.Decode(maze.Move(s.Moves[j]))
			if err == nil && axis >= len(d.Dimensions) {
				return nil, fmt.Errorf("loader: space %d move %q on undeclared axis %d: %w",
					i, s.Moves[j], axis, maze.ErrMoveLeavesGrid)
			}
		}
		cells = append(cells, maze.CellSpec{At: c, Moves: s.Moves})
	}

	m, err := maze.Build(labels, d.Size, cells)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	return m, nil
}

// Endpoints parses the start and end coordinates.
func (d *Descriptor) Endpoints() (from, to maze.Coord, err error) {
	if from, err = d.coord("start", d.Start); err != nil {
		return from, to, err
	}
	to, err = d.coord("end", d.End)

	return from, to, err
}

// PrizeList parses the prize table, ordered by coordinate.
func (d *Descriptor) PrizeList() ([]prize.Prize, error) {
	out := make([]prize.Prize, 0, len(d.Prizes))
	seen := make(map[maze.Coord]string, len(d.Prizes))
	for text, points := range d.Prizes {
		c, err := d.coord("prize", text)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: prizes %q and %q name the same cell", ErrBadDescriptor, prev, text)
		}
		seen[c] = text
		out = append(out, prize.Prize{At: c, Points: points})
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i].At, out[j].At) })

	return out, nil
}

// coord parses one tuple field, which may not name more axes than declared.
func (d *Descriptor) coord(field, text string) (maze.Coord, error) {
	if text == "" {
		return maze.Coord{}, fmt.Errorf("%w: %s is missing", ErrBadDescriptor, field)
	}
	c, n, err := parseTuple(text)
	if err != nil {
		return c, fmt.Errorf("loader: %s: %w", field, err)
	}
	if len(d.Dimensions) > 0 && n > len(d.Dimensions) {
		return c, fmt.Errorf("%w: %s %q has %d components for %d dimensions",
			ErrBadTuple, field, text, n, len(d.Dimensions))
	}

	return c, nil
}

func less(a, b maze.Coord) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// Encode writes d to w as YAML.
func (d *Descriptor) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}

	return enc.Close()
}

// FormatTuple writes the first n components of c as "(a, b, ...)", the
// inverse of ParseTuple for coordinates whose remaining axes are 0.
func FormatTuple(c maze.Coord, n int) string {
	if n < 1 || n > maze.Dimensions {
		n = maze.Dimensions
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(c[i]))
	}
	sb.WriteByte(')')

	return sb.String()
}

// NewDescriptor describes an existing set of cells, the inverse of Maze.
// Only the first len(dimensions) axes are written for each space.
func NewDescriptor(dimensions []string, size int, cells []maze.CellSpec, from, to maze.Coord, prizes []prize.Prize) *Descriptor {
	n := len(dimensions)
	d := &Descriptor{
		Dimensions: append([]string(nil), dimensions...),
		Size:       size,
		Spaces:     make([]Space, 0, len(cells)),
		Start:      FormatTuple(from, n),
		End:        FormatTuple(to, n),
	}
	for _, c := range cells {
		s := Space{Moves: c.Moves}
		axes := [maze.Dimensions]**int{&s.X, &s.Y, &s.Z, &s.W}
		for i := 0; i < n && i < maze.Dimensions; i++ {
			v := c.At[i]
			*axes[i] = &v
		}
		d.Spaces = append(d.Spaces, s)
	}
	if len(prizes) > 0 {
		d.Prizes = make(map[string]int, len(prizes))
		for _, p := range prizes {
			d.Prizes[FormatTuple(p.At, n)] = p.Points
		}
	}

	return d
}
