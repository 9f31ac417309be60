// Package report reads the eight-record description of two points and six
// solids, and evaluates the fixed list of comparisons printed for it.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akmonengine/solids/shape"
)

// ErrFieldCount is wrapped by a ParseError when a record has the wrong number of values
var ErrFieldCount = errors.New("wrong number of fields")

// Input holds the solids a report compares
type Input struct {
	P, Q             shape.Point
	SphereA, SphereB shape.Sphere
	CubeA, CubeB     shape.Cube
	CylA, CylB       shape.Cylinder
}

// ParseError locates a malformed record.
// Line is 0 when the input ended before the record.
type ParseError struct {
	Record string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("record %s: %v", e.Record, e.Err)
	}
	return fmt.Sprintf("record %s (line %d): %v", e.Record, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// record describes one input line: its name, value count, and where the values go
type record struct {
	name   string
	fields int
	assign func(in *Input, v []float64)
}

var records = []record{
	{"p", 3, func(in *Input, v []float64) { in.P = shape.NewPoint(v[0], v[1], v[2]) }},
	{"q", 3, func(in *Input, v []float64) { in.Q = shape.NewPoint(v[0], v[1], v[2]) }},
	{"sphereA", 4, func(in *Input, v []float64) { in.SphereA = shape.NewSphere(v[0], v[1], v[2], v[3]) }},
	{"sphereB", 4, func(in *Input, v []float64) { in.SphereB = shape.NewSphere(v[0], v[1], v[2], v[3]) }},
	{"cubeA", 4, func(in *Input, v []float64) { in.CubeA = shape.NewCube(v[0], v[1], v[2], v[3]) }},
	{"cubeB", 4, func(in *Input, v []float64) { in.CubeB = shape.NewCube(v[0], v[1], v[2], v[3]) }},
	{"cylA", 5, func(in *Input, v []float64) { in.CylA = shape.NewCylinder(v[0], v[1], v[2], v[3], v[4]) }},
	{"cylB", 5, func(in *Input, v []float64) { in.CylB = shape.NewCylinder(v[0], v[1], v[2], v[3], v[4]) }},
}

// Parse reads the eight records from r: points p and q, spheres A and B,
// cubes A and B, cylinders A and B. Values are separated by whitespace and
// blank lines are skipped. Anything after the eighth record is ignored.
// Dimensions are not validated.
func Parse(r io.Reader) (Input, error) {
	var in Input

	scanner := bufio.NewScanner(r)
	line := 0
	next := 0
	for next < len(records) && scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		rec := records[next]
		if len(fields) != rec.fields {
			return Input{}, &ParseError{
				Record: rec.name,
				Line:   line,
				Err:    fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), rec.fields),
			}
		}

		values := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Input{}, &ParseError{Record: rec.name, Line: line, Err: err}
			}
			values[i] = v
		}
		rec.assign(&in, values)
		next++
	}
	if err := scanner.Err(); err != nil {
		return Input{}, fmt.Errorf("read report input: %w", err)
	}
	if next < len(records) {
		return Input{}, &ParseError{Record: records[next].name, Err: io.ErrUnexpectedEOF}
	}

	return in, nil
}
