package heightgrid

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Parse reads a grid from its plain text form: one row per line,
// whitespace separated samples, "nan" or "-" for invalid cells.
// Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for i, f := range fields {
			if f == "-" {
				row[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}

	return FromRows(rows)
}

// Load reads a grid from a text file.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Format writes g in the form accepted by Parse.
func Format(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for r := range g.rows {
		for c := range g.cols {
			if c > 0 {
				bw.WriteByte(' ')
			}
			v, ok := g.At(r, c)
			if !ok {
				bw.WriteString("nan")
				continue
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
