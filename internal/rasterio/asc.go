// Package rasterio reads and writes the ESRI ASCII grid ("*.asc") format,
// the one concrete raster file format cmd/fuzzykappa needs to turn a path
// on disk into a raster.Raster the algorithmic core can consume.
//
// Grounded on the ESRI ASCII grid header fields (ncols, nrows, xllcorner,
// yllcorner, cellsize, NODATA_value) used by EsriASCIIRaster in the
// retrieved example pack. This package is ambient CLI plumbing: the
// distance and fuzzykappa packages never import it, only cmd/fuzzykappa
// does.
package rasterio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jeffrey-newman/raster-tools/raster"
)

// Header holds the six ESRI ASCII grid header fields.
type Header struct {
	NCols, NRows       int
	XLLCorner, YLLCorner float64
	CellSize           float64
	NoDataValue        int
}

// Grid is a parsed ESRI ASCII grid: its header plus the integer-valued
// category raster and a mask raster (0 where the cell equals NoDataValue,
// 1 elsewhere).
type Grid struct {
	Header Header
	Values *raster.Dense[int]
	Mask   *raster.Dense[int]
}

// ReadASC parses the ESRI ASCII grid at path.
func ReadASC(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rasterio: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	h, err := readHeader(sc)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: %w", path, err)
	}

	values, err := raster.NewDense[int](h.NRows, h.NCols)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: %w", path, err)
	}
	mask, err := raster.NewDense[int](h.NRows, h.NCols)
	if err != nil {
		return nil, fmt.Errorf("rasterio: %s: %w", path, err)
	}

	for r := 0; r < h.NRows; r++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("rasterio: %s: row %d: %w", path, r, io.ErrUnexpectedEOF)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != h.NCols {
			return nil, fmt.Errorf("rasterio: %s: row %d: expected %d values, got %d", path, r, h.NCols, len(fields))
		}
		for c, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("rasterio: %s: row %d col %d: %w", path, r, c, err)
			}
			values.Set(r, c, v)
			if v == h.NoDataValue {
				mask.Set(r, c, 0)
			} else {
				mask.Set(r, c, 1)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rasterio: %s: %w", path, err)
	}

	return &Grid{Header: h, Values: values, Mask: mask}, nil
}

func readHeader(sc *bufio.Scanner) (Header, error) {
	var h Header
	fields := map[string]*int{
		"ncols":     &h.NCols,
		"nrows":     &h.NRows,
		"nodata_value": &h.NoDataValue,
	}
	floatFields := map[string]*float64{
		"xllcorner": &h.XLLCorner,
		"yllcorner": &h.YLLCorner,
		"cellsize":  &h.CellSize,
	}

	for i := 0; i < 6; i++ {
		if !sc.Scan() {
			return h, fmt.Errorf("unexpected end of header at line %d", i+1)
		}
		parts := strings.Fields(sc.Text())
		if len(parts) != 2 {
			return h, fmt.Errorf("malformed header line %q", sc.Text())
		}
		key := strings.ToLower(parts[0])
		if p, ok := fields[key]; ok {
			v, err := strconv.Atoi(parts[1])
			if err != nil {
				return h, fmt.Errorf("header field %s: %w", key, err)
			}
			*p = v
			continue
		}
		if p, ok := floatFields[key]; ok {
			v, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return h, fmt.Errorf("header field %s: %w", key, err)
			}
			*p = v
			continue
		}

		return h, fmt.Errorf("unknown header field %q", parts[0])
	}

	return h, nil
}

// WriteASC writes a float64 raster to path in ESRI ASCII grid format, using
// the given header's spatial fields (NCols/NRows are taken from values, not
// h, so they always match the raster being written).
func WriteASC(path string, values *raster.Dense[float64], h Header, noData float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rasterio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "ncols %d\n", values.Cols())
	fmt.Fprintf(w, "nrows %d\n", values.Rows())
	fmt.Fprintf(w, "xllcorner %g\n", h.XLLCorner)
	fmt.Fprintf(w, "yllcorner %g\n", h.YLLCorner)
	fmt.Fprintf(w, "cellsize %g\n", h.CellSize)
	fmt.Fprintf(w, "NODATA_value %g\n", noData)

	for r := 0; r < values.Rows(); r++ {
		for c := 0; c < values.Cols(); c++ {
			if c > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%g", values.At(r, c))
		}
		w.WriteByte('\n')
	}

	return w.Flush()
}
