// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// npyMagic prefixes every NumPy .npy file.
var npyMagic = []byte("\x93NUMPY")

// Bounds on a header's declared shape. Embedding widths are a few thousand
// at most; the row cap keeps a lying header from reserving memory up front.
const (
	maxNPYCols     = 1 << 16
	maxNPYBytes    = 1 << 34
	npyRowPrealloc = 4096
)

// ErrEmbeddingShape reports an artifact that cannot be aligned with the catalog.
var ErrEmbeddingShape = errors.New("embedding matrix shape mismatch")

// LoadEmbeddings reads a 2-D float .npy file produced by the offline embedding
// step. A missing file is reported with an error wrapping os.ErrNotExist so
// callers can treat it as "embeddings unavailable".
func LoadEmbeddings(path string, expectedRows int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open embeddings %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := ReadNPY(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read embeddings %s: %w", path, err)
	}
	if len(rows) != expectedRows {
		return nil, fmt.Errorf("%w: %d embedding rows for %d catalog items", ErrEmbeddingShape, len(rows), expectedRows)
	}
	return rows, nil
}

// ReadNPY decodes a little-endian float32 or float64, C-ordered, 2-D array.
func ReadNPY(r io.Reader) ([][]float64, error) {
	magic := make([]byte, len(npyMagic)+2)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("npy preamble: %w", err)
	}
	if !bytes.Equal(magic[:len(npyMagic)], npyMagic) {
		return nil, errors.New("not an npy file")
	}

	var headerLen int
	switch major := magic[len(npyMagic)]; major {
	case 1:
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("npy header length: %w", err)
		}
		headerLen = int(n)
	case 2, 3:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("npy header length: %w", err)
		}
		headerLen = int(n)
	default:
		return nil, fmt.Errorf("unsupported npy version %d", major)
	}

	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("npy header: %w", err)
	}
	h, err := parseNPYHeader(string(header))
	if err != nil {
		return nil, err
	}

	// grow as rows arrive; a short body fails before the declared size is reserved
	out := make([][]float64, 0, min(h.rows, npyRowPrealloc))
	buf := make([]byte, h.cols*h.width)
	for i := 0; i < h.rows; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("npy row %d: %w", i, err)
		}
		row := make([]float64, h.cols)
		for j := range row {
			off := j * h.width
			if h.width == 4 {
				row[j] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])))
			} else {
				row[j] = math.Float64frombits(binary.LittleEndian.Uint64(buf[off:]))
			}
		}
		out = append(out, row)
	}
	return out, nil
}

type npyHeader struct {
	width int
	rows  int
	cols  int
}

// parseNPYHeader reads the Python dict literal, e.g.
// {'descr': '<f4', 'fortran_order': False, 'shape': (3, 768), }
func parseNPYHeader(s string) (npyHeader, error) {
	var h npyHeader

	descr, err := dictValue(s, "descr")
	if err != nil {
		return h, err
	}
	switch strings.Trim(descr, `'"`) {
	case "<f4", "=f4":
		h.width = 4
	case "<f8", "=f8":
		h.width = 8
	default:
		return h, fmt.Errorf("unsupported npy dtype %s", descr)
	}

	order, err := dictValue(s, "fortran_order")
	if err != nil {
		return h, err
	}
	if order != "False" {
		return h, errors.New("fortran-ordered npy arrays are not supported")
	}

	shape, err := dictValue(s, "shape")
	if err != nil {
		return h, err
	}
	dims := strings.FieldsFunc(strings.Trim(shape, "()"), func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(dims) != 2 {
		return h, fmt.Errorf("%w: expected 2-D array, got shape %s", ErrEmbeddingShape, shape)
	}
	if h.rows, err = strconv.Atoi(dims[0]); err != nil {
		return h, fmt.Errorf("npy shape: %w", err)
	}
	if h.cols, err = strconv.Atoi(dims[1]); err != nil {
		return h, fmt.Errorf("npy shape: %w", err)
	}
	if h.rows <= 0 || h.cols <= 0 || h.cols > maxNPYCols {
		return h, fmt.Errorf("%w: unusable shape %s", ErrEmbeddingShape, shape)
	}
	if h.rows > maxNPYBytes/(h.cols*h.width) {
		return h, fmt.Errorf("%w: shape %s exceeds %d bytes", ErrEmbeddingShape, shape, int64(maxNPYBytes))
	}
	return h, nil
}

// dictValue extracts the raw value text following 'key': in the header.
func dictValue(s, key string) (string, error) {
	marker := "'" + key + "':"
	i := strings.Index(s, marker)
	if i < 0 {
		return "", fmt.Errorf("npy header missing %s", key)
	}
	rest := strings.TrimSpace(s[i+len(marker):])
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return "", fmt.Errorf("npy header: unterminated %s", key)
		}
		return rest[:end+1], nil
	}
	end := strings.IndexAny(rest, ",}")
	if end < 0 {
		return "", fmt.Errorf("npy header: unterminated %s", key)
	}
	return strings.TrimSpace(rest[:end]), nil
}
