package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	m "github.com/mouse-blink/cubegen/internal/model"
)

const (
	cubeValuesPerLine = 6
	gzipExt           = ".gz"

	// Header limits; anything larger is treated as a corrupt file.
	maxCubeAtoms  = 1 << 20
	maxCubePoints = math.MaxInt32
	cubePrealloc  = 1 << 16
)

// CubeStore writes and reads Gaussian cube files. Paths ending in .gz are
// gzip compressed.
type CubeStore interface {
	Write(path m.Path, cube m.Cube) error
	Read(path m.Path) (m.Cube, error)
	ReadHeader(path m.Path) (m.CubeHeader, error)
}

// LocalCubeStore implements CubeStore on the local filesystem.
type LocalCubeStore struct{}

// NewCubeStore constructs a CubeStore implementation.
func NewCubeStore() CubeStore {
	return &LocalCubeStore{}
}

// Write creates or truncates path and writes the cube. A failure part way
// leaves a truncated file behind.
func (cs *LocalCubeStore) Write(path m.Path, cube m.Cube) error {
	h := cube.Header
	if h.Nx <= 0 || h.Ny <= 0 || h.Nz <= 0 || len(cube.Values) != h.Nx*h.Ny*h.Nz {
		return &OpError{Op: "cube.write", Path: string(path), Err: fmt.Errorf("%w: %d values for grid (%d,%d,%d)",
			m.ErrShapeMismatch, len(cube.Values), h.Nx, h.Ny, h.Nz)}
	}

	f, err := os.Create(string(path))
	if err != nil {
		return &OpError{Op: "cube.write", Path: string(path), Err: errors.Join(ErrWrite, err)}
	}

	var out io.Writer = f

	var zw *gzip.Writer
	if strings.HasSuffix(string(path), gzipExt) {
		zw = gzip.NewWriter(f)
		out = zw
	}

	bw := bufio.NewWriter(out)

	err = encodeCube(bw, cube)
	if err == nil {
		err = bw.Flush()
	}

	if zw != nil {
		if cerr := zw.Close(); err == nil {
			err = cerr
		}
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return &OpError{Op: "cube.write", Path: string(path), Err: errors.Join(ErrWrite, err)}
	}

	return nil
}

// Read parses a complete cube file.
func (cs *LocalCubeStore) Read(path m.Path) (m.Cube, error) {
	var cube m.Cube

	err := cs.withReader(path, func(r *bufio.Reader) error {
		header, err := decodeHeader(r)
		if err != nil {
			return err
		}

		values, err := decodeBody(r, header.Nx*header.Ny*header.Nz)
		if err != nil {
			return err
		}

		cube = m.Cube{Header: header, Values: values}

		return nil
	})
	if err != nil {
		return m.Cube{}, &OpError{Op: "cube.read", Path: string(path), Err: err}
	}

	return cube, nil
}

// ReadHeader parses only the header of a cube file.
func (cs *LocalCubeStore) ReadHeader(path m.Path) (m.CubeHeader, error) {
	var header m.CubeHeader

	err := cs.withReader(path, func(r *bufio.Reader) error {
		var err error
		header, err = decodeHeader(r)

		return err
	})
	if err != nil {
		return m.CubeHeader{}, &OpError{Op: "cube.read_header", Path: string(path), Err: err}
	}

	return header, nil
}

func (cs *LocalCubeStore) withReader(path m.Path, fn func(r *bufio.Reader) error) error {
	f, err := os.Open(string(path))
	if err != nil {
		return err
	}
	defer f.Close()

	var in io.Reader = f

	if strings.HasSuffix(string(path), gzipExt) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer zr.Close()

		in = zr
	}

	return fn(bufio.NewReader(in))
}

func encodeCube(w *bufio.Writer, cube m.Cube) error {
	h := cube.Header

	if _, err := fmt.Fprintf(w, "%s\n%s\n", singleLine(h.Comment), singleLine(h.Identifier)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f\n", len(h.Atoms), h.Origin[0], h.Origin[1], h.Origin[2]); err != nil {
		return err
	}

	counts := [3]int{h.Nx, h.Ny, h.Nz}
	for axis, n := range counts {
		v := h.Voxel[axis]
		if _, err := fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f\n", n, v[0], v[1], v[2]); err != nil {
			return err
		}
	}

	for _, atom := range h.Atoms {
		p := atom.Position
		if _, err := fmt.Fprintf(w, "%5d%12.6f%12.6f%12.6f%12.6f\n", atom.Z, atom.Charge, p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	// x outermost, z innermost; each (x, y) column is split into records of six.
	for start := 0; start < len(cube.Values); start += h.Nz {
		column := cube.Values[start : start+h.Nz]
		for i, v := range column {
			if _, err := fmt.Fprintf(w, "%13.5E", v); err != nil {
				return err
			}

			if (i+1)%cubeValuesPerLine == 0 || i == len(column)-1 {
				if err := w.WriteByte('\n'); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))

	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCube, err)
		}

		out[i] = v
	}

	return out, nil
}

// countLine parses "<int> <x> <y> <z> [...]".
func countLine(r *bufio.Reader, what string) (int, m.Vec3, error) {
	line, err := readLine(r)
	if err != nil {
		return 0, m.Vec3{}, fmt.Errorf("%w: missing %s line: %v", ErrMalformedCube, what, err)
	}

	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, m.Vec3{}, fmt.Errorf("%w: %s line %q", ErrMalformedCube, what, line)
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, m.Vec3{}, fmt.Errorf("%w: %s count %q", ErrMalformedCube, what, fields[0])
	}

	vals, err := parseFloats(fields[1:4])
	if err != nil {
		return 0, m.Vec3{}, err
	}

	return n, m.Vec3{vals[0], vals[1], vals[2]}, nil
}

func decodeHeader(r *bufio.Reader) (m.CubeHeader, error) {
	var h m.CubeHeader

	var err error
	if h.Comment, err = readLine(r); err != nil {
		return h, fmt.Errorf("%w: missing comment line", ErrMalformedCube)
	}

	if h.Identifier, err = readLine(r); err != nil {
		return h, fmt.Errorf("%w: missing second comment line", ErrMalformedCube)
	}

	natm, origin, err := countLine(r, "origin")
	if err != nil {
		return h, err
	}

	h.Origin = origin

	// A negative atom count announces an orbital index line after the atoms.
	hasOrbitalLine := natm < 0
	if hasOrbitalLine {
		natm = -natm
	}

	if natm < 0 || natm > maxCubeAtoms {
		return h, fmt.Errorf("%w: atom count %d", ErrMalformedCube, natm)
	}

	counts := [3]*int{&h.Nx, &h.Ny, &h.Nz}
	for axis := range 3 {
		n, voxel, err := countLine(r, "axis")
		if err != nil {
			return h, err
		}

		// A negative count means the voxel is given in Angstrom.
		if n < 0 {
			n = -n
			voxel = voxel.Scale(1 / m.BohrRadius)
		}

		if n <= 0 || n > maxCubePoints {
			return h, fmt.Errorf("%w: %d points along axis %d", ErrMalformedCube, n, axis)
		}

		*counts[axis] = n
		h.Voxel[axis] = voxel
	}

	if h.Nx > maxCubePoints/h.Ny || h.Nx*h.Ny > maxCubePoints/h.Nz {
		return h, fmt.Errorf("%w: %dx%dx%d grid is too large", ErrMalformedCube, h.Nx, h.Ny, h.Nz)
	}

	h.Atoms = make([]m.Atom, 0, min(natm, cubePrealloc))

	for i := range natm {
		line, err := readLine(r)
		if err != nil {
			return h, fmt.Errorf("%w: missing atom %d", ErrMalformedCube, i)
		}

		fields := strings.Fields(line)
		if len(fields) != 5 {
			return h, fmt.Errorf("%w: atom line %q", ErrMalformedCube, line)
		}

		z, err := strconv.Atoi(fields[0])
		if err != nil {
			return h, fmt.Errorf("%w: atomic number %q", ErrMalformedCube, fields[0])
		}

		vals, err := parseFloats(fields[1:])
		if err != nil {
			return h, err
		}

		h.Atoms = append(h.Atoms, m.Atom{Z: z, Charge: vals[0], Position: m.Vec3{vals[1], vals[2], vals[3]}})
	}

	if hasOrbitalLine {
		if _, err := readLine(r); err != nil {
			return h, fmt.Errorf("%w: missing orbital index line", ErrMalformedCube)
		}
	}

	return h, nil
}

func decodeBody(r *bufio.Reader, want int) ([]float64, error) {
	values := make([]float64, 0, min(want, cubePrealloc))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil && !math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value %q", ErrMalformedCube, sc.Text())
		}

		values = append(values, v)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(values) != want {
		return nil, fmt.Errorf("%w: body has %d values, header declares %d", ErrMalformedCube, len(values), want)
	}

	return values, nil
}
