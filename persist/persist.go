// SPDX-License-Identifier: MIT

package persist

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/katalvlaran/smallmat/dense"
	"github.com/katalvlaran/smallmat/dtype"
)

// ---------- attribute names ----------

const (
	attrShape     = "shape"
	attrNDim      = "ndim"
	attrPartition = "partition"
	attrTypeStr   = "typestr"
	attrID        = "id"
)

// ---------- error context tags ----------

const (
	ctxWrite    = "Write"
	ctxRead     = "Read"
	ctxReadInto = "ReadInto"
	ctxStat     = "Stat"
)

func persistErrorf(op, path string, err error) error {
	return fmt.Errorf("persist.%s(%q): %w", op, path, err)
}

// Info is the metadata of a stored array.
type Info struct {
	ID        uuid.UUID
	Rows      int
	Cols      int
	NDim      int
	Partition [2]int
	TypeStr   string
}

// Write stores m at path, replacing any existing file.
// MAIN DESCRIPTION:
//   - One dataset with the flat row-major elements plus metadata attributes.
//
// Implementation:
//   - Stage 1: create the file.
//   - Stage 2: write the dataset with shape/ndim/partition/typestr/id attributes.
//   - Stage 3: close, surfacing flush errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the encoded copy.
func Write[T dtype.Float](path string, m *dense.Dense[T], opts ...Option) error {
	o := gatherOptions(opts...)
	rows, cols := m.Shape()
	pr, pc := m.Partition()
	id := uuid.New()
	o.logger.Debug("persist: writing array",
		"path", path, "dataset", o.dataset, "rows", rows, "cols", cols, "typestr", dtype.TypeStr[T]())

	f, err := hdf5.Create(path)
	if err != nil {
		return persistErrorf(ctxWrite, path, err)
	}
	_, err = f.Root().CreateDataset(o.dataset, native(m.Raw()),
		hdf5.WithAttribute(attrShape, []int64{int64(rows), int64(cols)}),
		hdf5.WithAttribute(attrNDim, int64(m.Buffer().NDim)),
		hdf5.WithAttribute(attrPartition, []int64{int64(pr), int64(pc)}),
		hdf5.WithAttribute(attrTypeStr, dtype.TypeStr[T]()),
		hdf5.WithAttribute(attrID, id.String()),
	)
	if err != nil {
		_ = f.Close()
		return persistErrorf(ctxWrite, path, err)
	}
	if err = f.Close(); err != nil {
		return persistErrorf(ctxWrite, path, err)
	}
	o.logger.Info("persist: wrote array", "path", path, "id", id)

	return nil
}

// Read loads the array stored at path into a new Dense carrying the stored partition.
// Errors: ErrNotFound, ErrTypeMismatch, ErrCorrupt.
// Complexity: O(r*c).
func Read[T dtype.Float](path string, opts ...Option) (*dense.Dense[T], error) {
	o := gatherOptions(opts...)
	info, data, err := load[T](path, o, true)
	if err != nil {
		return nil, persistErrorf(ctxRead, path, err)
	}
	m, err := dense.FromSlice(info.Rows, info.Cols, data, dense.WithPartition(info.Partition[0], info.Partition[1]))
	if err != nil {
		return nil, persistErrorf(ctxRead, path, fmt.Errorf("%w: %w", ErrCorrupt, err))
	}
	o.logger.Info("persist: read array", "path", path, "id", info.ID, "rows", info.Rows, "cols", info.Cols)

	return m, nil
}

// ReadInto loads the array stored at path into an existing Dense of the same
// shape and partition. into is left untouched on any error.
// Errors: ErrNotFound, ErrTypeMismatch, ErrCorrupt, ErrShapeMismatch (shape or partition).
// Complexity: O(r*c).
func ReadInto[T dtype.Float](path string, into *dense.Dense[T], opts ...Option) error {
	o := gatherOptions(opts...)
	info, data, err := load[T](path, o, true)
	if err != nil {
		return persistErrorf(ctxReadInto, path, err)
	}
	rows, cols := into.Shape()
	if info.Rows != rows || info.Cols != cols {
		return persistErrorf(ctxReadInto, path,
			fmt.Errorf("stored %dx%d, target %dx%d: %w", info.Rows, info.Cols, rows, cols, ErrShapeMismatch))
	}
	stored, err := dense.FromSlice(info.Rows, info.Cols, data, dense.WithPartition(info.Partition[0], info.Partition[1]))
	if err != nil {
		return persistErrorf(ctxReadInto, path, fmt.Errorf("%w: %w", ErrCorrupt, err))
	}
	spr, spc := stored.Partition()
	pr, pc := into.Partition()
	if spr != pr || spc != pc {
		return persistErrorf(ctxReadInto, path,
			fmt.Errorf("stored partition %dx%d, target %dx%d: %w", spr, spc, pr, pc, ErrShapeMismatch))
	}
	copy(into.Raw(), stored.Raw())
	o.logger.Info("persist: read array into target", "path", path, "id", info.ID)

	return nil
}

// Exists reports whether path holds a readable array under the configured dataset.
func Exists(path string, opts ...Option) bool {
	_, err := Stat(path, opts...)
	return err == nil
}

// Stat returns the stored metadata without reading the elements.
// Errors: ErrNotFound, ErrCorrupt.
func Stat(path string, opts ...Option) (Info, error) {
	o := gatherOptions(opts...)
	info, _, err := load[float64](path, o, false)
	if err != nil {
		return Info{}, persistErrorf(ctxStat, path, err)
	}

	return info, nil
}

// load opens path, decodes the metadata and, when withData is set, the
// elements converted to T.
func load[T dtype.Float](path string, o Options, withData bool) (Info, []T, error) {
	o.logger.Debug("persist: opening array", "path", path, "dataset", o.dataset)
	f, err := hdf5.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, nil, ErrNotFound
		}
		return Info{}, nil, err
	}
	defer f.Close()

	ds, err := f.OpenDataset(o.dataset)
	if err != nil {
		if errors.Is(err, hdf5.ErrNotFound) {
			return Info{}, nil, fmt.Errorf("dataset %q: %w", o.dataset, ErrNotFound)
		}
		return Info{}, nil, err
	}

	info, err := decodeInfo(ds)
	if err != nil {
		return Info{}, nil, err
	}
	if !withData {
		return info, nil, nil
	}
	if want := dtype.TypeStr[T](); info.TypeStr != want {
		return Info{}, nil, fmt.Errorf("stored %q, want %q: %w", info.TypeStr, want, ErrTypeMismatch)
	}
	data, err := readElements[T](ds)
	if err != nil {
		return Info{}, nil, err
	}
	if len(data) != info.Rows*info.Cols {
		return Info{}, nil, fmt.Errorf("%d elements for shape %dx%d: %w", len(data), info.Rows, info.Cols, ErrCorrupt)
	}

	return info, data, nil
}

// decodeInfo reads and validates the metadata attributes of ds.
func decodeInfo(ds *hdf5.Dataset) (Info, error) {
	shape, err := int64Pair(ds, attrShape)
	if err != nil {
		return Info{}, err
	}
	part, err := int64Pair(ds, attrPartition)
	if err != nil {
		return Info{}, err
	}
	ndimAttr := ds.Attr(attrNDim)
	if ndimAttr == nil {
		return Info{}, fmt.Errorf("attribute %q missing: %w", attrNDim, ErrCorrupt)
	}
	ndim, err := ndimAttr.ReadScalarInt64()
	if err != nil {
		return Info{}, fmt.Errorf("attribute %q: %w: %w", attrNDim, ErrCorrupt, err)
	}
	typeStr, err := scalarString(ds, attrTypeStr)
	if err != nil {
		return Info{}, err
	}
	rawID, err := scalarString(ds, attrID)
	if err != nil {
		return Info{}, err
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Info{}, fmt.Errorf("attribute %q: %w: %w", attrID, ErrCorrupt, err)
	}
	if shape[0] <= 0 || shape[1] <= 0 {
		return Info{}, fmt.Errorf("shape %v: %w", shape, ErrCorrupt)
	}
	if part[0] < 0 || part[1] < 0 {
		return Info{}, fmt.Errorf("partition %v: %w", part, ErrCorrupt)
	}

	return Info{
		ID:        id,
		Rows:      shape[0],
		Cols:      shape[1],
		NDim:      int(ndim),
		Partition: part,
		TypeStr:   typeStr,
	}, nil
}

func int64Pair(ds *hdf5.Dataset, name string) ([2]int, error) {
	a := ds.Attr(name)
	if a == nil {
		return [2]int{}, fmt.Errorf("attribute %q missing: %w", name, ErrCorrupt)
	}
	v, err := a.ReadInt64()
	if err != nil {
		return [2]int{}, fmt.Errorf("attribute %q: %w: %w", name, ErrCorrupt, err)
	}
	if len(v) != 2 {
		return [2]int{}, fmt.Errorf("attribute %q has %d values: %w", name, len(v), ErrCorrupt)
	}

	return [2]int{int(v[0]), int(v[1])}, nil
}

func scalarString(ds *hdf5.Dataset, name string) (string, error) {
	a := ds.Attr(name)
	if a == nil {
		return "", fmt.Errorf("attribute %q missing: %w", name, ErrCorrupt)
	}
	s, err := a.ReadScalarString()
	if err != nil {
		return "", fmt.Errorf("attribute %q: %w: %w", name, ErrCorrupt, err)
	}

	return s, nil
}

// native copies data into the concrete slice type the encoder understands.
func native[T dtype.Float](data []T) any {
	if dtype.KindOf[T]() == dtype.Float32 {
		out := make([]float32, len(data))
		for i, v := range data {
			out[i] = float32(v)
		}
		return out
	}
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}

	return out
}

// readElements decodes the dataset with the reader matching T's width.
func readElements[T dtype.Float](ds *hdf5.Dataset) ([]T, error) {
	out := make([]T, 0)
	if dtype.KindOf[T]() == dtype.Float32 {
		v, err := ds.ReadFloat32()
		if err != nil {
			return nil, err
		}
		for _, x := range v {
			out = append(out, T(x))
		}
		return out, nil
	}
	v, err := ds.ReadFloat64()
	if err != nil {
		return nil, err
	}
	for _, x := range v {
		out = append(out, T(x))
	}

	return out, nil
}
