package persist_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/robert-malhotra/go-hdf5/hdf5"

	"github.com/katalvlaran/smallmat/dense"
	"github.com/katalvlaran/smallmat/persist"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *dense.Dense[float64] {
	t.Helper()
	m, err := dense.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}, dense.WithPartition(1, 3))
	require.NoError(t, err)

	return m
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.h5")
	m := sample(t)
	require.NoError(t, persist.Write(path, m))

	got, err := persist.Read[float64](path)
	require.NoError(t, err)
	require.True(t, m.Equal(got))
	pr, pc := got.Partition()
	require.Equal(t, 1, pr)
	require.Equal(t, 3, pc)
}

func TestFloat32RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f32.h5")
	m, err := dense.FromSlice(1, 4, []float32{0.5, -1, 2.25, 8})
	require.NoError(t, err)
	require.NoError(t, persist.Write(path, m))

	got, err := persist.Read[float32](path)
	require.NoError(t, err)
	require.Equal(t, m.Raw(), got.Raw())

	info, err := persist.Stat(path)
	require.NoError(t, err)
	require.Equal(t, 1, info.NDim)
	require.Equal(t, "<f4", info.TypeStr)

	_, err = persist.Read[float64](path)
	require.ErrorIs(t, err, persist.ErrTypeMismatch)
}

func TestReadInto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "into.h5")
	require.NoError(t, persist.Write(path, sample(t)))

	target, _ := dense.NewDense[float64](2, 3, dense.WithPartition(1, 3))
	require.NoError(t, persist.ReadInto(path, target))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, target.Raw())

	wrong, _ := dense.NewDense[float64](3, 2)
	err := persist.ReadInto(path, wrong)
	require.ErrorIs(t, err, persist.ErrShapeMismatch)
	require.Equal(t, make([]float64, 6), wrong.Raw())
}

func TestReadIntoPartitionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.h5")
	require.NoError(t, persist.Write(path, sample(t)))

	cases := []struct {
		name     string
		partRows int
		partCols int
	}{
		{"ColumnBlocks", 2, 1},
		{"WholeArray", 0, 0},
		{"SingleCells", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target, err := dense.NewDense[float64](2, 3, dense.WithPartition(tc.partRows, tc.partCols))
			require.NoError(t, err)
			err = persist.ReadInto(path, target)
			require.ErrorIs(t, err, persist.ErrShapeMismatch)
			require.ErrorContains(t, err, "stored partition 1x3")
			require.Equal(t, make([]float64, 6), target.Raw())
		})
	}
}

// writeRaw builds a file by hand with the given partition attribute.
func writeRaw(t *testing.T, path string, partition []int64) {
	t.Helper()
	f, err := hdf5.Create(path)
	require.NoError(t, err)
	_, err = f.Root().CreateDataset(persist.DefaultDataset, []float64{1, 2, 3, 4, 5, 6},
		hdf5.WithAttribute("shape", []int64{2, 3}),
		hdf5.WithAttribute("ndim", int64(2)),
		hdf5.WithAttribute("partition", partition),
		hdf5.WithAttribute("typestr", "<f8"),
		hdf5.WithAttribute("id", uuid.New().String()),
	)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestNegativePartitionIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.h5")
	writeRaw(t, path, []int64{-1, 2})

	require.NotPanics(t, func() {
		_, err := persist.Read[float64](path)
		require.ErrorIs(t, err, persist.ErrCorrupt)
	})
	_, err := persist.Stat(path)
	require.ErrorIs(t, err, persist.ErrCorrupt)
	require.False(t, persist.Exists(path))

	into, _ := dense.NewDense[float64](2, 3)
	require.NotPanics(t, func() {
		require.ErrorIs(t, persist.ReadInto(path, into), persist.ErrCorrupt)
	})
	require.Equal(t, make([]float64, 6), into.Raw())

	ok := filepath.Join(t.TempDir(), "hand.h5")
	writeRaw(t, ok, []int64{1, 3})
	got, err := persist.Read[float64](ok)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got.Raw())
}

func TestNotFound(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.h5")

	_, err := persist.Read[float64](missing)
	require.ErrorIs(t, err, persist.ErrNotFound)
	require.ErrorContains(t, err, "couldn't be found")
	require.False(t, persist.Exists(missing))

	path := filepath.Join(dir, "named.h5")
	require.NoError(t, persist.Write(path, sample(t), persist.WithDataset("velocity")))
	require.True(t, persist.Exists(path, persist.WithDataset("velocity")))
	require.False(t, persist.Exists(path))

	into, _ := dense.NewDense[float64](2, 3)
	err = persist.ReadInto(path, into)
	require.ErrorIs(t, err, persist.ErrNotFound)
}

func TestStatAndFreshIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.h5")
	require.NoError(t, persist.Write(path, sample(t)))
	first, err := persist.Stat(path)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)
	require.Equal(t, 2, first.Rows)
	require.Equal(t, 3, first.Cols)
	require.Equal(t, 2, first.NDim)
	require.Equal(t, [2]int{1, 3}, first.Partition)
	require.Equal(t, "<f8", first.TypeStr)

	require.NoError(t, persist.Write(path, sample(t)))
	second, err := persist.Stat(path)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestLoggerReceivesRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	path := filepath.Join(t.TempDir(), "log.h5")

	require.NoError(t, persist.Write(path, sample(t), persist.WithLogger(logger)))
	require.Contains(t, buf.String(), "persist: wrote array")
	require.Contains(t, buf.String(), "rows=2")

	require.Panics(t, func() { persist.WithLogger(nil) })
	require.Panics(t, func() { persist.WithDataset("") })
}
