// SPDX-License-Identifier: MIT

// Package persist writes and reads dense arrays as HDF5 files.
//
// File format:
//   - one dataset (DefaultDataset unless WithDataset) holding the flat
//     row-major elements as IEEE little-endian floats;
//   - attributes on that dataset:
//     shape     int64[2]  (rows, cols)
//     ndim      int64     (1 for one-row/one-column arrays, else 2)
//     partition int64[2]  block shape of the dense container
//     typestr   string    array-interface element tag, e.g. "<f8"
//     id        string    UUID generated fresh on every Write
//
// All calls are synchronous and open/close the file themselves. Absence of the
// file or the dataset is reported as ErrNotFound.
package persist
