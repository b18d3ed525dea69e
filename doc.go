// Package smallmat is your in-memory toolkit for small, fixed-shape dense
// matrices and vectors that hand their storage to other runtimes without
// copying.
//
// What is in the box?
//
//	• Fixed types: one generated struct per (element type, rows, cols,
//	  storage order, start index), e.g. Matrix6x6FSI1Float64
//	• Bounds-checked accessors that count from the type's start index
//	• Arithmetic, transpose, identity/trace and products between linked
//	  matrix / column-vector / row-vector triples
//	• Zero-copy interchange: array-interface (v3) descriptors for host and
//	  accelerator consumers, and validated construction from foreign buffers
//	• Dense containers, HDF5 persistence and ULP comparisons for the data
//	  around them
//
// Under the hood the module is organized as:
//
//	dtype/        - element constraint (float32, float64) and type tags
//	layout/       - storage order, start index, bounds-checked offsets, strides
//	core/         - generic kernels every generated type delegates to
//	interchange/  - construction buffers and array-interface descriptors
//	dense/        - runtime-shaped row-major container
//	persist/      - HDF5 write/read of dense containers
//	approx/       - almost-equal comparison within N ULP
//	gen/          - instantiation list → generated types
//	cmd/smallmatgen - the generator CLI behind go generate
//
// Quick example:
//
//	m := smallmat.IdentityMatrix6x6FSI1Float64()
//	_ = m.Set(1, 1, 2)
//	v, _ := m.At(1, 1)        // 2, indices start at 1
//	ai := m.ArrayInterface()  // borrows m: shape (6, 6), strides (8, 48)
//
// Adding a shape: list it in smallmat.yaml and run go generate.
package smallmat
