// SPDX-License-Identifier: MIT

package smallmat

//go:generate go run ./cmd/smallmatgen -config smallmat.yaml -out zz_generated.go
