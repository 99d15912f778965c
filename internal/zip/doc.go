// Package zip applies a function across aligned numeric containers.
//
// The ZipMutWith functions write into one mutable container while reading
// from one to five others; the FoldWith functions reduce aligned containers
// to a single value. Containers must agree in shape and expose a contiguous
// row-major backing slice. When they do not, the functions return a
// *LockstepError instead of truncating to the shortest operand:
//
//	err := zip.ZipMutWith2(out, x, k, func(o *float64, x, k float64) { *o = x + h*k })
//	if errors.Is(err, zip.ErrNotSameShape) { ... }
//
// Nothing in this package panics.
package zip
