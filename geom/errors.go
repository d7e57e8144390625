// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
// Messages are prefixed with "geom: ..." and matched via errors.Is;
// precondition violations are reported, never silently corrected.

package geom

import "errors"

// ErrZeroNormal is returned by NewPlane when the supplied normal is the zero
// vector: such a "plane" is undefined and projecting onto it would divide by
// zero, so the violation is a usage error caught at construction.
var ErrZeroNormal = errors.New("geom: plane normal must be non-zero")
