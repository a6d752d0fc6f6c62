// Package types3d holds the small value types shared by the grid3d packages.
//
// IJK is a plain comparable struct: compare with ==, copy freely.
package types3d
