// Package vecmath implements fixed-size float32 vectors and matrices and the
// transform matrices commonly needed for 3D rendering.
//
// Matrices are stored row-major: element (r, c) of an N×N matrix is m[N*r+c].
// Vectors are rows and are transformed as v' = v·M, so translation lives in
// the last row and A.Mul(B) applies A first and B second. Projection and
// view matrices are left-handed with the camera looking down +z and clip
// depth in [0, 1].
//
// Since a row-major row-vector matrix has the same memory image as a
// column-major column-vector matrix, a Mat4 can be handed to a GLSL mat4
// without reordering.
//
// All types are values and every operation returns a fresh result; nothing is
// allocated on the heap and no package state is mutated.
package vecmath
