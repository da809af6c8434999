package math

import (
	m "math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ktan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// Sin and Cos are the float32 trigonometry used by the orbit update.
func Sin(x float32) float32 {
	return ksin(x)
}

func Cos(x float32) float32 {
	return kcos(x)
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float32 {
	return ksqrt(v.LengthSquared())
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Returns a copy of the vector with every component negated.
 */
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the vector. A zero-length vector
 * yields NaN components.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Transform v by mt. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 */
func (v Vec3) Transform(mt Mat4) Vec3 {
	out := mt.MulVec4(v.ToVec4(1.0))
	return Vec3{out.X, out.Y, out.Z}
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return v.ToVec3().Compare(other.ToVec3(), tolerance) && kabs(v.W-other.W) <= tolerance
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	return Mat4{Data: mgl32.Ident4()}
}

/**
 * @brief Builds a matrix from its sixteen elements given row by row, the
 * way a matrix is written on paper. Storage stays column-major.
 */
func NewMat4FromRows(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32) Mat4 {
	return Mat4{Data: mgl32.Mat4FromRows(
		mgl32.Vec4{m00, m01, m02, m03},
		mgl32.Vec4{m10, m11, m12, m13},
		mgl32.Vec4{m20, m21, m22, m23},
		mgl32.Vec4{m30, m31, m32, m33},
	)}
}

// At returns the element at the given row and column.
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[col*4+row]
}

// Row returns the given row as a vector.
func (mt Mat4) Row(row int) Vec4 {
	return Vec4{mt.At(row, 0), mt.At(row, 1), mt.At(row, 2), mt.At(row, 3)}
}

/**
 * @brief Returns mt × other. Applied to a column vector, other acts first,
 * so projection.Mul(view).Mul(model) is the usual composition.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	return Mat4{Data: mgl32.Mat4(mt.Data).Mul4(mgl32.Mat4(other.Data))}
}

/**
 * @brief Returns mt × v.
 */
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	out := mgl32.Mat4(mt.Data).Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, v.W})
	return Vec4{out[0], out[1], out[2], out[3]}
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat4) Transposed() Mat4 {
	return Mat4{Data: mgl32.Mat4(mt.Data).Transpose()}
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular
 * matrix yields the zero matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	return Mat4{Data: mgl32.Mat4(mt.Data).Inv()}
}

/**
 * @brief Compares all elements of both matrices within tolerance.
 */
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	return Mat4{Data: mgl32.Translate3D(position.X, position.Y, position.Z)}
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	return Mat4{Data: mgl32.Scale3D(scale.X, scale.Y, scale.Z)}
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * The clip volume is the one the quad shaders are written against: z is
 * not negated, and w receives the view-space z (the 1.0 at row 3, column 2).
 *
 *   { f*aspect, 0, 0,                    0                      }
 *   { 0,        f, 0,                    0                      }
 *   { 0,        0, (far+near)/(far-near), -2*far*near/(far-near) }
 *   { 0,        0, 1,                    0                      }
 *
 * with f = 1/tan(fov/2). near_clip == far_clip divides by zero; callers
 * must not do that.
 *
 * @param fov_radians The field of view in radians.
 * @param aspect_ratio The aspect ratio, height over width.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	f := 1.0 / ktan(fov_radians/2.0)
	m11 := f * aspect_ratio
	m22 := f
	m33 := (far_clip + near_clip) / (far_clip - near_clip)
	m34 := (-2.0 * far_clip * near_clip) / (far_clip - near_clip)

	return NewMat4FromRows(
		m11, 0, 0, 0,
		0, m22, 0, 0,
		0, 0, m33, m34,
		0, 0, 1.0, 0,
	)
}

/**
 * @brief Creates and returns a view matrix for an eye at position looking
 * along direction. direction does not have to be unit length.
 *
 * The rows of the rotation part are the orthonormal basis s, u, f built
 * from up and direction, and the last column moves the eye to the origin.
 * up must not be parallel to direction: the basis is undefined (NaN) then.
 *
 * @param position The position of the eye.
 * @param direction The direction the eye looks at.
 * @param up The up vector.
 * @return A matrix mapping world space to view space.
 */
func NewMat4View(position, direction, up Vec3) Mat4 {
	f := direction.Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	p := Vec3{
		-position.Dot(s),
		-position.Dot(u),
		-position.Dot(f),
	}

	return NewMat4FromRows(
		s.X, s.Y, s.Z, p.X,
		u.X, u.Y, u.Z, p.Y,
		f.X, f.Y, f.Z, p.Z,
		0, 0, 0, 1,
	)
}
