package linalg

import "github.com/taigrr/typedgeo/pkg/scalar"

// ConvertVec2 converts v to another scalar kind.
func ConvertVec2[U, T scalar.Number](v Vec2[T]) Vec2[U] { return Vec2[U]{U(v.X), U(v.Y)} }

// ConvertVec3 converts v to another scalar kind.
func ConvertVec3[U, T scalar.Number](v Vec3[T]) Vec3[U] { return Vec3[U]{U(v.X), U(v.Y), U(v.Z)} }

// ConvertPos2 converts p to another scalar kind.
func ConvertPos2[U, T scalar.Number](p Pos2[T]) Pos2[U] { return Pos2[U]{U(p.X), U(p.Y)} }

// ConvertPos3 converts p to another scalar kind.
func ConvertPos3[U, T scalar.Number](p Pos3[T]) Pos3[U] { return Pos3[U]{U(p.X), U(p.Y), U(p.Z)} }
