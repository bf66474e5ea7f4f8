// Package quarkgl is a small, predictable software rasterizer.
//
// It draws flat-shaded triangles and depth-tested edges into a caller-provided
// Target. Geometry lives in a fixed-capacity Scene; the caller supplies the
// view-projection and a model matrix per draw, so the same cached mesh can be
// drawn several times per frame under different transforms.
//
// Pipeline (fixed):
//
//	Model → ViewProj → clip (w > 0) → NDC → screen → depth test → Target.
//
// Depth state follows the fixed-function model: DepthFunc selects LESS or
// LEQUAL and DepthWrite masks depth-buffer updates. The renderer does not
// allocate in the draw path once its depth buffer matches the target size.
//
// Math types are mgl32's, column-major in the OpenGL layout.
package quarkgl
