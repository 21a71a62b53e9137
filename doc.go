// Package ldtk is a small 2D game kit for [Ebitengine] built around named
// cameras over a y-up world.
//
// A [Kernel] implements [ebiten.Game]. Each frame it asks a [StateSelector]
// for the current [State], switching states with Exit and Enter when the
// answer changes, and brackets the state's Draw with [Batch.Begin] and
// [Batch.End]. Everything a state needs lives in the [Context] passed to it:
// the batch, the frame clock, the camera registry and the asset registries.
//
// # Cameras
//
// A [Camera] is an orthographic view onto the world with its origin at the
// centre of the screen and y pointing up. Its virtual size is chosen by a
// [VirtualViewport] and its placement in the window by a [ViewportScaler]:
//
//	cam := ctx.Cameras.CreateFixed("game", 640, 360) // letterboxed 16:9
//	cam.MoveTo(x, 0)
//	cam.Activate()                                   // batch now draws through cam
//
// Cameras are updated lazily: moving, zooming or rotating only marks the
// camera dirty, and the projection is rebuilt on the next [Camera.Activate].
// [Kernel.Layout] resizes every camera when the window changes size.
//
// # Geometry
//
// [Polygon] is a convex polygon with a position and rotation. [HitAny],
// [HitAnyOf] and [Bounds] operate on sets of polygons using the
// separating-axis test; shapes that only touch do not overlap.
//
// # Assets
//
// [Assets.Load] scans a directory of an [fs.FS] for textures, TexturePacker
// atlases, sounds, music and fonts and registers them under names such as
// "textures/stones" or "atlases/pack/PlayerShot01".
//
// # Debug mode
//
// [Context.SetDebug] enables checks that panic on misuse, such as drawing
// through a disposed camera, and logs frame timing through the context's
// logger.
//
// [Ebitengine]: https://ebitengine.org
package ldtk
