// Package dualdial is a two-ring selector for [Ebitengine].
//
// A [Dial] draws two concentric rings, each split into four categories, with
// a fixed pointer at the top. Dragging a ring rotates it; the category under
// the pointer on each ring forms the current [Selection]. The outer ring turns
// with the drag and the inner ring turns against it.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and keeps
// the dial centred:
//
//	d := dualdial.NewDial(dualdial.DialConfig{
//		OnSelectionChange: func(outer, inner string) {
//			fmt.Println(outer, inner)
//		},
//	})
//	dualdial.Run(d, dualdial.RunConfig{Title: "Dual Dial", Width: 480, Height: 480})
//
// For full control, implement [ebiten.Game] yourself, place the dial with
// [Dial.SetCenter], and call [Dial.Update] and [Dial.Draw] directly.
//
// # Selection
//
// [ResolveCategory] picks the category whose centre, in the ring's unrotated
// frame, is angularly closest to the pointer. Rotation 0 puts "boring" and
// "unpleasant" under the pointer. Each category owns a 90 degree window, and
// on an exact boundary the category listed first in ring order wins.
//
// OnSelectionChange fires once from [NewDial] and then only when the
// (outer, inner) pair actually changes.
//
// # Input
//
// [Input] derives press, move and release edges from pointer samples (mouse
// as pointer 0, touches as 1-9). Move and release handlers are attached only
// while a ring is being dragged and fire wherever the pointer is, so a drag
// that leaves the ring keeps rotating it. Synthetic input ([Input.InjectDrag],
// [Input.InjectArc]) and JSON test scripts ([LoadTestScript]) drive the same
// path for automated tests.
//
// [Ebitengine]: https://ebitengine.org
package dualdial
