// Package recording captures the draw calls a drawable issues so they can
// be inspected or replayed onto another canvas.
//
// A Recorder implements rounded.RadiiCanvas. Every call is stored as an
// Op carrying a snapshot of the paint it was issued with:
//
//	rec := recording.NewRecorder()
//	d.Draw(rec)
//	for _, op := range rec.Ops() {
//	    fmt.Println(op)
//	}
//
// Wrap the recorder with rounded.UniformOnly to observe how drawables fall
// back on canvases without per-corner radii:
//
//	d.Draw(rounded.UniformOnly(rec))
//
// Recorded ops replay in order with Playback:
//
//	rec.Playback(rounded.NewRasterCanvas(img))
package recording
