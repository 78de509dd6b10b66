package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame delay sanitation. Source frames with delays under the floor are
// played at the fallback so malformed zero-delay GIFs cannot spin playback
// unboundedly. The 5ms threshold is tunable, not load-bearing.
const (
	minFrameDelay      = 5 * time.Millisecond
	fallbackFrameDelay = 16 * time.Millisecond
)

// AnimationPlayer advances the frame index of an animated image by
// accumulated elapsed time. It is reset whenever a new image is presented.
type AnimationPlayer struct {
	img *LoadedImage

	FrameIndex     int
	ElapsedInFrame time.Duration
	CompletedLoops int

	frozen bool
}

// NewAnimationPlayer returns a player with no image attached.
func NewAnimationPlayer() *AnimationPlayer {
	return &AnimationPlayer{}
}

// SetImage attaches a new image and rewinds playback to frame zero.
func (ap *AnimationPlayer) SetImage(img *LoadedImage) {
	ap.img = img
	ap.FrameIndex = 0
	ap.ElapsedInFrame = 0
	ap.CompletedLoops = 0
	ap.frozen = false
}

// effectiveDuration returns the playback delay for a frame, clamped up when
// the source delay is implausibly small.
func effectiveDuration(d time.Duration) time.Duration {
	if d < minFrameDelay {
		return fallbackFrameDelay
	}
	return d
}

// Advance accumulates elapsed time and steps the frame index. The remainder
// past each frame boundary carries into the next frame so long-running
// playback does not drift. When a finite loop count is exhausted the player
// freezes on the last frame. Reports whether the visible frame changed.
func (ap *AnimationPlayer) Advance(dt time.Duration) bool {
	if ap.img == nil || !ap.img.Animated() || ap.frozen {
		return false
	}

	start := ap.FrameIndex
	ap.ElapsedInFrame += dt

	for {
		dur := effectiveDuration(ap.img.Frames[ap.FrameIndex].Duration)
		if ap.ElapsedInFrame < dur {
			break
		}
		ap.ElapsedInFrame -= dur

		if ap.FrameIndex+1 < len(ap.img.Frames) {
			ap.FrameIndex++
			continue
		}

		// Wrapped past the last frame.
		ap.CompletedLoops++
		if ap.img.LoopCount != 0 && ap.CompletedLoops >= ap.img.LoopCount {
			ap.FrameIndex = len(ap.img.Frames) - 1
			ap.ElapsedInFrame = 0
			ap.frozen = true
			break
		}
		ap.FrameIndex = 0
	}

	return ap.FrameIndex != start
}

// Frozen reports whether playback has exhausted a finite loop count.
func (ap *AnimationPlayer) Frozen() bool {
	return ap.frozen
}

// CurrentFrame returns the bitmap to draw, or nil when no frames exist.
func (ap *AnimationPlayer) CurrentFrame() *ebiten.Image {
	if ap.img == nil || len(ap.img.Frames) == 0 {
		return nil
	}
	return ap.img.Frames[ap.FrameIndex].Image
}
