package ldtk

import "math"

// aspectEpsilon is the tolerance used when comparing aspect ratios. It keeps
// the letterboxing decision from flickering when the window aspect sits on
// the boundary.
const aspectEpsilon = 0.01

// ViewportScaler determines the dimensions a viewport can take within a
// window of a given size while staying inside a range of aspect ratios.
//
// The virtual width and height must be positive and minAspect must not exceed
// maxAspect. Neither is checked.
type ViewportScaler struct {
	virtualWidth  float64
	virtualHeight float64
	minAspect     float64
	maxAspect     float64
}

// NewViewportScaler creates a scaler that accepts any aspect ratio in
// [minAspect, maxAspect].
func NewViewportScaler(virtualWidth, virtualHeight, minAspect, maxAspect float64) ViewportScaler {
	return ViewportScaler{
		virtualWidth:  virtualWidth,
		virtualHeight: virtualHeight,
		minAspect:     minAspect,
		maxAspect:     maxAspect,
	}
}

// NewFixedViewportScaler creates a scaler whose aspect ratio is fixed to
// virtualWidth / virtualHeight.
func NewFixedViewportScaler(virtualWidth, virtualHeight float64) ViewportScaler {
	aspect := virtualWidth / virtualHeight
	return NewViewportScaler(virtualWidth, virtualHeight, aspect, aspect)
}

// MinAspect returns the smallest accepted aspect ratio.
func (s ViewportScaler) MinAspect() float64 { return s.minAspect }

// MaxAspect returns the largest accepted aspect ratio.
func (s ViewportScaler) MaxAspect() float64 { return s.maxAspect }

// Scale returns the viewport dimensions to use in a screen of the given size.
// screenHeight must not be zero.
func (s ViewportScaler) Scale(screenWidth, screenHeight float64) (width, height float64) {
	aspect := screenWidth / screenHeight
	if aspect <= s.maxAspect {
		// Height stays fixed and width follows the screen, but never below
		// minAspect.
		return s.virtualHeight * math.Max(aspect, s.minAspect), s.virtualHeight
	}
	// Wider than allowed: width stays fixed.
	return s.virtualWidth, s.virtualWidth / s.maxAspect
}

// VirtualViewport holds a virtual size and derives the letterboxed size that
// covers a physical screen. Exactly one axis is stretched to the screen aspect;
// the other stays pinned to the virtual size.
type VirtualViewport struct {
	virtualWidth  float64
	virtualHeight float64
}

// NewVirtualViewport creates a viewport with the given virtual size.
func NewVirtualViewport(virtualWidth, virtualHeight float64) *VirtualViewport {
	return &VirtualViewport{virtualWidth: virtualWidth, virtualHeight: virtualHeight}
}

// SetSize replaces the virtual size, typically with a ViewportScaler result.
func (v *VirtualViewport) SetSize(virtualWidth, virtualHeight float64) {
	v.virtualWidth = virtualWidth
	v.virtualHeight = virtualHeight
}

// VirtualWidth returns the current virtual width.
func (v *VirtualViewport) VirtualWidth() float64 { return v.virtualWidth }

// VirtualHeight returns the current virtual height.
func (v *VirtualViewport) VirtualHeight() float64 { return v.virtualHeight }

// VirtualAspect returns VirtualWidth / VirtualHeight.
func (v *VirtualViewport) VirtualAspect() float64 {
	return v.virtualWidth / v.virtualHeight
}

// widthStretched reports whether a screen of the given size is at least as
// wide as the virtual aspect, in which case the width axis is stretched.
func (v *VirtualViewport) widthStretched(screenWidth, screenHeight float64) (bool, float64) {
	virtualAspect := v.VirtualAspect()
	aspect := screenWidth / screenHeight
	return aspect > virtualAspect || math.Abs(aspect-virtualAspect) < aspectEpsilon, aspect
}

// Width returns the viewport width for a screen of the given size.
func (v *VirtualViewport) Width(screenWidth, screenHeight float64) float64 {
	if wide, aspect := v.widthStretched(screenWidth, screenHeight); wide {
		return v.virtualHeight * aspect
	}
	return v.virtualWidth
}

// Height returns the viewport height for a screen of the given size.
func (v *VirtualViewport) Height(screenWidth, screenHeight float64) float64 {
	if wide, aspect := v.widthStretched(screenWidth, screenHeight); !wide {
		return v.virtualWidth / aspect
	}
	return v.virtualHeight
}
