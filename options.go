package color

// CompositorOption configures a Compositor during creation.
// Use functional options to customize compositing behavior.
//
// Example:
//
//	// Accurate Porter-Duff over in linear light
//	cp := color.NewCompositor()
//
//	// Screen blend
//	cp := color.NewCompositor(color.WithBlendMode(color.Screen))
type CompositorOption func(*Compositor)

// WithBlendMode sets the blend mode. Unknown modes fall back to Normal.
func WithBlendMode(m BlendMode) CompositorOption {
	return func(cp *Compositor) {
		if !m.Valid() {
			m = Normal
		}
		cp.mode = m
	}
}

// WithFastOver makes Normal mode composite on gamma-encoded channels
// (Color.OverSRGBFast) instead of linear light. Other modes always blend in
// linear light and ignore this option.
func WithFastOver(fast bool) CompositorOption {
	return func(cp *Compositor) {
		cp.fast = fast
	}
}
