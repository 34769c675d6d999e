package interfaces

import "horbital/internal/domain/types"

// Renderer is the plotting backend boundary. The core builds a complete
// RenderRequest (field, colour mapping, contour set, output path) and the
// implementation owns figure layout and file encoding.
type Renderer interface {
	Render(req types.RenderRequest) error
}
