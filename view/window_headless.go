//go:build headless

package view

func newWindow() (Renderer, error) {
	return nil, ErrBackendUnavailable
}
