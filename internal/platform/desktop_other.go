//go:build !windows

package platform

func newDesktop() (Desktop, error) {
	return nil, ErrUnsupported
}
