//go:build !ebiten

package app

import "lifeview/internal/core"

// Run reports that the GUI build tag is missing.
func Run(core.Engine, Options) error {
	return ErrNoGUI
}
