//go:build !ebiten

package app

import (
	"errors"
	"time"

	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

// ErrHeadless is returned by Run in builds without the ebiten tag.
var ErrHeadless = errors.New("the windowed host requires building with the 'ebiten' tag")

// Run reports that the GUI is not compiled in.
func Run(*interpreter.Session, int, time.Duration) error {
	return ErrHeadless
}
