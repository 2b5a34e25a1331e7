//go:build headless

package main

// Player is a no-op stand-in for environments with no audio device; it
// keeps next but never calls it, so no samples are pulled or played.
type Player struct {
	next func() (int16, int16)
}

func NewPlayer(sampleRate int, next func() (int16, int16)) (*Player, error) {
	return &Player{next: next}, nil
}

func (p *Player) Start() {}
func (p *Player) Close() {}
