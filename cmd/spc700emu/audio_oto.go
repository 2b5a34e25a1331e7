//go:build !headless

package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Player streams the engine's stereo int16 output through oto, pulling one
// sample pair at a time from next via an io.Reader-backed player.
type Player struct {
	ctx     *oto.Context
	player  *oto.Player
	next    func() (int16, int16)
	mutex   sync.Mutex
	started bool
}

func NewPlayer(sampleRate int, next func() (int16, int16)) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	p := &Player{ctx: ctx, next: next}
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// Read fills buf with interleaved little-endian stereo int16 samples.
func (p *Player) Read(buf []byte) (int, error) {
	n := len(buf) / 4
	for i := 0; i < n; i++ {
		l, r := p.next()
		buf[i*4+0] = byte(l)
		buf[i*4+1] = byte(l >> 8)
		buf[i*4+2] = byte(r)
		buf[i*4+3] = byte(r >> 8)
	}
	return n * 4, nil
}

func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.started {
		p.player.Play()
		p.started = true
	}
}

func (p *Player) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.started {
		p.player.Close()
		p.started = false
	}
}
