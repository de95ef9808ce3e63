package melody

import (
	"fmt"
	"sort"
	"time"

	"github.com/potatoeggy/ece198/pkg/device"
)

// DefaultTempo is the duration of one beat.
const DefaultTempo = 60 * time.Millisecond

// Lookup returns a built-in tune by name.
func Lookup(name string) (Tune, error) {
	t, ok := tunes[name]
	if !ok {
		return nil, fmt.Errorf("unknown tune %q", name)
	}
	return t, nil
}

// Names returns the built-in tune names, sorted.
func Names() []string {
	names := make([]string, 0, len(tunes))
	for name := range tunes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Player sequences tunes on a buzzer.
type Player struct {
	buzzer  device.Buzzer
	sleeper device.Sleeper
	tempo   time.Duration
}

// NewPlayer creates a player. A zero tempo selects DefaultTempo.
func NewPlayer(b device.Buzzer, s device.Sleeper, tempo time.Duration) *Player {
	if tempo <= 0 {
		tempo = DefaultTempo
	}
	return &Player{buzzer: b, sleeper: s, tempo: tempo}
}

// Duration returns how long t takes to play.
func (p *Player) Duration(t Tune) time.Duration {
	var d time.Duration
	for _, n := range t {
		d += time.Duration(n.Beats)*p.tempo + p.tempo/2
	}
	return d
}

// Play plays t once: each note for its beats, then half a beat of silence.
// Unknown note names fail before anything is played.
func (p *Player) Play(t Tune) error {
	for _, n := range t {
		if n.Name == Rest {
			continue
		}
		if _, ok := tones[n.Name]; !ok {
			return fmt.Errorf("unknown note %q", n.Name)
		}
	}

	for _, n := range t {
		if n.Name == Rest {
			if err := p.buzzer.Silence(); err != nil {
				return fmt.Errorf("failed to silence buzzer: %w", err)
			}
		} else if err := p.buzzer.Tone(tones[n.Name]); err != nil {
			return fmt.Errorf("failed to play %s: %w", n.Name, err)
		}
		p.sleeper.Sleep(time.Duration(n.Beats) * p.tempo)

		if err := p.buzzer.Silence(); err != nil {
			return fmt.Errorf("failed to silence buzzer: %w", err)
		}
		p.sleeper.Sleep(p.tempo / 2)
	}
	return nil
}
