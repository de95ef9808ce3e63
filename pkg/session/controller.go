package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/potatoeggy/ece198/pkg/config"
	"github.com/potatoeggy/ece198/pkg/device"
	"github.com/potatoeggy/ece198/pkg/input"
	"github.com/potatoeggy/ece198/pkg/melody"
	"github.com/potatoeggy/ece198/pkg/quality"
	"github.com/potatoeggy/ece198/pkg/sample"
	"github.com/potatoeggy/ece198/pkg/screen"
	"github.com/potatoeggy/ece198/pkg/stats"
)

const (
	// Menu keys.
	KeyNewEntry device.Key = '1'
	KeySummary  device.Key = '2'

	// pollInterval is the pause between idle keypad scans while waiting on a screen.
	pollInterval = 10 * time.Millisecond
	// noticeDelay is how long the invalid-entry notice stays up before the re-prompt.
	noticeDelay = time.Second
)

// Controller drives the kiosk menu loop. It owns the peripherals and the
// sample store exclusively; none of its methods are safe for concurrent use.
type Controller struct {
	cfg      *config.Config
	periph   device.Peripherals
	store    *sample.Store
	editor   *input.Editor
	renderer *screen.Renderer
	player   *melody.Player // nil without a buzzer
}

// New creates a controller over the given peripherals.
func New(periph device.Peripherals, cfg *config.Config) (*Controller, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := periph.Validate(); err != nil {
		return nil, err
	}
	policy, err := sample.ParsePolicy(cfg.Store.Policy)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:      cfg,
		periph:   periph,
		store:    sample.NewStore(cfg.Store.Capacity, policy),
		editor:   input.New(cfg.Input.MaxWidth, cfg.Input.Debounce),
		renderer: screen.NewRenderer(periph.Display, periph.Sleeper, cfg.Display.Width, cfg.Display.SettleDelay),
	}
	if periph.Buzzer != nil {
		c.player = melody.NewPlayer(periph.Buzzer, periph.Sleeper, cfg.Melody.Tempo)
	}
	return c, nil
}

// Store returns the sample store.
func (c *Controller) Store() *sample.Store {
	return c.store
}

// Run plays the boot tune and then loops the menu forever.
// It returns only when a peripheral fails.
func (c *Controller) Run() error {
	if err := c.PlayBootTune(); err != nil {
		log.Printf("Boot tune failed: %v", err)
	}

	for {
		if err := c.Step(); err != nil {
			return err
		}
	}
}

// PlayBootTune plays the configured boot tune, if any.
func (c *Controller) PlayBootTune() error {
	if c.player == nil || c.cfg.Melody.BootTune == "" {
		return nil
	}
	tune, err := melody.Lookup(c.cfg.Melody.BootTune)
	if err != nil {
		return err
	}
	return c.player.Play(tune)
}

// Step shows the menu, waits for a selection and runs it.
func (c *Controller) Step() error {
	if err := c.renderer.Show(screen.Menu()); err != nil {
		return err
	}

	for {
		k, err := c.waitKey()
		if err != nil {
			return err
		}
		switch k {
		case KeyNewEntry:
			_, err := c.NewEntry()
			return err
		case KeySummary:
			return c.Summary()
		}
	}
}

// NewEntry reads the three readings, shows their classification and advice,
// and stores the sample. A full store under the reject policy shows a notice
// and drops the sample; that is not an error.
func (c *Controller) NewEntry() (sample.WaterSample, error) {
	var values [len(quality.Parameters)]float64
	for i, p := range quality.Parameters {
		v, err := c.readValue(p)
		if err != nil {
			return sample.WaterSample{}, err
		}
		values[i] = v
	}

	s := sample.WaterSample{
		PH:           values[quality.PH],
		Conductivity: values[quality.Conductivity],
		Hardness:     values[quality.Hardness],
	}

	levels := s.Levels()
	status := screen.Status(levels[quality.PH], levels[quality.Conductivity], levels[quality.Hardness], s.Total())
	if err := c.showAndWait(status); err != nil {
		return s, err
	}

	for _, p := range quality.Parameters {
		if err := c.showAndWait(screen.Advice(p, quality.Improve(p, s.Value(p)), c.renderer.Width())); err != nil {
			return s, err
		}
	}

	if err := c.store.Append(s); err != nil {
		if !errors.Is(err, sample.ErrStoreFull) {
			return s, err
		}
		log.Printf("Sample store full (%d), discarding sample", c.store.Cap())
		return s, c.showAndWait(screen.StoreFull(c.store.Cap()))
	}

	log.Printf("Stored sample %d/%d: pH=%g cond=%g hardness=%g",
		c.store.Len(), c.store.Cap(), s.PH, s.Conductivity, s.Hardness)
	return s, nil
}

// Summary shows mean, deviation and pass count for every parameter.
func (c *Controller) Summary() error {
	samples := c.store.Samples()

	for _, p := range quality.Parameters {
		st, err := stats.ForParameter(samples, p, c.standard(p))
		if errors.Is(err, stats.ErrInsufficientData) {
			if err := c.showAndWait(screen.NoData(p)); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		if err := c.showAndWait(screen.SummaryValues(p, st, c.renderer.Width())); err != nil {
			return err
		}
		if err := c.showAndWait(screen.SummaryStandard(st)); err != nil {
			return err
		}
	}
	return nil
}

// readValue prompts for p until a valid number is entered.
func (c *Controller) readValue(p quality.Parameter) (float64, error) {
	for {
		if err := c.renderer.Prompt(p.Info().Prompt); err != nil {
			return 0, err
		}

		v, err := c.editor.Read(c.periph.Keypad, c.periph.Sleeper, c.renderer.Echo)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, input.ErrInvalidNumericInput) {
			return 0, err
		}

		log.Printf("Rejected %s entry: %v", p, err)
		if err := c.renderer.Show(screen.InvalidInput()); err != nil {
			return 0, err
		}
		c.periph.Sleeper.Sleep(noticeDelay)
	}
}

// showAndWait draws scr and blocks until any key is pressed.
func (c *Controller) showAndWait(scr screen.Screen) error {
	if err := c.renderer.Show(scr); err != nil {
		return err
	}
	_, err := c.waitKey()
	return err
}

// waitKey blocks until a key other than KeyNone is read.
func (c *Controller) waitKey() (device.Key, error) {
	for {
		k, err := c.periph.Keypad.ReadKey()
		if err != nil {
			return device.KeyNone, fmt.Errorf("failed to read keypad: %w", err)
		}
		if k != device.KeyNone {
			c.periph.Sleeper.Sleep(c.cfg.Input.Debounce)
			return k, nil
		}
		c.periph.Sleeper.Sleep(pollInterval)
	}
}

func (c *Controller) standard(p quality.Parameter) float64 {
	switch p {
	case quality.PH:
		return c.cfg.Standards.PH
	case quality.Conductivity:
		return c.cfg.Standards.Conductivity
	default:
		return c.cfg.Standards.Hardness
	}
}
