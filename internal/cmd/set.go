package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vjoyd/vjoyd/vjoy"
)

// Set acquires a device, injects the requested values and relinquishes it.
// Values are applied through the single-control native calls, or as one full
// state snapshot with --update; --hold keeps the device claimed so the host
// side can observe the injected state.
type Set struct {
	libraryFlag
	Device  uint32           `arg:"" help:"Device id (1-based)"`
	Axis    map[string]int32 `help:"Axis values by name, e.g. --axis x=16384,y=0" mapsep:","`
	Button  map[uint8]bool   `help:"Button states by 1-based index, e.g. --button 1=true" mapsep:","`
	DiscPov map[uint8]int32  `name:"disc-pov" help:"Discrete hat directions by 1-based index (-1 neutral, 0=N 1=E 2=S 3=W)" mapsep:","`
	ContPov map[uint8]uint32 `name:"cont-pov" help:"Continuous hat directions by 1-based index, hundredths of a degree" mapsep:","`
	Update  bool             `help:"Push all values in one full state snapshot instead of per-control calls"`
	Hold    time.Duration    `help:"Keep the device acquired for this long after injecting" default:"0s"`
}

func (c *Set) Run(logger *slog.Logger) error {
	lib, err := c.open()
	if err != nil {
		return err
	}

	if err := lib.Acquire(c.Device); err != nil {
		return err
	}
	defer lib.Relinquish(c.Device)
	logger.Debug("device acquired", "device", c.Device)

	if c.Update {
		pos, err := c.buildPosition()
		if err != nil {
			return err
		}
		if err := lib.Update(c.Device, pos); err != nil {
			return err
		}
		logger.Info("snapshot pushed", "device", c.Device,
			"axes", len(c.Axis), "buttons", len(c.Button),
			"disc_povs", len(c.DiscPov), "cont_povs", len(c.ContPov))
		return c.hold(logger)
	}

	for name, value := range c.Axis {
		usage, err := axisUsageFromName(name)
		if err != nil {
			return err
		}
		if err := lib.SetAxis(value, c.Device, usage); err != nil {
			return err
		}
		logger.Info("axis set", "device", c.Device, "axis", name, "value", value)
	}
	for btn, pressed := range c.Button {
		if err := lib.SetButton(pressed, c.Device, btn); err != nil {
			return err
		}
		logger.Info("button set", "device", c.Device, "button", btn, "pressed", pressed)
	}
	for pov, dir := range c.DiscPov {
		if err := lib.SetDiscPov(dir, c.Device, pov); err != nil {
			return err
		}
		logger.Info("discrete hat set", "device", c.Device, "pov", pov, "direction", dir)
	}
	for pov, dir := range c.ContPov {
		if err := lib.SetContPov(dir, c.Device, pov); err != nil {
			return err
		}
		logger.Info("continuous hat set", "device", c.Device, "pov", pov, "direction", dir)
	}

	return c.hold(logger)
}

func (c *Set) hold(logger *slog.Logger) error {
	if c.Hold > 0 {
		logger.Info("holding device", "device", c.Device, "duration", c.Hold)
		time.Sleep(c.Hold)
	}
	return nil
}

// buildPosition assembles the full snapshot for --update. The hat words
// carry either continuous values or packed discrete nibbles depending on
// how the driver is configured, so one snapshot cannot mix both forms.
func (c *Set) buildPosition() (*vjoy.Position, error) {
	if len(c.DiscPov) > 0 && len(c.ContPov) > 0 {
		return nil, fmt.Errorf("--update cannot carry both --disc-pov and --cont-pov in one snapshot")
	}

	pos := &vjoy.Position{
		Device:  uint8(c.Device),
		Hats:    vjoy.HatNeutral,
		HatsEx1: vjoy.HatNeutral,
		HatsEx2: vjoy.HatNeutral,
		HatsEx3: vjoy.HatNeutral,
	}
	for name, value := range c.Axis {
		field, err := positionAxisField(pos, name)
		if err != nil {
			return nil, err
		}
		*field = value
	}
	for btn, pressed := range c.Button {
		pos.SetButton(uint16(btn), pressed)
	}
	for pov, dir := range c.ContPov {
		word, err := positionHatWord(pos, pov)
		if err != nil {
			return nil, err
		}
		*word = dir
	}
	for pov, dir := range c.DiscPov {
		if pov < 1 || pov > 4 {
			return nil, fmt.Errorf("discrete hat %d out of snapshot range 1-4", pov)
		}
		if dir < -1 || dir > 3 {
			return nil, fmt.Errorf("discrete hat direction %d out of range -1..3", dir)
		}
		// Discrete hats pack four to the first word, one nibble each,
		// 0xF neutral.
		shift := uint32(pov-1) * 4
		pos.Hats = pos.Hats&^(0xF<<shift) | (uint32(dir)&0xF)<<shift
	}
	return pos, nil
}

func positionAxisField(pos *vjoy.Position, name string) (*int32, error) {
	switch name {
	case "x":
		return &pos.AxisX, nil
	case "y":
		return &pos.AxisY, nil
	case "z":
		return &pos.AxisZ, nil
	case "rx":
		return &pos.AxisXRot, nil
	case "ry":
		return &pos.AxisYRot, nil
	case "rz":
		return &pos.AxisZRot, nil
	case "sl0":
		return &pos.Slider, nil
	case "sl1":
		return &pos.Dial, nil
	case "whl":
		return &pos.Wheel, nil
	case "pov":
		return nil, fmt.Errorf("axis pov has no snapshot slot; use --cont-pov")
	}
	if _, err := axisUsageFromName(name); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("axis %q has no snapshot slot", name)
}

func positionHatWord(pos *vjoy.Position, pov uint8) (*uint32, error) {
	switch pov {
	case 1:
		return &pos.Hats, nil
	case 2:
		return &pos.HatsEx1, nil
	case 3:
		return &pos.HatsEx2, nil
	case 4:
		return &pos.HatsEx3, nil
	}
	return nil, fmt.Errorf("continuous hat %d out of snapshot range 1-4", pov)
}
