package cmd

import (
	"errors"
	"log/slog"
)

// Reset restores device state. --all resets every configured slot in one
// native call; otherwise a device id is required and --buttons/--povs narrow
// the reset to those controls.
type Reset struct {
	libraryFlag
	Device  uint32 `arg:"" optional:"" help:"Device id (1-based)"`
	All     bool   `help:"Reset every device" xor:"scope"`
	Buttons bool   `help:"Only release all buttons"`
	Povs    bool   `help:"Only center all hat switches"`
}

func (c *Reset) Run(logger *slog.Logger) error {
	lib, err := c.open()
	if err != nil {
		return err
	}

	if c.All {
		lib.ResetAll()
		logger.Info("all devices reset")
		return nil
	}
	if c.Device == 0 {
		return errors.New("a device id (or --all) is required")
	}

	switch {
	case c.Buttons:
		err = lib.ResetButtons(c.Device)
	case c.Povs:
		err = lib.ResetPovs(c.Device)
	default:
		err = lib.Reset(c.Device)
	}
	if err != nil {
		return err
	}
	logger.Info("device reset", "device", c.Device, "buttons_only", c.Buttons, "povs_only", c.Povs)
	return nil
}
