package cmd

import (
	"fmt"
	"log/slog"
)

// Info prints driver-level information: version, enabled flag and the
// identity strings (empty when the driver does not support a query).
type Info struct {
	libraryFlag
}

func (c *Info) Run(logger *slog.Logger) error {
	lib, err := c.open()
	if err != nil {
		return err
	}

	logger.Info("vjoy driver",
		"library", lib.Path(),
		"version", fmt.Sprintf("%#x", uint16(lib.Version())),
		"enabled", lib.Enabled(),
	)
	logger.Info("driver identity",
		"product", lib.ProductString(),
		"manufacturer", lib.ManufacturerString(),
		"serial", lib.SerialNumberString(),
	)
	return nil
}
