package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vjoyd/vjoyd/internal/log"
	"github.com/vjoyd/vjoyd/vjoy"
)

// Monitor acquires an FFB-capable device, registers the process FFB
// callback and logs every report until interrupted. Reports with a type
// code outside the known set are skipped with a warning, per-report data is
// copied out of driver memory before the callback returns.
type Monitor struct {
	libraryFlag
	Device uint32 `arg:"" help:"FFB-capable device id (1-based)"`
}

func (c *Monitor) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lib, err := c.open()
	if err != nil {
		return err
	}
	if !lib.IsDeviceFfb(c.Device) {
		return fmt.Errorf("device %d is not configured for force feedback", c.Device)
	}
	if err := lib.Acquire(c.Device); err != nil {
		return err
	}
	defer lib.Relinquish(c.Device)

	// Runs on a driver-owned thread; everything it touches (slog handlers,
	// the raw logger) is safe for concurrent use.
	lib.RegisterFFB(func(data, userdata uintptr) {
		env := vjoy.FFBDataAt(data)
		if env == nil {
			return
		}
		payload := env.Payload()

		pt, err := lib.DecodePacketType(data)
		if err != nil {
			logger.Warn("skipping malformed ffb report", "error", err)
			return
		}
		logger.Info("ffb report",
			"device", c.Device,
			"type", pt.String(),
			"cmd", env.Cmd,
			"payload_len", len(payload),
			"feature", pt.IsFeature(),
		)
		rawLogger.Log(pt.String(), payload)
	}, c.Device)

	logger.Info("monitoring ffb reports", "device", c.Device)
	<-ctx.Done()
	logger.Info("stopping")
	return nil
}
