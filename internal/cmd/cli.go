// Package cmd holds the kong command tree for the vjoyd CLI.
package cmd

import (
	"fmt"

	"github.com/vjoyd/vjoyd/vjoy"
)

// LogConfig carries the logging flags shared by every command.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"VJOYD_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"VJOYD_LOG_FILE"`
	RawFile string `help:"Write raw FFB payload hex dumps to this file" env:"VJOYD_LOG_RAW_FILE"`
}

// CLI is the root of the command tree.
type CLI struct {
	ConfigFile string    `help:"Path to a configuration file" name:"config" env:"VJOYD_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Info    Info          `cmd:"" help:"Show driver version and identity strings"`
	Status  Status        `cmd:"" help:"Show device states, capabilities and axis ranges"`
	Set     Set           `cmd:"" help:"Acquire a device and inject axis/button/hat values"`
	Reset   Reset         `cmd:"" help:"Reset devices to their default state"`
	Monitor Monitor       `cmd:"" help:"Stream decoded FFB reports from a device"`
	Config  ConfigCommand `cmd:"" help:"Manage configuration files"`
}

// libraryFlag is embedded by every command that talks to the driver.
type libraryFlag struct {
	Library string `help:"Explicit path to the vJoy interface library (skips discovery)" env:"VJOYD_LIBRARY"`
}

// open loads the interface library, honoring the override flag. Failure here
// is the load-time failure class: callers surface it and exit.
func (f libraryFlag) open() (*vjoy.Library, error) {
	if f.Library != "" {
		return vjoy.OpenPath(f.Library)
	}
	return vjoy.Open()
}

// axisUsages maps flag names to HID usage codes, in display order.
var axisUsages = []struct {
	name  string
	usage uint32
}{
	{"x", vjoy.AxisX},
	{"y", vjoy.AxisY},
	{"z", vjoy.AxisZ},
	{"rx", vjoy.AxisRX},
	{"ry", vjoy.AxisRY},
	{"rz", vjoy.AxisRZ},
	{"sl0", vjoy.AxisSlider0},
	{"sl1", vjoy.AxisSlider1},
	{"whl", vjoy.AxisWheel},
	{"pov", vjoy.AxisPOV},
}

func axisUsageFromName(name string) (uint32, error) {
	for _, a := range axisUsages {
		if a.name == name {
			return a.usage, nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q (want one of x,y,z,rx,ry,rz,sl0,sl1,whl,pov)", name)
}
