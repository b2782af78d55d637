// Package config defines the command-line/config-file surface shared by
// this module's executables, loaded through Kong from flags, environment
// variables and JSON/YAML/TOML configuration files, in that priority order.
package config

import "time"

// CLI is the root command structure parsed by Kong. It has no
// subcommands: every executable built on it does one thing, selected by
// its flags.
type CLI struct {
	Config    string    `help:"Load configuration from this JSON/YAML/TOML file" env:"PSVR_CONFIG"`
	Log       Log       `embed:"" prefix:"log."`
	Discovery Discovery `embed:"" prefix:"discovery."`
}

// Log controls the shared slog logger every executable sets up on startup.
type Log struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"PSVR_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of stdout/stderr" env:"PSVR_LOG_FILE"`
	RawFile string `help:"Write a hex trace of every HID frame to this file" env:"PSVR_RAW_LOG_FILE"`
}

// Discovery controls how the device is located on the USB bus.
type Discovery struct {
	VendorID    uint16        `help:"Override the PSVR's USB vendor ID" default:"1356" env:"PSVR_VENDOR_ID"`
	ProductID   uint16        `help:"Override the PSVR's USB product ID" default:"2479" env:"PSVR_PRODUCT_ID"`
	ReadTimeout time.Duration `help:"Sensor read timeout" default:"250ms" env:"PSVR_READ_TIMEOUT"`
}
