// Package board describes the peripherals of the board under bring-up.
package board

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/bringup/pkg/gnss"
	"github.com/robotalks/bringup/pkg/ubx"
)

// SPIConfig selects an SPI device.
type SPIConfig struct {
	// Port is the periph port name, empty for the first one.
	Port    string `yaml:"port"`
	SpeedHz int64  `yaml:"speed_hz"`
	Mode    int    `yaml:"mode"`
}

// GNSSConfig describes the u-blox receiver.
type GNSSConfig struct {
	SPI         SPIConfig `yaml:"spi"`
	ChunkSize   int       `yaml:"chunk_size"`
	MaxAttempts int       `yaml:"max_attempts"`
	Capacity    int       `yaml:"capacity"`
	// Serial is the UART carrying NMEA, e.g. /dev/ttyACM0.
	Serial string           `yaml:"serial"`
	Port   gnss.PortOptions `yaml:"port"`
	// ReadyTimeout bounds waiting for the device.
	ReadyTimeout time.Duration `yaml:"ready_timeout"`
}

// EEPROMConfig describes the boot counter storage. File takes precedence
// over the I2C part.
type EEPROMConfig struct {
	Bus      string `yaml:"bus"`
	Addr     uint16 `yaml:"addr"`
	Size     int    `yaml:"size"`
	PageSize int    `yaml:"page_size"`
	File     string `yaml:"file"`
	Offset   int64  `yaml:"offset"`
}

// UWBConfig describes the UWB transceiver.
type UWBConfig struct {
	SPI SPIConfig `yaml:"spi"`
}

// Config is the board description.
type Config struct {
	ID     string       `yaml:"id"`
	GNSS   GNSSConfig   `yaml:"gnss"`
	EEPROM EEPROMConfig `yaml:"eeprom"`
	UWB    UWBConfig    `yaml:"uwb"`

	// ReportURL specifies where reports go.
	// e.g. mqtt://host:port/topic-prefix, ws://host/path, file:///path or -
	ReportURL string `yaml:"report"`
}

var defaultConfig = Config{
	GNSS: GNSSConfig{
		SPI:          SPIConfig{SpeedHz: 1000000},
		ChunkSize:    ubx.DefaultChunkSize,
		MaxAttempts:  ubx.DefaultMaxAttempts,
		Capacity:     ubx.DefaultCapacity,
		ReadyTimeout: time.Second,
	},
	EEPROM: EEPROMConfig{
		Addr:     0x50,
		Size:     256,
		PageSize: 8,
	},
	UWB: UWBConfig{
		SPI: SPIConfig{SpeedHz: 2000000},
	},
}

func init() {
	if val := os.Getenv("BRINGUP_BOARD"); val != "" {
		if err := LoadFile(val, &defaultConfig); err != nil {
			log.Fatalln(err)
		}
	}
	if val := os.Getenv("BRINGUP_ID"); val != "" {
		defaultConfig.ID = val
	}
	if val := os.Getenv("BRINGUP_REPORT_URL"); val != "" {
		defaultConfig.ReportURL = val
	}
}

// Load decodes a YAML board description on top of conf.
func Load(data []byte, conf *Config) error {
	if err := yaml.Unmarshal(data, conf); err != nil {
		return fmt.Errorf("invalid board config: %w", err)
	}
	return nil
}

// LoadFile reads a YAML board description on top of conf.
func LoadFile(path string, conf *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Load(data, conf); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

type fileFlag struct {
	path string
	conf *Config
}

func (f *fileFlag) String() string {
	return f.path
}

func (f *fileFlag) Set(path string) error {
	f.path = path
	return LoadFile(path, f.conf)
}

// SetupFlags sets command line flags. The board file is applied when
// -board is parsed, so flags after it override its values.
func SetupFlags() {
	flag.Var(&fileFlag{conf: &defaultConfig}, "board", "Board description file (YAML)")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Board ID, machine ID if empty")
	flag.StringVar(&defaultConfig.ReportURL, "report", defaultConfig.ReportURL, "Report sink URL")
	flag.StringVar(&defaultConfig.GNSS.SPI.Port, "gnss-spi", defaultConfig.GNSS.SPI.Port, "SPI port of GNSS receiver")
	flag.Int64Var(&defaultConfig.GNSS.SPI.SpeedHz, "gnss-spi-hz", defaultConfig.GNSS.SPI.SpeedHz, "SPI clock of GNSS receiver")
	flag.IntVar(&defaultConfig.GNSS.MaxAttempts, "gnss-attempts", defaultConfig.GNSS.MaxAttempts, "SPI transfers before giving up")
	flag.StringVar(&defaultConfig.GNSS.Serial, "gnss-serial", defaultConfig.GNSS.Serial, "Serial device of NMEA output")
	flag.IntVar(&defaultConfig.GNSS.Port.BaudRate, "gnss-baud", defaultConfig.GNSS.Port.BaudRate, "Baud rate of NMEA output")
	flag.StringVar(&defaultConfig.EEPROM.Bus, "eeprom-bus", defaultConfig.EEPROM.Bus, "I2C bus of EEPROM")
	flag.StringVar(&defaultConfig.EEPROM.File, "eeprom-file", defaultConfig.EEPROM.File, "Emulate EEPROM with a file")
	flag.IntVar(&defaultConfig.EEPROM.Size, "eeprom-size", defaultConfig.EEPROM.Size, "EEPROM size in bytes")
	flag.StringVar(&defaultConfig.UWB.SPI.Port, "uwb-spi", defaultConfig.UWB.SPI.Port, "SPI port of UWB transceiver")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	if conf.ID == "" {
		conf.ID = MachineID()
	}
	return &conf
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("board id must be specified")
	}
	if c.GNSS.SPI.Mode < 0 || c.GNSS.SPI.Mode > 3 || c.UWB.SPI.Mode < 0 || c.UWB.SPI.Mode > 3 {
		return fmt.Errorf("invalid SPI mode")
	}
	if c.EEPROM.Size <= 0 {
		return fmt.Errorf("invalid EEPROM size %d", c.EEPROM.Size)
	}
	return nil
}

// MustValidate validates the config and fails on error.
func (c *Config) MustValidate() *Config {
	if err := c.Validate(); err != nil {
		log.Fatalln(err)
	}
	return c
}

// YAML encodes the config.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
