package board

import (
	"context"
	"io"

	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"

	"github.com/robotalks/bringup/pkg/bus"
	"github.com/robotalks/bringup/pkg/eeprom"
	"github.com/robotalks/bringup/pkg/gnss"
	"github.com/robotalks/bringup/pkg/ubx"
)

// Open opens the SPI device.
func (c SPIConfig) Open() (*bus.SPI, error) {
	return bus.OpenSPI(c.Port, physic.Frequency(c.SpeedHz)*physic.Hertz, spi.Mode(c.Mode))
}

// Reassembler creates a Reassembler polling t with the configured limits.
func (c GNSSConfig) Reassembler(t ubx.Transceiver) *ubx.Reassembler {
	r := ubx.NewReassembler(t)
	if c.ChunkSize > 0 {
		r.ChunkSize = c.ChunkSize
	}
	if c.MaxAttempts > 0 {
		r.MaxAttempts = c.MaxAttempts
	}
	if c.Capacity > 0 {
		r.Capacity = c.Capacity
	}
	return r
}

// OpenSPI opens the receiver and waits until a transfer succeeds.
func (c GNSSConfig) OpenSPI(ctx context.Context) (*bus.SPI, error) {
	dev, err := c.SPI.Open()
	if err != nil {
		return nil, err
	}
	if c.ReadyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.ReadyTimeout)
		defer cancel()
	}
	probe := make([]byte, 1)
	if err := bus.WaitReady(ctx, bus.DefaultPollInterval, func() error {
		return dev.Tx(nil, probe)
	}); err != nil {
		dev.Close()
		return nil, err
	}
	return dev, nil
}

// OpenSerial opens the NMEA UART.
func (c GNSSConfig) OpenSerial() (io.ReadCloser, error) {
	return gnss.OpenPort(c.Serial, c.Port)
}

// Open opens the EEPROM. The returned device must be closed.
func (c EEPROMConfig) Open() (eeprom.Device, io.Closer, error) {
	if c.File != "" {
		f, err := eeprom.OpenFile(c.File, c.Size)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
	b, err := bus.OpenI2C(c.Bus)
	if err != nil {
		return nil, nil, err
	}
	return eeprom.NewAT24(b, c.Addr, c.Size, c.PageSize), b, nil
}
