// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1315

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

const (
	i2cCmd  = 0x00 // Transaction has stream of command bytes
	i2cData = 0x40 // Transaction has stream of data bytes
)

// ErrTimeout is returned when a bus transaction did not complete in time.
var ErrTimeout = errors.New("ssd1315: bus transaction timed out")

// Transport carries one framed transaction to the controller.
//
// control is 0x00 for a command stream and 0x40 for a data stream. Write
// blocks until the transaction completed, failed or timeout elapsed. A zero
// timeout waits forever.
type Transport interface {
	Write(addr uint16, control byte, payload []byte, timeout time.Duration) error
}

// i2cTransport prefixes the payload with the control byte, as the
// controller expects on I²C.
type i2cTransport struct {
	b i2c.Bus
}

func (t *i2cTransport) String() string {
	return t.b.String()
}

func (t *i2cTransport) Write(addr uint16, control byte, payload []byte, timeout time.Duration) error {
	w := make([]byte, 1+len(payload))
	w[0] = control
	copy(w[1:], payload)
	return withTimeout(timeout, func() error {
		return t.b.Tx(addr, w, nil)
	})
}

// withTimeout runs tx and waits at most timeout for it. A zero timeout waits
// forever.
//
// Neither i2c.Bus nor spi.Conn can be cancelled; on timeout the transaction
// is abandoned and its result dropped.
func withTimeout(timeout time.Duration, tx func() error) error {
	if timeout <= 0 {
		return tx()
	}
	done := make(chan error, 1)
	go func() {
		done <- tx()
	}()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case err := <-done:
		return err
	case <-timer.C:
		return ErrTimeout
	}
}

// spiTransport drives the D/C# pin instead of sending a control byte.
type spiTransport struct {
	c  spi.Conn
	dc gpio.PinOut
}

func (t *spiTransport) String() string {
	return fmt.Sprintf("%s, %s", t.c, t.dc)
}

func (t *spiTransport) Write(_ uint16, control byte, payload []byte, timeout time.Duration) error {
	l := gpio.Low
	if control == i2cData {
		l = gpio.High
	}
	if err := t.dc.Out(l); err != nil {
		return err
	}
	// The payload may alias the framebuffer, which can change once an
	// abandoned transaction is left behind.
	w := append([]byte(nil), payload...)
	return withTimeout(timeout, func() error {
		return t.c.Tx(w, nil)
	})
}
