// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1315

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"sync"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	_CHARGEPUMP         = 0x8D
	_COLUMNADDR         = 0x21
	_COMSCANDEC         = 0xC8
	_COMSCANINC         = 0xC0
	_DEACTIVATE_SCROLL  = 0x2E
	_DISPLAYOFF         = 0xAE
	_DISPLAYON          = 0xAF
	_INVERTDISPLAY      = 0xA7
	_MEMORYMODE         = 0x20
	_NORMALDISPLAY      = 0xA6
	_PAGEADDR           = 0x22
	_SEGREMAP           = 0xA0
	_SETCOMPINS         = 0xDA
	_SETCONTRAST        = 0x81
	_SETDISPLAYCLOCKDIV = 0xD5
	_SETDISPLAYOFFSET   = 0xD3
	_SETMULTIPLEX       = 0xA8
	_SETPRECHARGE       = 0xD9
	_SETSEGMENTREMAP    = 0xA1
	_SETSTARTLINE       = 0x40
	_SETVCOMDETECT      = 0xDB
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:        128,
	H:        64,
	Addr:     0x3c,
	Contrast: 0xCF,
	Timeout:  time.Second,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	H int
	// The I²C address of the display, 0x3C or 0x3D depending on the SA0 pin.
	Addr uint16
	// Sequential corresponds to the Sequential/Alternative COM pin configuration
	// in the OLED panel hardware. Try toggling this if every other row appears
	// to be missing.
	Sequential bool
	// MirrorVertical corresponds to the COM remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped vertically.
	MirrorVertical bool
	// MirrorHorizontal corresponds to the SEG remap configuration in the OLED
	// panel hardware. Try toggling this if the display is flipped horizontally.
	MirrorHorizontal bool
	// Contrast is sent during initialization. 0 selects 0xCF.
	Contrast byte
	// Timeout bounds every bus transaction. 0 selects one second.
	Timeout time.Duration
	// Mirror, when set, receives a copy of the framebuffer after every
	// successful Flush.
	Mirror display.Drawer
	// Logger receives the non fatal conditions. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1315 display
// controller.
//
// The bus should run at 400kHz; the driver does not change the bus speed.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts.Addr == 0x00 {
		opts.Addr = DefaultOpts.Addr
	}
	return New(&i2cTransport{b: b}, opts)
}

// NewSPI returns a Dev object that communicates over 4-wire SPI to a SSD1315
// display controller.
//
// Connect SDA to SPI_MOSI, SCK to SPI_CLK, CS to SPI_CS and D/C# to dc.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, fmt.Errorf("ssd1315: a D/C# pin is required")
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, err
	}
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return New(&spiTransport{c: c, dc: dc}, opts)
}

// New returns a Dev object that talks to the controller through t and
// initializes the display.
func New(t Transport, opts *Opts) (*Dev, error) {
	if opts.W < 8 || opts.W > 128 || opts.W&7 != 0 {
		return nil, fmt.Errorf("ssd1315: invalid width %d", opts.W)
	}
	if opts.H < 8 || opts.H > 64 || opts.H&7 != 0 {
		return nil, fmt.Errorf("ssd1315: invalid height %d", opts.H)
	}
	o := *opts
	if o.Contrast == 0 {
		o.Contrast = DefaultOpts.Contrast
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultOpts.Timeout
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dev{
		t:       t,
		addr:    o.Addr,
		timeout: o.Timeout,
		mirror:  o.Mirror,
		logger:  logger.With("dev", "ssd1315"),
		rect:    image.Rect(0, 0, o.W, o.H),
		fb:      NewFramebuffer(o.W, o.H),
		opts:    o,
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Dev is an open handle to the display controller.
//
// It owns the framebuffer. SetPixel and ClearBuffer only touch memory; Flush
// pushes the whole framebuffer to the device.
type Dev struct {
	// Communication
	t       Transport
	addr    uint16
	timeout time.Duration
	mirror  display.Drawer
	logger  *slog.Logger
	opts    Opts

	// Display size controlled by the SSD1315.
	rect image.Rectangle

	// mu serializes framebuffer mutations with the multi-page flush.
	mu     sync.Mutex
	fb     *Framebuffer
	halted bool
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1315.Dev{%v, %s}", d.t, d.rect.Max)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// It copies src into the framebuffer and flushes it. The previous content
// outside of r is kept.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	d.mu.Lock()
	draw.Src.Draw(d.fb, r, src, sp)
	d.mu.Unlock()
	return d.Flush()
}

// Framebuffer returns the in-memory framebuffer.
//
// Writes done directly to it bypass the device lock.
func (d *Dev) Framebuffer() *Framebuffer {
	return d.fb
}

// Init sends the power-on command sequence.
//
// It is called by the constructors; call it again after an external reset of
// the controller.
func (d *Dev) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.halted = false
	return d.sendCommand(getInitCmd(&d.opts))
}

func getInitCmd(opts *Opts) []byte {
	// Column address 127 is mapped to SEG0 and COM is scanned from COM[N-1]
	// to COM0 unless mirrored.
	segRemap := byte(_SETSEGMENTREMAP)
	if opts.MirrorHorizontal {
		segRemap = _SEGREMAP
	}
	comScan := byte(_COMSCANDEC)
	if opts.MirrorVertical {
		comScan = _COMSCANINC
	}
	hwLayout := byte(0x12)
	if opts.Sequential {
		hwLayout = 0x02
	}
	return []byte{
		_DISPLAYOFF,
		_SETDISPLAYCLOCKDIV, 0x80, // Suggested ratio; power on reset value
		_SETMULTIPLEX, byte(opts.H - 1),
		_SETDISPLAYOFFSET, 0x00,
		_SETSTARTLINE | 0x00,
		_CHARGEPUMP, 0x14, // Enable charge pump
		_MEMORYMODE, 0x00, // Horizontal addressing
		segRemap,
		comScan,
		_SETCOMPINS, hwLayout,
		_SETCONTRAST, opts.Contrast,
		_SETPRECHARGE, 0xF1,
		_SETVCOMDETECT, 0x40,
		_DEACTIVATE_SCROLL,
		_DISPLAYON,
	}
}

// ClearPhysical zeroes the display RAM of the controller.
//
// The framebuffer is left untouched, so the next Flush restores its content.
func (d *Dev) ClearPhysical() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	pages := d.fb.Pages()
	if err := d.sendCommand([]byte{
		_COLUMNADDR, 0, byte(d.rect.Dx() - 1),
		_PAGEADDR, 0, byte(pages - 1),
	}); err != nil {
		return err
	}
	zero := make([]byte, d.rect.Dx())
	for range pages {
		if err := d.sendData(zero); err != nil {
			return err
		}
	}
	return nil
}

// ClearBuffer zeroes the framebuffer. No I/O is done.
func (d *Dev) ClearBuffer() {
	d.mu.Lock()
	d.fb.Clear()
	d.mu.Unlock()
}

// SetPixel turns the pixel at (x, y) on or off in the framebuffer.
//
// Out of range coordinates are logged and ignored. No I/O is done; call
// Flush to make the change visible.
func (d *Dev) SetPixel(x, y int, on bool) {
	d.mu.Lock()
	ok := d.fb.Plot(x, y, on)
	d.mu.Unlock()
	if !ok {
		d.logger.Debug("pixel out of bounds", "x", x, "y", y)
	}
}

// Flush sends the whole framebuffer to the device, one page per data
// transaction.
func (d *Dev) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	lastCol := byte(d.rect.Dx() - 1)
	for page := range d.fb.Pages() {
		p := byte(page)
		if err := d.sendCommand([]byte{_COLUMNADDR, 0, lastCol, _PAGEADDR, p, p}); err != nil {
			return err
		}
		if err := d.sendData(d.fb.Page(page)); err != nil {
			return err
		}
	}
	if d.mirror != nil {
		if err := d.mirror.Draw(d.rect, d.fb, image.Point{}); err != nil {
			d.logger.Warn("mirror draw failed", "mirror", d.mirror.String(), "err", err)
		}
	}
	return nil
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sendCommand([]byte{_SETCONTRAST, level})
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	b := []byte{_NORMALDISPLAY}
	if blackOnWhite {
		b[0] = _INVERTDISPLAY
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sendCommand(b)
}

// Halt turns off the display.
//
// Sending any other command afterward reenables the display.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.t.Write(d.addr, i2cCmd, []byte{_DISPLAYOFF}, d.timeout); err != nil {
		return fmt.Errorf("ssd1315: command write: %w", err)
	}
	d.halted = true
	return nil
}

func (d *Dev) sendData(c []byte) error {
	if d.halted {
		// Transparently enable the display.
		if err := d.sendCommand(nil); err != nil {
			return err
		}
	}
	if err := d.t.Write(d.addr, i2cData, c, d.timeout); err != nil {
		return fmt.Errorf("ssd1315: data write: %w", err)
	}
	return nil
}

func (d *Dev) sendCommand(c []byte) error {
	if d.halted {
		// Transparently enable the display.
		c = append([]byte{_DISPLAYON}, c...)
	}
	if err := d.t.Write(d.addr, i2cCmd, c, d.timeout); err != nil {
		return fmt.Errorf("ssd1315: command write: %w", err)
	}
	d.halted = false
	return nil
}

var _ display.Drawer = &Dev{}
