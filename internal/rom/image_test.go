package rom

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func testImage(t *testing.T) *Image {
	t.Helper()
	img, err := NewImage(make([]byte, Size))
	assert.NoError(t, err)
	return img
}

func TestNewImageSizeMismatch(t *testing.T) {
	_, err := NewImage(make([]byte, Size-1))
	var malformed *MalformedInputError
	assert.True(t, errors.As(err, &malformed))
}

func TestNewImageCopiesBuffer(t *testing.T) {
	buf := make([]byte, Size)
	img, err := NewImage(buf)
	assert.NoError(t, err)

	buf[0] = 0xaa
	got, err := img.ReadAt(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), got[0])
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want int
	}{
		{name: "first bank start", addr: Addr{Bank: 0x20, CPU: 0xe000}, want: 0x0},
		{name: "first bank offset", addr: Addr{Bank: 0x20, CPU: 0xe062}, want: 0x062},
		{name: "data bank", addr: Addr{Bank: 0x22, CPU: 0x4711}, want: 0x4711},
		{name: "spare bank", addr: Addr{Bank: 0x48, CPU: 0x5e40}, want: 0x51e40},
		{name: "window wraps slot bits", addr: Addr{Bank: 0x21, CPU: 0x4a30}, want: 0x2a30},
	}

	img := testImage(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := img.Translate(tt.addr)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateWithoutBankContext(t *testing.T) {
	img := testImage(t)
	_, err := img.Translate(Addr{CPU: 0x4000})
	assert.True(t, errors.Is(err, ErrBankAmbiguous))
}

func TestTranslateOutOfBounds(t *testing.T) {
	img := testImage(t)
	_, err := img.Translate(Addr{Bank: 0x50, CPU: 0x4000})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestReadWriteCPU(t *testing.T) {
	img := testImage(t)
	addr := Addr{Bank: 0x22, CPU: 0x4710}

	assert.NoError(t, img.WriteCPU(addr, []byte{0xa2, 0x03}))
	got, err := img.ReadCPU(addr, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xa2, 0x03}, got)

	phys, err := img.ReadAt(0x4710, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xa2, 0x03}, phys)
}

func TestAccessCrossingBankEnd(t *testing.T) {
	img := testImage(t)
	addr := Addr{Bank: 0x20, CPU: 0xfffe}

	err := img.WriteCPU(addr, []byte{1, 2, 3})
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = img.ReadCPU(addr, 3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestReadWriteAtBounds(t *testing.T) {
	img := testImage(t)

	_, err := img.ReadAt(Size-1, 2)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	err = img.WriteAt(-1, []byte{1})
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestBytesReturnsCopy(t *testing.T) {
	img := testImage(t)
	out := img.Bytes()
	out[0] = 0xaa

	got, err := img.ReadAt(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), got[0])
}
