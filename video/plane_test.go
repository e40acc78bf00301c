package video

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user-none/emarc/logger"
)

func makeTestPlanes() *PlaneFramebuffer {
	return NewPlaneFramebuffer(PlaneConfig{
		Planes:    3,
		PlaneSize: 0x2000,
		Height:    256,
		BaseColor: 48,
	})
}

func TestPlaneFramebuffer_Geometry(t *testing.T) {
	p := makeTestPlanes()
	assert.Equal(t, 256, p.Config().Width())
	assert.Equal(t, 256, p.Pixels().Rect.Dx())
	assert.Equal(t, 256, p.Pixels().Rect.Dy())
	assert.Equal(t, uint16(48), p.PenAt(100, 100))
}

func TestPlaneFramebuffer_MergesPlanes(t *testing.T) {
	p := makeTestPlanes()
	p.WritePlane(0, 0x00, 0)
	p.WritePlane(0, 0x00, 1)
	p.WritePlane(0, 0x01, 2)

	// bit 0 is the first column; plane 2 sets merged bit 2
	assert.Equal(t, uint16(48+4), p.PenAt(0, 0))
	assert.Equal(t, uint16(48), p.PenAt(1, 0))

	p.WritePlane(0, 0x03, 0)
	assert.Equal(t, uint16(48+5), p.PenAt(0, 0))
	assert.Equal(t, uint16(48+1), p.PenAt(1, 0))
}

func TestPlaneFramebuffer_Addressing(t *testing.T) {
	p := makeTestPlanes()
	// offset 257 is row 1 of the second 8-pixel column
	p.WritePlane(257, 0x80, 1)
	assert.Equal(t, uint16(48+2), p.PenAt(8+7, 1))
	assert.Equal(t, uint8(0x80), p.ReadPlane(257, 1))
}

func TestPlaneFramebuffer_FlipReexpands(t *testing.T) {
	p := makeTestPlanes()
	p.WritePlane(0, 0x01, 2)
	p.WritePlane(257, 0x80, 1)

	p.SetFlip(true)
	assert.Equal(t, uint16(48+4), p.PenAt(255, 255))
	assert.Equal(t, uint16(48+2), p.PenAt(255-15, 254))
	assert.Equal(t, uint16(48), p.PenAt(0, 0))

	// writes while flipped land in flipped coordinates
	p.WritePlane(1, 0x01, 0)
	assert.Equal(t, uint16(48+1), p.PenAt(255, 254))

	p.SetFlip(false)
	assert.Equal(t, uint16(48+4), p.PenAt(0, 0))
	assert.Equal(t, uint16(48+1), p.PenAt(0, 1))
}

func TestPlaneFramebuffer_ColorBank(t *testing.T) {
	p := makeTestPlanes()
	p.WritePlane(0, 0x01, 2)

	p.SetColorBank(2)
	assert.Equal(t, uint16(48+16), p.TransparentPen())
	assert.Equal(t, uint16(48+16+4), p.PenAt(0, 0))
	assert.Equal(t, uint16(48+16), p.PenAt(1, 0))
}

func TestPlaneFramebuffer_BadPlaneIgnored(t *testing.T) {
	logger.Clear()
	p := makeTestPlanes()

	p.WritePlane(0, 0xff, 3)
	assert.Equal(t, uint16(48), p.PenAt(0, 0))
	assert.Equal(t, uint8(0), p.ReadPlane(0, 3))

	entries := logger.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "video", entries[0].Tag)
}

func TestPlaneFramebuffer_BadPlaneLoggedOnce(t *testing.T) {
	logger.Clear()
	var sb strings.Builder
	logger.SetEcho(&sb)
	defer logger.SetEcho(nil)

	p := makeTestPlanes()
	for offs := 0; offs < p.Config().PlaneSize; offs++ {
		p.WritePlane(offs, 0xff, 3)
	}

	assert.Equal(t, 1, strings.Count(sb.String(), "\n"))
	entries := logger.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, p.Config().PlaneSize-1, entries[0].Repeated)

	// another plane is a different condition
	p.WritePlane(0, 0xff, 4)
	assert.Equal(t, 2, strings.Count(sb.String(), "\n"))
}

func TestPlaneFramebuffer_BlitTransparent(t *testing.T) {
	p := makeTestPlanes()
	p.SetColorBank(1)
	p.WritePlane(0, 0x01, 0)

	dst := NewBitmap(256, 256)
	dst.Fill(dst.Bounds(), 7)
	p.Blit(dst, dst.Bounds())

	assert.Equal(t, uint16(48+8+1), dst.PenAt(0, 0))
	assert.Equal(t, uint16(7), dst.PenAt(1, 0))
}

func TestPlaneFramebuffer_Restore(t *testing.T) {
	a := makeTestPlanes()
	a.WritePlane(10, 0x55, 0)
	a.WritePlane(300, 0xaa, 2)
	a.SetFlip(true)
	a.SetColorBank(3)

	b := makeTestPlanes()
	b.Restore(a.RAM(), a.Flip(), a.ColorBank())
	assert.Equal(t, a.Pixels().Pix, b.Pixels().Pix)
}
