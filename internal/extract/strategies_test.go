package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedongPDFReader_RejectsGarbage(t *testing.T) {
	_, err := NewPDFTextReader().ReadText(context.Background(), []byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestPDFCPURasterizer_RejectsGarbage(t *testing.T) {
	_, err := NewPDFCPURasterizer().Rasterize(context.Background(), []byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestStrategies_HonourCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPDFTextReader().ReadText(ctx, []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewPDFCPURasterizer().Rasterize(ctx, []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewDocconvReader().ReadDocx(ctx, []byte("PK"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewDocconvReader().ReadDoc(ctx, []byte{0xD0})
	assert.ErrorIs(t, err, context.Canceled)
}
