package dispatch

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zxingpipe "github.com/ericlevine/zxingpipe"
	"github.com/ericlevine/zxingpipe/binarizer"
	"github.com/ericlevine/zxingpipe/internal/fixture"
)

// load resizes s to the canvas and copies the canvas in, the way a host
// fills the buffer.
func load(t *testing.T, s *Session, c *fixture.Canvas) {
	t.Helper()
	pix, err := s.Resize(c.Width, c.Height)
	require.NoError(t, err)
	copy(pix, c.Pix)
}

func TestResize(t *testing.T) {
	s := NewSession(nil)
	assert.Nil(t, s.Pixels())
	assert.Zero(t, s.Width())

	sizes := [][2]int{{1, 1}, {7, 3}, {640, 480}, {3, 7}}
	for _, size := range sizes {
		pix, err := s.Resize(size[0], size[1])
		require.NoError(t, err)
		assert.Len(t, pix, size[0]*size[1])
		assert.Len(t, s.Pixels(), size[0]*size[1])
		assert.Equal(t, size[0], s.Width())
		assert.Equal(t, size[1], s.Height())
	}
}

func TestResizeReplacesBuffer(t *testing.T) {
	s := NewSession(nil)
	old, err := s.Resize(10, 10)
	require.NoError(t, err)
	old[0] = 0xAB

	pix, err := s.Resize(20, 5)
	require.NoError(t, err)
	assert.Len(t, pix, 100)
	assert.Zero(t, pix[0], "a resized buffer starts zeroed")
	assert.NotSame(t, &old[0], &pix[0])
}

func TestResizeRejectsEmpty(t *testing.T) {
	s := NewSession(nil)
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 4}} {
		_, err := s.Resize(size[0], size[1])
		assert.ErrorIs(t, err, zxingpipe.ErrIllegalArgument)
	}
	assert.Equal(t, StatusUnclassified, s.DecodeQR())
}

func TestDecodeBeforeResize(t *testing.T) {
	sink := &Collector{}
	s := NewSession(sink)

	assert.Equal(t, StatusUnclassified, s.DecodeQR())
	assert.Equal(t, StatusUnclassified, s.DecodeAny())
	assert.Equal(t, StatusUnclassified, s.DecodeMulti())
	assert.Empty(t, sink.Emissions)

	_, err := s.Run(ModeQR)
	assert.ErrorIs(t, err, zxingpipe.ErrNoSource)
}

func TestDecodeQRHello(t *testing.T) {
	c := fixture.NewCanvas(160, 160)
	require.NoError(t, c.DrawQR("HELLO", 20, 20, 4))
	sink := &Collector{}
	s := NewSession(sink)
	load(t, s, c)

	require.Equal(t, StatusOK, s.DecodeQR())
	assert.Equal(t, []Emission{{Text: "HELLO", Length: 5, Index: 0, Total: 1}}, sink.Emissions)
}

func TestDecodeAnyFindsQR(t *testing.T) {
	c, err := fixture.QR("ANY FORMAT", 4)
	require.NoError(t, err)
	sink := &Collector{}
	s := NewSession(sink)
	load(t, s, c)

	require.Equal(t, StatusOK, s.DecodeAny())
	assert.Equal(t, []string{"ANY FORMAT"}, sink.Texts())
}

func TestDecodeAnyFindsDataMatrix(t *testing.T) {
	c, err := fixture.Symbol(zxingpipe.FormatDataMatrix, "DM-42", 4)
	require.NoError(t, err)
	sink := &Collector{}
	s := NewSession(sink)
	load(t, s, c)

	require.Equal(t, StatusOK, s.DecodeAny())
	assert.Equal(t, []string{"DM-42"}, sink.Texts())
}

func TestDecodeMultiTwoSymbols(t *testing.T) {
	c := fixture.NewCanvas(400, 240)
	require.NoError(t, c.DrawQR("HELLO", 10, 20, 4))
	require.NoError(t, c.DrawQR("WORLD", 180, 10, 7))
	sink := &Collector{}
	s := NewSession(sink)
	load(t, s, c)

	require.Equal(t, StatusOK, s.DecodeMulti())
	require.Len(t, sink.Emissions, 2)
	assert.ElementsMatch(t, []string{"HELLO", "WORLD"}, sink.Texts())
	for i, e := range sink.Emissions {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, 2, e.Total)
		assert.Equal(t, len(e.Text), e.Length)
	}
}

func TestDecodeNothingFound(t *testing.T) {
	fills := map[string]byte{"black": 0x00, "white": 0xFF}
	for name, fill := range fills {
		t.Run(name, func(t *testing.T) {
			c := fixture.NewCanvas(200, 200)
			c.Fill(fill)
			sink := &Collector{}
			s := NewSession(sink)
			load(t, s, c)

			assert.Equal(t, StatusReaderError, s.DecodeQR())
			assert.Equal(t, StatusReaderError, s.DecodeAny())
			assert.Equal(t, StatusReaderError, s.DecodeMulti())
			assert.Empty(t, sink.Emissions)
		})
	}
}

func TestDecodeFreshBuffer(t *testing.T) {
	sink := &Collector{}
	s := NewSession(sink)
	_, err := s.Resize(64, 48)
	require.NoError(t, err)

	assert.Equal(t, StatusReaderError, s.DecodeQR())
	assert.Empty(t, sink.Emissions)
}

func TestDecodeStatusPerErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"not found", zxingpipe.ErrNotFound, StatusReaderError},
		{"checksum", zxingpipe.ErrChecksum, StatusReaderError},
		{"format", zxingpipe.ErrFormat, StatusReaderError},
		{"illegal argument", zxingpipe.ErrIllegalArgument, StatusIllegalArgument},
		{"decode", zxingpipe.ErrDecode, StatusDecodeError},
		{"other", errors.New("out of memory"), StatusUnclassified},
		{"reader wins", errors.Join(zxingpipe.ErrDecode, zxingpipe.ErrIllegalArgument, zxingpipe.ErrNotFound), StatusReaderError},
		{"illegal argument before decode", errors.Join(zxingpipe.ErrDecode, zxingpipe.ErrIllegalArgument), StatusIllegalArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failing := func(*zxingpipe.BinaryBitmap, *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
				return []*zxingpipe.Result{zxingpipe.NewResult("partial", nil, nil, zxingpipe.FormatQRCode)}, tt.err
			}
			sink := &Collector{}
			s := NewSession(sink, WithStrategy(ModeAny, failing))
			_, err := s.Resize(8, 8)
			require.NoError(t, err)

			assert.Equal(t, tt.want, s.DecodeAny())
			assert.Empty(t, sink.Emissions, "nothing is emitted on failure")
		})
	}
}

func TestDecodeRecoversPanic(t *testing.T) {
	boom := func(*zxingpipe.BinaryBitmap, *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
		panic("index out of range")
	}
	s := NewSession(nil, WithStrategy(ModeQR, boom))
	_, err := s.Resize(8, 8)
	require.NoError(t, err)

	assert.Equal(t, StatusUnclassified, s.DecodeQR())
	_, err = s.Run(ModeQR)
	assert.ErrorIs(t, err, zxingpipe.ErrPanic)
}

func TestDecodeEmptySuccess(t *testing.T) {
	none := func(*zxingpipe.BinaryBitmap, *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
		return nil, nil
	}
	sink := &Collector{}
	s := NewSession(sink, WithStrategy(ModeMulti, none))
	_, err := s.Resize(8, 8)
	require.NoError(t, err)

	assert.Equal(t, StatusOK, s.DecodeMulti())
	assert.Empty(t, sink.Emissions)
}

func TestDecodeEmitsInOrder(t *testing.T) {
	three := func(*zxingpipe.BinaryBitmap, *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
		return []*zxingpipe.Result{
			zxingpipe.NewResult("first", nil, nil, zxingpipe.FormatQRCode),
			zxingpipe.NewResult("second", nil, nil, zxingpipe.FormatQRCode),
			zxingpipe.NewResult("third", nil, nil, zxingpipe.FormatQRCode),
		}, nil
	}
	sink := &Collector{}
	s := NewSession(sink, WithStrategy(ModeMulti, three))
	_, err := s.Resize(8, 8)
	require.NoError(t, err)

	require.Equal(t, StatusOK, s.DecodeMulti())
	assert.Equal(t, []Emission{
		{Text: "first", Length: 5, Index: 0, Total: 3},
		{Text: "second", Length: 6, Index: 1, Total: 3},
		{Text: "third", Length: 5, Index: 2, Total: 3},
	}, sink.Emissions)
}

func TestOptionsReachStrategy(t *testing.T) {
	var (
		gotOpts      *zxingpipe.DecodeOptions
		gotBinarizer zxingpipe.Binarizer
	)
	spy := func(image *zxingpipe.BinaryBitmap, opts *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
		gotOpts = opts
		gotBinarizer = image.Binarizer()
		return nil, nil
	}
	passthrough, err := binarizer.ByName("passthrough")
	require.NoError(t, err)
	s := NewSession(nil,
		WithStrategy(ModeQR, spy),
		WithBinarizer(passthrough),
		WithDecodeOptions(&zxingpipe.DecodeOptions{TryHarder: true}))
	_, err = s.Resize(4, 4)
	require.NoError(t, err)

	require.Equal(t, StatusOK, s.DecodeQR())
	assert.True(t, gotOpts.TryHarder)
	assert.IsType(t, &binarizer.Passthrough{}, gotBinarizer)
}

func TestDefaultBinarizerIsHybrid(t *testing.T) {
	var got zxingpipe.Binarizer
	spy := func(image *zxingpipe.BinaryBitmap, _ *zxingpipe.DecodeOptions) ([]*zxingpipe.Result, error) {
		got = image.Binarizer()
		return nil, nil
	}
	s := NewSession(nil, WithStrategy(ModeAny, spy))
	_, err := s.Resize(4, 4)
	require.NoError(t, err)

	require.Equal(t, StatusOK, s.DecodeAny())
	assert.IsType(t, &binarizer.Hybrid{}, got)
}

func TestDecodeLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSession(nil, WithLogger(logger))
	_, err := s.Resize(64, 64)
	require.NoError(t, err)

	require.Equal(t, StatusReaderError, s.DecodeQR())
	assert.Contains(t, buf.String(), "decode failed")
	assert.Contains(t, buf.String(), "mode=qr")
	assert.Contains(t, buf.String(), "kind=reader")
	assert.Contains(t, buf.String(), "status=-2")
}

func TestUnknownMode(t *testing.T) {
	s := NewSession(nil)
	_, err := s.Resize(4, 4)
	require.NoError(t, err)
	assert.Equal(t, StatusIllegalArgument, s.Decode(DecodeMode(9)))
}
