//go:build js && wasm

// Command zxingwasm exposes a decode session to JavaScript.
//
// It installs a ZXing global with these functions:
//
//	ZXing.resize(width, height[, pixels]) -> status
//	ZXing.write_pixels(pixels) -> bytes copied
//	ZXing.decode_qr() -> status
//	ZXing.decode_any() -> status
//	ZXing.decode_multi() -> status
//
// Results are delivered by calling ZXing.decode_callback(text, length,
// index, total), which the page must define before decoding. text is a
// Uint8Array in the configured output charset.
//
// resize returns a status code, not a pointer into wasm memory: Go owns the
// pixel buffer, so the page hands its greyscale bytes over either as the
// third resize argument or through write_pixels after every change. Writes
// to the page's own array are not seen until they are copied in again.
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/ericlevine/zxingpipe/binarizer"
	"github.com/ericlevine/zxingpipe/dispatch"
	"github.com/ericlevine/zxingpipe/internal/config"
)

type host struct {
	global  js.Value
	session *dispatch.Session
}

func main() {
	cfg, err := config.Parse(envOptions())
	if err != nil {
		slog.Error("invalid configuration, using defaults", "error", err)
		cfg = config.Config{Binarizer: binarizer.NameHybrid, OutputCharset: "UTF-8", LogFormat: config.LogFormatText}
	}
	logger := cfg.Logger(os.Stderr)
	factory, _ := binarizer.ByName(cfg.Binarizer)

	global := js.Global().Get("Object").New()
	h := &host{global: global}
	h.session = dispatch.NewSession(
		dispatch.NewEncodingSink(dispatch.SinkFunc(h.emit), cfg.OutputCharset, logger),
		dispatch.WithLogger(logger),
		dispatch.WithBinarizer(factory),
	)

	global.Set("resize", js.FuncOf(h.resize))
	global.Set("write_pixels", js.FuncOf(h.writePixels))
	global.Set("decode_qr", js.FuncOf(h.decode(dispatch.ModeQR)))
	global.Set("decode_any", js.FuncOf(h.decode(dispatch.ModeAny)))
	global.Set("decode_multi", js.FuncOf(h.decode(dispatch.ModeMulti)))
	js.Global().Set("ZXing", global)

	// Keep the exported functions alive.
	select {}
}

func (h *host) emit(text []byte, length, index, total int) {
	callback := h.global.Get("decode_callback")
	if callback.Type() != js.TypeFunction {
		slog.Warn("ZXing.decode_callback is not a function, dropping result", "index", index)
		return
	}
	array := js.Global().Get("Uint8Array").New(len(text))
	js.CopyBytesToJS(array, text)
	callback.Invoke(array, length, index, total)
}

func (h *host) resize(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return int(dispatch.StatusIllegalArgument)
	}
	if _, err := h.session.Resize(args[0].Int(), args[1].Int()); err != nil {
		return int(dispatch.StatusOf(err))
	}
	if len(args) > 2 && !args[2].IsUndefined() {
		h.copyPixels(args[2])
	}
	return int(dispatch.StatusOK)
}

func (h *host) writePixels(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return 0
	}
	return h.copyPixels(args[0])
}

func (h *host) copyPixels(src js.Value) int {
	pix := h.session.Pixels()
	if pix == nil {
		return 0
	}
	return js.CopyBytesToGo(pix, src)
}

func (h *host) decode(mode dispatch.DecodeMode) func(js.Value, []js.Value) any {
	return func(js.Value, []js.Value) any {
		return int(h.session.Decode(mode))
	}
}
