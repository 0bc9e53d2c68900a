//go:build js && wasm

package main

import (
	"strings"
	"syscall/js"

	"github.com/caarlos0/env/v11"

	"github.com/ericlevine/zxingpipe/internal/config"
)

// envOptions reads settings from a ZXING_ENV object on the page, since a
// browser has no process environment.
func envOptions() env.Options {
	vars := map[string]string{}
	obj := js.Global().Get("ZXING_ENV")
	if obj.Type() == js.TypeObject {
		keys := js.Global().Get("Object").Call("keys", obj)
		for i := 0; i < keys.Length(); i++ {
			key := keys.Index(i).String()
			name := strings.ToUpper(key)
			if !strings.HasPrefix(name, config.Prefix) {
				name = config.Prefix + name
			}
			vars[name] = obj.Get(key).String()
		}
	}
	return env.Options{Prefix: config.Prefix, Environment: vars}
}
