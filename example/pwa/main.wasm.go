//go:build wasm
// +build wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/cdvelop/pagectl"
)

func main() {
	logger := newLogger(false)
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := loadConfig(configYAML, sugar)

	waitForDOM()

	ctl := pagectl.New(cfg, pagectl.NewDocumentView(), pagectl.NewLocalStorage(), pagectl.WindowPrompter{})
	ctl.SetLogger(sugar.Info)

	if err := ctl.Start(context.Background()); err != nil {
		sugar.Errorw("page start failed", "error", err)
	}
	ctl.Bind()

	select {}
}

// waitForDOM blocks until DOMContentLoaded when the document is still parsing
func waitForDOM() {
	doc := js.Global().Get("document")
	if doc.Get("readyState").String() != "loading" {
		return
	}

	ready := make(chan struct{})
	var fn js.Func
	fn = js.FuncOf(func(js.Value, []js.Value) any {
		close(ready)
		fn.Release()
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", fn)
	<-ready
}
