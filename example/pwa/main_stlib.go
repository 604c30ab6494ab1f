//go:build !wasm

package main

import "fmt"

func main() {
	fmt.Println("build with GOOS=js GOARCH=wasm and load main.wasm from index.html")
}
