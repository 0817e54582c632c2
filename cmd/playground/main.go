// Command playground drives the scripted Complex resource from Go: it runs
// the bridge end to end and plots the Mandelbrot set in the terminal.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
