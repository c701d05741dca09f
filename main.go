// Command lisa computes and plots the LISA gravitational wave sensitivity
// curve for a chosen observation time.
//
// Usage:
//
//	lisa plot --duration 1yr --output sensitivity.html
//	lisa data --duration 6mo,4yr --format csv
package main

import "github.com/AnkushinDaniil/lisa/cmd"

func main() {
	cmd.Execute()
}
