// joypanel-monitor tails the firmware's telemetry stream: it opens the
// board's serial port, reassembles frames, and prints one status line per
// frame.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"joypanel/host/serial"
	"joypanel/telemetry"
)

var (
	device   = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud     = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	interval = flag.Int("interval", 1, "Print every Nth frame")
)

func main() {
	flag.Parse()

	if *interval < 1 {
		fmt.Fprintln(os.Stderr, "Error: -interval must be at least 1")
		os.Exit(1)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("joypanel-monitor: listening on %s\n", *device)

	var dec telemetry.Decoder
	buf := make([]byte, 256)
	count := 0

	for {
		n, err := port.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
			os.Exit(1)
		}
		if n == 0 {
			// Read timeout with no data; keep polling.
			continue
		}

		dec.Feed(buf[:n])
		for {
			f, ok := dec.Next()
			if !ok {
				break
			}
			count++
			if count%*interval == 0 {
				printFrame(f)
			}
		}
	}
}

func printFrame(f telemetry.Frame) {
	fmt.Printf("raw=(%4d,%4d) duty=(blue:%5d red:%5d) marker=(%3d,%3d) style=%d indicator=%v pwm=%v\n",
		f.VRX, f.VRY,
		f.DutyBlue, f.DutyRed,
		f.MarkerX, f.MarkerY,
		f.Style,
		f.Flags&telemetry.FlagIndicator != 0,
		f.Flags&telemetry.FlagPWMEnabled != 0,
	)
}
