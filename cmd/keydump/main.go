// Command keydump enters raw mode and prints every decoded key event.
// Useful for checking what byte sequences a terminal emits for a given key.
package main

import (
	"fmt"
	"os"

	"github.com/seankim658/txt-editor/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "keydump: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	session := terminal.NewSession()
	if err := session.Enter(); err != nil {
		return err
	}
	defer func() {
		if rerr := session.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	// Raw mode: no output post-processing, so every line needs \r\n
	fmt.Print("keydump: press keys to see decoded events, Ctrl+Q to quit\r\n")

	for {
		ev, err := session.ReadKey()
		if err != nil {
			return err
		}
		if ev.Key == terminal.KeyByte && ev.Byte == terminal.Ctrl('q') {
			return nil
		}
		if ev.Key == terminal.KeyByte {
			fmt.Printf("byte 0x%02x  %s\r\n", ev.Byte, terminal.KeyName(ev))
		} else {
			fmt.Printf("%s\r\n", terminal.KeyName(ev))
		}
	}
}
