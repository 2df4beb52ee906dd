package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/seankim658/txt-editor/editor"
	"github.com/seankim658/txt-editor/terminal"
)

var debugFlag = flag.Bool("debug", false, "Write debug logs to logs/debug.log")

func main() {
	// Panic recovery: reset the terminal to a sane state even on a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n in case termios recovery did not take
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTXT-EDITOR CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		// The single fatal path: the session has already been restored by
		// the time an error reaches here, so clear the screen, then report.
		terminal.ClearScreen(os.Stdout)
		fmt.Fprintf(os.Stderr, "txt-editor: %v\n", err)
		os.Exit(1)
	}
}

// run owns the session lifecycle: raw mode is held between Enter and the
// deferred Restore no matter how the loop ends.
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

	size, err := session.Size()
	if err != nil {
		return err
	}
	log.Printf("session start: viewport %dx%d", size.Cols, size.Rows)

	return editor.New(session, size).Run()
}
