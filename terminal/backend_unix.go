//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// readTimeoutMs bounds a single input poll. Short enough that a lone ESC
// press feels immediate, long enough to catch the byte burst of a real
// escape sequence.
const readTimeoutMs = 100

type unixBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	orig  *unix.Termios
}

func newBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

// Init captures the current termios and applies raw mode: no echo, no
// canonical line buffering, no signal keys, no extended input processing,
// no flow control or CR translation, no output post-processing, 8-bit
// characters, and VMIN=0/VTIME=1 timed reads.
func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	orig, err := unix.IoctlGetTermios(b.inFd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAttrQuery, err)
	}
	b.orig = orig

	raw := *orig
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(b.inFd, unix.TCSETSF, &raw); err != nil {
		b.orig = nil
		return fmt.Errorf("%w: %v", ErrAttrQuery, err)
	}
	return nil
}

// Fini restores the attributes captured by Init.
func (b *unixBackend) Fini() error {
	if b.orig == nil {
		return nil
	}
	orig := b.orig
	b.orig = nil
	if err := unix.IoctlSetTermios(b.inFd, unix.TCSETSF, orig); err != nil {
		return fmt.Errorf("%w: %v", ErrAttrRestore, err)
	}
	return nil
}

// Size queries the window size ioctl. A terminal reporting zero columns is
// treated the same as a failed call; there is no fallback probing.
func (b *unixBackend) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWinSize, err)
	}
	if ws.Col == 0 {
		return 0, 0, fmt.Errorf("%w: zero columns reported", ErrWinSize)
	}
	return int(ws.Col), int(ws.Row), nil
}

// ReadByte polls stdin for up to readTimeoutMs and reads one byte when data
// is available. EINTR and EAGAIN count as timeouts, not errors.
func (b *unixBackend) ReadByte() (byte, bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(b.inFd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, readTimeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if n == 0 {
		return 0, false, nil // Timeout
	}

	var buf [1]byte
	rn, err := unix.Read(b.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if rn == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// resetTerminalMode attempts to restore terminal to cooked mode.
// Best-effort for crash recovery; errors ignored.
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		// Get current termios, enable ECHO and ICANON
		if termios, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, unix.TCSETS, termios)
		}
	}
}
