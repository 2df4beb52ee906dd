// Package terminal provides direct ANSI terminal control for the editor.
//
// Features:
//   - Raw mode lifecycle with guaranteed restoration
//   - Timed single-byte input reads (poll-based, 100ms interval)
//   - Escape sequence decoding for arrow and page keys
//   - Coalesced frame output: one write per screen refresh
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
