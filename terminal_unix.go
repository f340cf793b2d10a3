//go:build unix

package tui

import "golang.org/x/sys/unix"

// savedTermios is the line discipline of fd before raw mode was entered.
type savedTermios struct {
	fd   int
	orig unix.Termios
}

// makeRaw switches t to byte-at-a-time input without echo, line editing,
// signal generation, flow control or output post-processing. Ctrl+C then
// arrives as 0x03 and is handled by the input loop.
func makeRaw(t *unix.Termios) {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN], t.Cc[unix.VTIME] = 1, 0
}

func enterRaw(fd int) (*savedTermios, error) {
	cur, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	saved := &savedTermios{fd: fd, orig: *cur}
	makeRaw(cur)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, cur); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *savedTermios) restore() error {
	if s == nil {
		return nil
	}
	return unix.IoctlSetTermios(s.fd, ioctlWriteTermios, &s.orig)
}

func windowSize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
