// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const inputPrompt = "> "

// LineReader is the input side of the console. *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
	ReadPassword(prompt string) (string, error)
}

// plainReader reads lines from a non-terminal input. Passwords are
// ordinary lines.
type plainReader struct {
	r   *bufio.Reader
	out io.Writer
}

func newPlainReader(in io.Reader, out io.Writer) *plainReader {
	return &plainReader{r: bufio.NewReader(in), out: out}
}

func (p *plainReader) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainReader) ReadPassword(prompt string) (string, error) {
	_, _ = io.WriteString(p.out, prompt)
	return p.ReadLine()
}

// OpenStdio returns the reader and writer for the process console. When
// stdin is a terminal it is switched to raw mode; restore undoes that.
func OpenStdio() (LineReader, io.Writer, func(), error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return newPlainReader(os.Stdin, os.Stdout), os.Stdout, func() {}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, nil, err
	}

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, inputPrompt)
	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}

	return t, t, func() { _ = term.Restore(fd, state) }, nil
}
