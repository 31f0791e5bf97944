package interpreter

import (
	"bufio"
	"fmt"
	"io"
)

type scannerReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewLineReader reads lines from r, writing prompts to w
func NewLineReader(r io.Reader, w io.Writer) LineReader {
	return &scannerReader{sc: bufio.NewScanner(r), out: w}
}

func (s *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return s.sc.Text(), nil
}
