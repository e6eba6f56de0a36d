//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

// ScanPaths splits a batch file into paths. Paths are separated by
// whitespace, may be quoted or backslash escaped, and a '#' that starts a
// path comments out the rest of the line.
func ScanPaths(data []byte, atEOF bool) (advance int, token []byte, err error) {
	var path []byte

	started := false
	inQuote := false
	inDquote := false
	inEscape := false
	inComment := false

	for here, c := range data {
		switch {
		case inComment:
			if c == '\n' {
				inComment = false
			}
		case inEscape:
			path = append(path, unescape(c))
			inEscape = false
		case c == '\\' && !inQuote:
			inEscape = true
			started = true
		case c == '\'' && !inDquote:
			inQuote = !inQuote
			started = true
		case c == '"' && !inQuote:
			inDquote = !inDquote
			started = true
		case isSpace(c) && !inQuote && !inDquote:
			if started {
				advance = here + 1
				token = path
				return
			}
		case c == '#' && !started:
			inComment = true
		default:
			path = append(path, c)
			started = true
		}
	}

	if !atEOF {
		// Ask for more
		return
	}

	if inQuote || inDquote || inEscape {
		err = fmt.Errorf("incomplete path: '%v' => '%v'", string(data), string(path))
		return
	}

	advance = len(data)
	if started {
		token = path
	}

	return
}

// ExpandPaths reads a batch file, expanding environment variables in
// each path
func ExpandPaths(reader io.Reader) (paths []string, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(ScanPaths)
	for scanner.Scan() {
		path := os.ExpandEnv(scanner.Text())
		if len(path) > 0 {
			paths = append(paths, path)
		}
	}

	err = scanner.Err()
	if err != nil {
		paths = nil
		return
	}

	return
}

// Inputs collects the input files from the arguments and the --batch file
func Inputs(args []string) (inputs []string, err error) {
	inputs = append(inputs, args...)

	if len(param.batch) == 0 {
		return
	}

	reader, err := os.Open(param.batch)
	if err != nil {
		return
	}
	defer func() { reader.Close() }()

	batch, err := ExpandPaths(reader)
	if err != nil {
		err = fmt.Errorf("%s: %w", param.batch, err)
		return
	}

	inputs = append(inputs, batch...)

	return
}
