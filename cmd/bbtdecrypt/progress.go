//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"os"
)

type TextProgress struct{}

func NewTextProgress() (tp *TextProgress) {
	tp = &TextProgress{}

	return
}

func (tp *TextProgress) Show(percent float32) {
	fmt.Fprintf(os.Stderr, "\r%3.0f%%", percent)
}

func (tp *TextProgress) Stop() {
	fmt.Fprintln(os.Stderr)
}
