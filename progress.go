//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package bbtdecrypt

type Progressor interface {
	Show(percent float32)
	Stop()
}

type nilProgress struct{}

func (np *nilProgress) Show(float32) {}
func (np *nilProgress) Stop()        {}

var defaultProgress = Progressor(&nilProgress{})

func SetProgress(prog Progressor) {
	if prog == Progressor(nil) {
		prog = &nilProgress{}
	}
	defaultProgress = prog
}

// Progress reports from the block loop itself, once per whole percent
type Progress struct {
	Progressor
	total     int
	completed int
	shown     int
}

func NewProgress(prog Progressor, total int) (progress *Progress) {
	if prog == nil {
		prog = defaultProgress
	}

	progress = &Progress{
		Progressor: prog,
		total:      total,
	}

	progress.Show(0.0)

	return
}

func (prog *Progress) Indicate() {
	prog.completed++
	if prog.total <= 0 {
		return
	}

	percent := prog.completed * 100 / prog.total
	if percent != prog.shown && percent < 100 {
		prog.shown = percent
		prog.Show(float32(prog.completed) * 100.0 / float32(prog.total))
	}
}

func (prog *Progress) Close() {
	prog.Show(100.0)
	prog.Stop()
}
