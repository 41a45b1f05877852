package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckImage(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		image string
		count int
		tui   bool
		err   error
	}){
		{"missing", "", -1, false, ErrNoImage},
		{"missing batch", "", 10, false, ErrNoImage},
		{"file monitor", "prog.img", -1, false, nil},
		{"stdin monitor", "-", -1, false, ErrImageStdin},
		{"stdin batch", "-", 0, false, nil},
		{"stdin tui", "-", -1, true, nil},
	}

	for _, entry := range table {
		err := checkImage(entry.image, entry.count, entry.tui)
		if entry.err == nil {
			assert.NoError(err, entry.name)
		} else {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}
