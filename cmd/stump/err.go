package main

import (
	"errors"
)

var (
	ErrNoImage    = errors.New(f("no memory image, use -i"))
	ErrImageStdin = errors.New(f("an image from stdin needs -n or -tui"))
)
