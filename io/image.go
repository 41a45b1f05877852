package io

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/stump/cpu"
)

// IMAGE_DIGITS is the number of binary digits of one image word.
const IMAGE_DIGITS = 16

// Image is a memory image: words stored in order from address 0.
//
// The text form holds one word per line as up to 16 binary digits. Blank
// lines are skipped, and a '#' or ';' starts a comment.
type Image struct {
	Verbose bool // Set to enable verbose logging.
	Data    []uint16
}

// Unmarshal replaces the image with the words parsed from input.
func (img *Image) Unmarshal(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	var data []uint16
	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		text := line
		if index := strings.IndexAny(text, "#;"); index >= 0 {
			text = text[:index]
		}
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		if len(text) > IMAGE_DIGITS {
			err = ErrImageWidth
			return
		}

		var word uint64
		word, err = strconv.ParseUint(text, 2, IMAGE_DIGITS)
		if err != nil {
			err = ErrImageDigit
			return
		}

		if len(data) == cpu.MEMORY_SIZE {
			err = ErrImageFull
			return
		}

		data = append(data, uint16(word))
	}

	line = ""
	err = scanner.Err()
	if err != nil {
		return
	}

	img.Data = data

	if img.Verbose {
		log.Printf("image: %d words", len(img.Data))
	}

	return
}

// Marshal writes the image as one line of 16 binary digits per word.
func (img *Image) Marshal(output io.Writer) (err error) {
	writer := bufio.NewWriter(output)

	for _, word := range img.Data {
		_, err = fmt.Fprintf(writer, "%016b\n", word)
		if err != nil {
			return
		}
	}

	err = writer.Flush()
	return
}

// Open loads the image from a file.
func (img *Image) Open(filesys fs.FS, name string) (err error) {
	file, err := filesys.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	err = img.Unmarshal(file)
	return
}

// Save writes the image to a file.
func (img *Image) Save(filesys CreateFS, name string) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}

	err = img.Marshal(file)
	if err != nil {
		file.Close()
		return
	}

	err = file.Close()
	return
}

// Trim drops trailing zero words.
func (img *Image) Trim() {
	end := len(img.Data)
	for end > 0 && img.Data[end-1] == 0 {
		end--
	}

	img.Data = img.Data[:end]
}
