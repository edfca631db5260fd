package dataset

import (
	"bytes"
	_ "embed"
	"io"
)

const (
	// IrisSet is the name of the bundled iris data set.
	IrisSet = "iris"
	// IrisInputs is the number of numeric columns of the iris data set.
	IrisInputs = 4
	// IrisClass is the column holding the species.
	IrisClass = 4
)

//go:embed iris.csv
var iris []byte

// Iris returns the fisher iris data set as csv, with a header row.
func Iris() io.Reader {
	return bytes.NewReader(iris)
}
