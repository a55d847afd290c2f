package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/midbel/pdftext"
	"github.com/sirupsen/logrus"
)

func main() {
	limit := flag.Int64("m", pdftext.DefaultMaxSize, "maximum size of a document")
	flag.Parse()
	doc, err := pdftext.OpenWithLimit(flag.Arg(0), *limit)
	if err != nil {
		logrus.WithError(err).Fatal("open document")
	}
	defer doc.Close()

	st := doc.Stats()
	printLine("file", flag.Arg(0))
	printLine("size", strconv.FormatInt(doc.Size(), 10))
	printLine("streams", strconv.Itoa(st.Streams))
	printLine("compressed", strconv.Itoa(st.Compressed))
	printLine("with text", strconv.Itoa(st.WithText))
	printLine("characters", strconv.Itoa(st.Chars))
}

func printLine(key, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-12s: %s", strings.Title(key), value)
	fmt.Println()
}
