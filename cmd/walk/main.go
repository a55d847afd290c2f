package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/hexdump"
	"github.com/midbel/pdftext"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		raw  = flag.Bool("r", false, "raw")
		text = flag.Bool("t", false, "text")
	)
	flag.Parse()
	doc, err := pdftext.Open(flag.Arg(0))
	if err != nil {
		logrus.WithError(err).Fatal("open document")
	}
	defer doc.Close()

	doc.Walk(func(s pdftext.Stream) bool {
		printStream(s, *raw, *text)
		return true
	})
}

const row = "%-10d | %8d | %-8s | %8d"

func printStream(s pdftext.Stream, raw, text bool) {
	var (
		body = s.Body()
		str  = s.Text()
	)
	fmt.Fprintf(os.Stdout, row, s.Offset, len(body.Data), body.Encoding, len(str))
	fmt.Println()
	if raw && len(body.Data) > 0 {
		fmt.Println(hexdump.Dump(body.Data))
	}
	if text && str != "" {
		fmt.Println(str)
	}
}
