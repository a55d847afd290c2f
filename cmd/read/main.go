package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/midbel/pdftext"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		limit   = flag.Int64("m", pdftext.DefaultMaxSize, "maximum size of a document")
		jobs    = flag.Int("j", 4, "number of documents read in parallel")
		verbose = flag.Bool("v", false, "verbose")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if flag.NArg() == 0 {
		logger.Fatal("no document given")
	}

	var (
		grp     errgroup.Group
		results = make([]pdftext.Result, flag.NArg())
	)
	grp.SetLimit(*jobs)
	for i, file := range flag.Args() {
		i, file := i, file
		grp.Go(func() error {
			res, err := extract(logger, file, *limit)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		logger.WithError(err).Fatal("extraction failed")
	}
	printResults(flag.Args(), results)
}

var once sync.Once

func extract(logger *logrus.Logger, file string, limit int64) (pdftext.Result, error) {
	doc, err := pdftext.OpenWithLimit(file, limit)
	if err != nil {
		return pdftext.Result{}, err
	}
	defer doc.Close()

	res := doc.Extract()
	entry := logger.WithFields(logrus.Fields{
		"file":  file,
		"size":  doc.Size(),
		"chars": utf8.RuneCountInString(res.Text),
	})
	if res.IsEmpty() {
		entry.Warn("no text found")
		once.Do(func() {
			logger.Info("documents made of scanned images need an OCR tool")
		})
		return res, nil
	}
	entry.Debug("text extracted")
	return res, nil
}

func printResults(files []string, results []pdftext.Result) {
	for i, res := range results {
		if res.IsEmpty() {
			continue
		}
		if len(files) > 1 {
			fmt.Printf("==> %s <==", files[i])
			fmt.Println()
		}
		fmt.Print(res.Text)
		if !strings.HasSuffix(res.Text, "\n") {
			fmt.Println()
		}
	}
}
