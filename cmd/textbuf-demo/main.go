package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	lorem "github.com/drhodes/golorem"
	"go.uber.org/zap"

	"github.com/rasteric/textbuf"
	"github.com/rasteric/textbuf/fyneview"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	sentences := flag.Int("lorem", 0, "create the file with this many lorem ipsum sentences if it does not exist")
	find := flag.String("find", "", "mark all occurrences of this text")
	debug := flag.Bool("debug", false, "verbose logging and invariant checks")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := textbuf.NewConfig()
	if *configPath != "" {
		if cfg, err = textbuf.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Logger = logger
	if *debug {
		cfg.Debug = true
	}

	if *sentences > 0 {
		if err := createLorem(cfg.Store, path, *sentences); err != nil {
			log.Fatal(err)
		}
	}

	size := textbuf.Size{Width: 1200, Height: 800}
	buf, err := textbuf.Load(path, size, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if *find != "" {
		for i, span := range buf.FindAll(*find) {
			if err := buf.Marks().Add(fmt.Sprintf("find-%d", i), span, textbuf.RGBA(1, 0.85, 0.1, 0.25)); err != nil {
				logger.Warn("cannot mark match", zap.Error(err))
			}
		}
		logger.Info("marked matches", zap.String("query", *find), zap.Int("count", buf.Marks().Len()))
	}

	a := app.New()
	w := a.NewWindow(path)
	ed := fyneview.NewEditor(buf)
	ed.OnError = func(err error) {
		dialog.ShowError(err, w)
	}
	w.SetContent(ed)
	w.Resize(fyne.NewSize(size.Width, size.Height))
	w.Canvas().Focus(ed)
	w.ShowAndRun()
}

// createLorem writes n lorem ipsum sentences, one per line, to path unless
// the file already exists.
func createLorem(store textbuf.SourceStore, path string, n int) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	lines := make([]string, n)
	for i := range lines {
		lines[i] = lorem.Sentence(5, 30)
	}
	return store.WriteAll(path, strings.Join(lines, "\n")+"\n")
}
