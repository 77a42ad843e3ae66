package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tmpim/halfblock"
)

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(logger *log.Logger, flags *flag.FlagSet) {
	logger.Println("Usage: halfblock [options] file")
	logger.Println("")
	logger.Println("halfblock prints an image (PNG, JPEG, GIF, BMP, TIFF or WebP) to a")
	logger.Println("true color terminal using half block characters, two pixels per cell.")
	logger.Println("Only fully opaque pixels are drawn. Images are not resized.")
	logger.Println("")
	logger.Println("Exits with status 1 if the file is missing or is not a readable image,")
	logger.Println("and with status 2 on invalid usage.")
	logger.Println("")
	logger.Println("Options:")
	flags.SetOutput(logger.Writer())
	flags.PrintDefaults()
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	flags := flag.NewFlagSet("halfblock", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var grayscale bool
	flags.BoolVar(&grayscale, "grayscale", false, "don't color the output")
	flags.BoolVar(&grayscale, "g", false, "shorthand for -grayscale")
	workers := flags.Int("j", 0, "render lines on this many goroutines (0 = render sequentially)")

	if err := flags.Parse(args); err != nil {
		usage(logger, flags)
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	path := flags.Arg(0)
	if path == "" {
		usage(logger, flags)
		return 2
	}

	// Options may also follow the file.
	if err := flags.Parse(flags.Args()[1:]); err != nil {
		usage(logger, flags)
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if flags.NArg() > 0 {
		usage(logger, flags)
		return 2
	}

	color := !grayscale

	src, err := halfblock.Open(path, color)
	if errors.Is(err, halfblock.ErrFileNotFound) {
		fmt.Fprintln(stdout, "error: File does not exist.")
		return 1
	} else if err != nil {
		fmt.Fprintln(stdout, "error: Could not read image.")
		return 1
	}

	if *workers > 0 {
		frame, err := halfblock.RenderParallel(context.Background(), src, color, *workers)
		if err != nil {
			logger.Println("Failed to render image:", err)
			return 1
		}

		_, err = frame.WriteTo(stdout)
		if err != nil {
			logger.Println("Failed to write output:", err)
			return 1
		}

		return 0
	}

	_, err = halfblock.WriteLines(stdout, halfblock.Lines(src, color))
	if err != nil {
		logger.Println("Failed to write output:", err)
		return 1
	}

	return 0
}
