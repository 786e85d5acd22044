package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/aezizhu/aiip"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "create":
		if err := runCreate(os.Args[2:]); err != nil {
			fail(err)
		}
	case "extract":
		if err := runExtract(os.Args[2:]); err != nil {
			fail(err)
		}
	case "detect":
		if err := runDetect(os.Args[2:]); err != nil {
			fail(err)
		}
	case "strip":
		if err := runStrip(os.Args[2:]); err != nil {
			fail(err)
		}
	case "preview":
		if err := runPreview(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: aiiptool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  create  [-out sample.aiip] [-font path]")
	fmt.Fprintln(os.Stderr, "  extract -in input.aiip [-out meta.json]")
	fmt.Fprintln(os.Stderr, "  detect  -in input.aiip")
	fmt.Fprintln(os.Stderr, "  strip   -in input.aiip -out output.png")
	fmt.Fprintln(os.Stderr, "  preview -in input.aiip -out thumb.aiip [-w 400]")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	outPath := fs.String("out", "sample.aiip", "output file")
	fontPath := fs.String("font", "", "preferred font file (optional)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	canvas := aiip.DefaultCanvas()
	doc := aiip.SampleDocument()
	meta := aiip.SampleMetadata(canvas, doc)

	var optFns []func(*aiip.RenderOptions)
	if *fontPath != "" {
		optFns = append(optFns, func(o *aiip.RenderOptions) { o.FontPath = *fontPath })
	}

	data, err := aiip.Generate(canvas, doc, meta, optFns...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Created: %s\n", *outPath)
	fmt.Printf("Size: %d bytes\n", len(data))
	fmt.Println("The file can be opened with any image viewer; rename to .png if needed.")
	return nil
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	inPath := fs.String("in", "", "input AIIP file")
	outPath := fs.String("out", "", "metadata json output (default stdout)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return err
	}
	meta, err := aiip.Extract(data)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if *outPath == "" {
		fmt.Println(string(payload))
		return nil
	}
	return os.WriteFile(*outPath, payload, 0o644)
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	inPath := fs.String("in", "", "input file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return err
	}
	meta, err := aiip.Extract(data)
	switch {
	case err == nil:
		fmt.Printf("aiip: yes (version %s, %d regions)\n", meta.Version, len(meta.Data.Regions))
	case errors.Is(err, aiip.ErrMetadataNotFound):
		fmt.Println("aiip: no")
	default:
		return err
	}
	return nil
}

func runStrip(args []string) error {
	fs := flag.NewFlagSet("strip", flag.ContinueOnError)
	inPath := fs.String("in", "", "input AIIP file")
	outPath := fs.String("out", "", "output PNG file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return err
	}
	out, err := aiip.Strip(data)
	if err != nil {
		return err
	}
	return os.WriteFile(*outPath, out, 0o644)
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	inPath := fs.String("in", "", "input AIIP file")
	outPath := fs.String("out", "", "output preview file")
	width := fs.Int("w", 400, "preview width")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return err
	}
	out, err := aiip.Preview(data, *width)
	if err != nil {
		return err
	}
	return os.WriteFile(*outPath, out, 0o644)
}
