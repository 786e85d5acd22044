package aiip_test

import (
	"fmt"

	"github.com/aezizhu/aiip"
)

func ExampleGenerate() {
	canvas := aiip.DefaultCanvas()
	doc := aiip.SampleDocument()

	data, err := aiip.Generate(canvas, doc, aiip.SampleMetadata(canvas, doc))
	if err != nil {
		return
	}
	meta, err := aiip.Extract(data)
	if err != nil {
		return
	}
	fmt.Println(meta.Version, meta.Data.Title)
	// Output: 3.0 US Trade Tariffs 2025
}

func ExampleExtract() {
	canvas := aiip.DefaultCanvas()
	doc := aiip.SampleDocument()
	data, err := aiip.Generate(canvas, doc, aiip.SampleMetadata(canvas, doc))
	if err != nil {
		return
	}

	meta, err := aiip.Extract(data)
	if err != nil {
		return
	}
	for _, region := range meta.Data.Regions {
		fmt.Println(region.Name, region.Tariff)
	}
	// Output:
	// North America 25%
	// South America 35%
	// Europe 15%
	// Asia 30%
}

func ExampleStrip() {
	canvas := aiip.DefaultCanvas()
	doc := aiip.SampleDocument()
	data, err := aiip.Generate(canvas, doc, aiip.SampleMetadata(canvas, doc))
	if err != nil {
		return
	}

	plain, err := aiip.Strip(data)
	if err != nil {
		return
	}
	fmt.Println(aiip.HasMetadata(data), aiip.HasMetadata(plain))
	// Output: true false
}
