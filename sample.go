package aiip

// SampleDocument returns the demonstration dataset rendered into sample.aiip.
// A fresh value is built on every call so callers may mutate it freely.
func SampleDocument() Document {
	return Document{
		Title: "US Trade Tariffs 2025",
		Regions: []Region{
			{
				Name:   "North America",
				Tariff: "25%",
				Level:  LevelMedium,
				Countries: []Country{
					{Name: "Canada", Rate: "25%"},
					{Name: "Mexico", Rate: "25%"},
				},
				Bounds: Rect{X1: 50, Y1: 100, X2: 250, Y2: 250},
			},
			{
				Name:   "South America",
				Tariff: "35%",
				Level:  LevelHigh,
				Countries: []Country{
					{Name: "Brazil", Rate: "50%"},
					{Name: "Argentina", Rate: "15%"},
				},
				Bounds: Rect{X1: 150, Y1: 280, X2: 300, Y2: 450},
			},
			{
				Name:   "Europe",
				Tariff: "15%",
				Level:  LevelLow,
				Countries: []Country{
					{Name: "UK", Rate: "10%"},
					{Name: "EU", Rate: "20%"},
					{Name: "Switzerland", Rate: "39%"},
				},
				Bounds: Rect{X1: 350, Y1: 80, X2: 500, Y2: 220},
			},
			{
				Name:   "Asia",
				Tariff: "30%",
				Level:  LevelHigh,
				Countries: []Country{
					{Name: "China", Rate: "30%"},
					{Name: "Japan", Rate: "15%"},
					{Name: "India", Rate: "50%"},
				},
				Bounds: Rect{X1: 520, Y1: 100, X2: 750, Y2: 280},
			},
		},
	}
}

// SampleMetadata wraps doc in the envelope written into the sample artifact.
func SampleMetadata(c Canvas, doc Document) *Metadata {
	return &Metadata{
		Version: FormatVersion,
		Canvas:  CanvasInfo{Width: c.Width, Height: c.Height},
		Meta: MetaInfo{
			Title:   doc.Title,
			Author:  "aezi zhu",
			Created: "2025-01-01",
		},
		Data: doc,
	}
}
