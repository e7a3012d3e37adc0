package document

// Fixed form typography.
const (
	FormFont     = "標楷體"
	BaseSize     = 24
	CellTextSize = 22
)

// A4 portrait with 2 cm margins.
var A4 = PageSetup{
	Width:  11906,
	Height: 16838,
	Margin: Margins{Top: 1134, Right: 1134, Bottom: 1134, Left: 1134},
}

// FormStyles is the style sheet shared by every generated form.
var FormStyles = Styles{
	DefaultFont: FormFont,
	DefaultSize: BaseSize,
	Paragraph: []ParagraphStyle{
		{
			ID:        "Title",
			Name:      "Title",
			BasedOn:   "Normal",
			Font:      FormFont,
			Size:      36,
			Bold:      true,
			Alignment: AlignCenter,
			Spacing:   Spacing{After: 200},
		},
		{
			ID:        "Subtitle",
			Name:      "Subtitle",
			BasedOn:   "Normal",
			Font:      FormFont,
			Size:      28,
			Bold:      true,
			Alignment: AlignCenter,
			Spacing:   Spacing{After: 400},
		},
	},
}

// Cell presets.
var (
	ThinBorder = Border{Style: BorderSingle, Size: 1, Color: "000000"}

	AllThinBorders = Borders{Top: ThinBorder, Bottom: ThinBorder, Left: ThinBorder, Right: ThinBorder}

	CellMargins = Margins{Top: 80, Bottom: 80, Left: 120, Right: 120}
)

// Cell shading fills.
const (
	HeaderFill  = "D5E8F0"
	ContentFill = "FFFFFF"
)

// New returns an empty document with the form's page setup and styles.
func New() *Document {
	return &Document{Page: A4, Styles: FormStyles}
}
