package resumark

// BlockKind identifies the variant of a Block.
type BlockKind uint8

const (
	BlockTitle BlockKind = iota
	BlockInfo
	BlockSubtitle
	BlockBulletPoint
	BlockExperience
	BlockSpecialization
	BlockDateRange
	BlockEnd
	BlockSectionHeader
	BlockSectionDivider
	BlockLineBreak
)

var blockKindNames = [...]string{
	BlockTitle:          "TitleText",
	BlockInfo:           "InfoText",
	BlockSubtitle:       "SubtitleText",
	BlockBulletPoint:    "BulletPoint",
	BlockExperience:     "ExperienceHeader",
	BlockSpecialization: "SpecializationText",
	BlockDateRange:      "DateRange",
	BlockEnd:            "EndText",
	BlockSectionHeader:  "SectionHeader",
	BlockSectionDivider: "SectionDivider",
	BlockLineBreak:      "LineBreak",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return "BlockKind(?)"
}

// Alignment is the horizontal placement of a block.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Style is the text style of a block. Size is in points.
type Style struct {
	Size   uint8
	Bold   bool
	Italic bool
	Align  Alignment
}

// Block is one styled unit of output.
//
// Indent counts invisible spacer glyphs drawn before Text. Spacing is only
// set on line breaks and is measured in lines. Marker is only set on bullet
// points.
type Block struct {
	Kind    BlockKind
	Text    string
	Style   Style
	Indent  int
	Spacing float64
	Marker  string
}

const (
	bulletMarker         = "-"
	dividerGlyph         = "-"
	presentLabel         = "Present"
	defaultBreakSpacing  = 1.0
	specializationIndent = 2
	dateIndent           = 1
)
