package bed

// Column identifies a BED column by its 1-based position.
type Column int

const (
	Chrom Column = iota + 1
	ChromStart
	ChromEnd
	Name
	Score
	Strand
	ThickStart
	ThickEnd
	ItemRgb
	BlockCount
	BlockSizes
	BlockStarts
)

const (
	// MinColumns is the number of mandatory columns.
	MinColumns = int(ChromEnd)
	// MaxColumns is the number of columns of a BED12 line.
	MaxColumns = int(BlockStarts)
)

// String return the string representation of a Column
func (c Column) String() string {
	switch c {
	case Chrom:
		return "chrom"
	case ChromStart:
		return "chromStart"
	case ChromEnd:
		return "chromEnd"
	case Name:
		return "name"
	case Score:
		return "score"
	case Strand:
		return "strand"
	case ThickStart:
		return "thickStart"
	case ThickEnd:
		return "thickEnd"
	case ItemRgb:
		return "itemRgb"
	case BlockCount:
		return "blockCount"
	case BlockSizes:
		return "blockSizes"
	case BlockStarts:
		return "blockStarts"
	default:
		return "UNKNOWN"
	}
}

// kind returns the field grammar of the column.
func (c Column) kind() fieldKind {
	switch c {
	case ChromStart, ChromEnd, Score, ThickStart, ThickEnd, BlockCount:
		return uintField
	case Strand:
		return enumField
	case BlockSizes, BlockStarts:
		return listField
	default:
		return textField
	}
}
