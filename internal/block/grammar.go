package block

// The three section keywords of a Dataverse metadata block. The order of
// PermissibleKeywords defines the canonical section order in the output file.
const (
	KeywordMetadataBlock        = "metadataBlock"
	KeywordDatasetField         = "datasetField"
	KeywordControlledVocabulary = "controlledVocabulary"
)

// PermissibleKeywords lists all valid section keywords in canonical order.
var PermissibleKeywords = []string{
	KeywordMetadataBlock,
	KeywordDatasetField,
	KeywordControlledVocabulary,
}

// RequiredKeywords lists the sections every metadata block must define.
// The controlled vocabulary section is optional.
var RequiredKeywords = []string{
	KeywordMetadataBlock,
	KeywordDatasetField,
}

// KeywordOrder returns the canonical sort position of a section keyword.
// Unknown keywords sort after all known ones.
func KeywordOrder(keyword string) int {
	for i, kw := range PermissibleKeywords {
		if kw == keyword {
			return i
		}
	}
	return len(PermissibleKeywords)
}

// KnownKeyword reports whether the keyword is part of the fixed grammar.
func KnownKeyword(keyword string) bool {
	return KeywordOrder(keyword) < len(PermissibleKeywords)
}

// RequiredKeys maps each section keyword to the fields every record of that
// kind must carry.
var RequiredKeys = map[string][]string{
	KeywordMetadataBlock: {"name", "displayName"},
	KeywordDatasetField: {
		"name",
		"title",
		"description",
		"fieldType",
		"displayOrder",
		"advancedSearchField",
		"allowControlledVocabulary",
		"allowmultiples",
		"facetable",
		"displayoncreate",
		"required",
		"metadatablock_id",
	},
	KeywordControlledVocabulary: {"DatasetField", "Value"},
}

// PermissibleKeys maps each section keyword to the full set of fields a
// record of that kind may carry. Everything else is a defect.
var PermissibleKeys = map[string][]string{
	KeywordMetadataBlock: {"name", "dataverseAlias", "displayName", "blockURI"},
	KeywordDatasetField: {
		"name",
		"title",
		"description",
		"watermark",
		"fieldType",
		"displayOrder",
		"displayFormat",
		"advancedSearchField",
		"allowControlledVocabulary",
		"allowmultiples",
		"facetable",
		"displayoncreate",
		"required",
		"parent",
		"metadatablock_id",
		"termURI",
	},
	KeywordControlledVocabulary: {
		"DatasetField",
		"Value",
		"identifier",
		"displayOrder",
	},
}

// TrailingSpaceChecked lists, per section kind, the string-valued fields the
// no_trailing_spaces lint inspects. Dataverse matches several of these
// verbatim, so stray whitespace breaks lookups in surprising ways.
var TrailingSpaceChecked = map[string][]string{
	KeywordMetadataBlock: {"name", "dataverseAlias"},
	KeywordDatasetField: {
		"name",
		"title",
		"description",
		"watermark",
		"fieldType",
		"parent",
		"metadatablock_id",
	},
	KeywordControlledVocabulary: {"Value", "identifier"},
}

// RowWidth computes the layout width of one record: its field count, plus one
// extra slot for the implicit leading key column that datasetField and
// controlledVocabulary rows carry in the TSV layout.
func RowWidth(r Record, keyword string) int {
	if keyword == KeywordMetadataBlock {
		return r.Len()
	}
	return r.Len() + 1
}
