package catblob

// ParseResult is what a Parser extracts from a wire-form blob.
type ParseResult struct {
	Name        string   // display name, or a placeholder for unknown formats
	Data        []byte   // decoded layout bytes
	Compressed  bool     // container form
	NameOffset  int      // byte offset of the name in Data, -1 if unknown
	NameByteLen int      // byte length of the name in Data
	Warnings    []string // structural warnings, empty when clean
}

// Parser is one recognized blob format. Parsers are tried in priority
// order; adding support for a new format means adding a Parser, not
// touching dispatch.
type Parser interface {
	ID() string
	CanParse(blob []byte) bool
	Parse(blob []byte) (ParseResult, error)
}

// catParser parses the cat blob format, compressed or raw.
type catParser struct {
	limits DetectLimits
}

func (catParser) ID() string { return "cat_blob" }

func (p catParser) CanParse(blob []byte) bool {
	if len(blob) < NameStart {
		return false
	}
	_, err := Decode(blob, p.limits)
	return err == nil
}

func (p catParser) Parse(blob []byte) (ParseResult, error) {
	rec, err := Decode(blob, p.limits)
	if err != nil {
		return ParseResult{}, err
	}
	name, err := rec.Name()
	if err != nil {
		return ParseResult{}, err
	}
	end, err := rec.nameEnd()
	if err != nil {
		return ParseResult{}, err
	}

	return ParseResult{
		Name:        name,
		Data:        rec.Bytes(),
		Compressed:  rec.Compressed(),
		NameOffset:  NameStart,
		NameByteLen: end - NameStart,
		Warnings:    Validate(blob, p.limits),
	}, nil
}

// unknownParser accepts any non-empty blob as an opaque fallback.
type unknownParser struct{}

func (unknownParser) ID() string { return "unknown" }

func (unknownParser) CanParse(blob []byte) bool {
	return len(blob) > 0
}

func (unknownParser) Parse(blob []byte) (ParseResult, error) {
	data := make([]byte, len(blob))
	copy(data, blob)
	return ParseResult{
		Name:       "<unknown format>",
		Data:       data,
		NameOffset: -1,
		Warnings:   []string{"unknown blob format"},
	}, nil
}

// Parsers returns all known parsers in detection priority order.
func Parsers(limits DetectLimits) []Parser {
	return []Parser{catParser{limits: limits}, unknownParser{}}
}

// ParserFor returns the parser with the given ID, falling back to the
// unknown-format parser.
func ParserFor(id string, limits DetectLimits) Parser {
	for _, p := range Parsers(limits) {
		if p.ID() == id {
			return p
		}
	}
	return unknownParser{}
}

// Identify returns the first parser whose detection predicate accepts
// the blob.
func Identify(blob []byte, limits DetectLimits) Parser {
	for _, p := range Parsers(limits) {
		if p.CanParse(blob) {
			return p
		}
	}
	return unknownParser{}
}
