package index

// DocPosting records which paragraphs of one document contain a stem. This is
// the wire form: the artifact stores an ordered list of these per stem.
type DocPosting struct {
	DocIndex           int   `json:"doc_index"`
	ParagraphPositions []int `json:"paragraph_positions"`
}

// posting is the in-memory form of a DocPosting. Paragraph positions are a
// set (seen) with first-occurrence order preserved (order).
type posting struct {
	order []int
	seen  map[int]struct{}
}

func newPosting() *posting {
	return &posting{seen: make(map[int]struct{})}
}

// add records a paragraph position, ignoring duplicates.
func (p *posting) add(paragraphPos int) {
	if _, ok := p.seen[paragraphPos]; ok {
		return
	}
	p.seen[paragraphPos] = struct{}{}
	p.order = append(p.order, paragraphPos)
}

// wire converts the posting to its serialized form for docIndex.
func (p *posting) wire(docIndex int) DocPosting {
	positions := make([]int, len(p.order))
	copy(positions, p.order)
	return DocPosting{DocIndex: docIndex, ParagraphPositions: positions}
}
