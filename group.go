package docconv

// GroupKind classifies a Group.
type GroupKind int

const (
	// GroupBlock holds exactly one block that is neither a list item nor a
	// table row.
	GroupBlock GroupKind = iota
	// GroupList holds the items of one list. All items share Ordered.
	GroupList
	// GroupTable holds the rows of one table.
	GroupTable
)

// Group is a run of adjacent blocks rendered as one unit.
type Group struct {
	Kind   GroupKind
	Blocks []Block
}

// Ordered reports whether a list group is numbered.
func (g Group) Ordered() bool {
	if g.Kind != GroupList || len(g.Blocks) == 0 {
		return false
	}
	return g.Blocks[0].(ListItem).Ordered
}

// Rows returns the table rows of a table group with delimiter rows removed.
func (g Group) Rows() []TableRow {
	if g.Kind != GroupTable {
		return nil
	}
	rows := make([]TableRow, 0, len(g.Blocks))
	for _, b := range g.Blocks {
		r := b.(TableRow)
		if r.IsDelimiter() {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}

// Items returns the list items of a list group.
func (g Group) Items() []ListItem {
	if g.Kind != GroupList {
		return nil
	}
	items := make([]ListItem, len(g.Blocks))
	for i, b := range g.Blocks {
		items[i] = b.(ListItem)
	}
	return items
}

// Groups partitions a document into render units. It is the single list and
// table grouping strategy shared by every renderer.
//
// A list item joins the preceding list group when it has the same Ordered
// flag and an Index greater than 1. A table row joins the preceding table
// group unless it is a header row.
func Groups(doc Document) []Group {
	var groups []Group
	for _, b := range doc.Blocks {
		var last *Group
		if len(groups) > 0 {
			last = &groups[len(groups)-1]
		}
		switch b := b.(type) {
		case ListItem:
			if last != nil && last.Kind == GroupList && b.Index > 1 &&
				last.Blocks[len(last.Blocks)-1].(ListItem).Ordered == b.Ordered {
				last.Blocks = append(last.Blocks, b)
				continue
			}
			groups = append(groups, Group{Kind: GroupList, Blocks: []Block{b}})
		case TableRow:
			if last != nil && last.Kind == GroupTable && !b.IsHeader {
				last.Blocks = append(last.Blocks, b)
				continue
			}
			groups = append(groups, Group{Kind: GroupTable, Blocks: []Block{b}})
		default:
			groups = append(groups, Group{Kind: GroupBlock, Blocks: []Block{b}})
		}
	}
	return groups
}
