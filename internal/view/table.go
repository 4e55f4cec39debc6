package view

import "fmt"

type Layout string

const (
	LayoutTable Layout = "table"
	LayoutCards Layout = "cards"
)

// Column maps one field of T into a cell.
type Column[T any] struct {
	Header string
	Value  func(T) string
	Badge  *BadgeLookup
	// Missing is shown, muted, when Value returns "".
	Missing string
}

type EmptyState struct {
	Text    string
	Subtext string
	// FilteredSubtext replaces Subtext while a filter is active; %s is the filter value.
	FilteredSubtext string
}

type Table[T any] struct {
	ID      string
	Title   string
	Layout  Layout
	Columns []Column[T]
	Empty   EmptyState
}

type Cell struct {
	Text  string
	Badge *Badge
	Muted bool
}

type TableView struct {
	ID           string
	Title        string
	Layout       Layout
	Headers      []string
	Rows         [][]Cell
	Count        int
	EmptyText    string
	EmptySubtext string
	// Stale marks rows that are the last-known-good list because the latest fetch failed.
	Stale bool
}

func (v TableView) Empty() bool {
	return len(v.Rows) == 0
}

// Render produces one row per item, in list order.
func (t Table[T]) Render(items []T, filter string) TableView {
	layout := t.Layout
	if layout == "" {
		layout = LayoutTable
	}
	tv := TableView{
		ID:      t.ID,
		Title:   t.Title,
		Layout:  layout,
		Headers: make([]string, 0, len(t.Columns)),
		Rows:    make([][]Cell, 0, len(items)),
		Count:   len(items),
	}
	for _, col := range t.Columns {
		tv.Headers = append(tv.Headers, col.Header)
	}

	for _, item := range items {
		row := make([]Cell, 0, len(t.Columns))
		for _, col := range t.Columns {
			row = append(row, col.cell(item))
		}
		tv.Rows = append(tv.Rows, row)
	}

	if len(items) == 0 {
		tv.EmptyText = t.Empty.Text
		tv.EmptySubtext = t.Empty.Subtext
		if filter != "" && t.Empty.FilteredSubtext != "" {
			tv.EmptySubtext = fmt.Sprintf(t.Empty.FilteredSubtext, filter)
		}
	}
	return tv
}

func (c Column[T]) cell(item T) Cell {
	text := c.Value(item)
	if text == "" && c.Missing != "" {
		return Cell{Text: c.Missing, Muted: true}
	}
	cell := Cell{Text: text}
	if c.Badge != nil {
		badge := c.Badge.Lookup(text)
		cell.Badge = &badge
	}
	return cell
}
