package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"bookshelf/internal/library"
)

func renderBookTable(matches []library.Match) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Author", "Year", "Genre", "Status"})

	for i, match := range matches {
		b := match.Book
		tw.AppendRow(table.Row{i + 1, b.Title, b.Author, b.Year, b.Genre, b.ReadStatus()})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderCountTable(label string, counts []library.FieldCount) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{label, "Books"})

	for _, bucket := range counts {
		tw.AppendRow(table.Row{bucket.Value, bucket.Count})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

func allMatches(catalog *library.Catalog) []library.Match {
	books := catalog.Books()
	matches := make([]library.Match, 0, len(books))
	for i, b := range books {
		matches = append(matches, library.Match{Position: i + 1, Book: b})
	}
	return matches
}
