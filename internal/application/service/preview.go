package service

import (
	"strings"
	"unicode"

	"github.com/pgstay/booking/internal/domain/entity"
)

// PreviewItem is one labelled line of the confirmation view.
type PreviewItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// PreviewSection groups preview items the way the confirmation view shows
// them: client details first, then one block per enabled section.
type PreviewSection struct {
	Title string        `json:"title"`
	Items []PreviewItem `json:"items"`
}

var sectionTitles = map[entity.SectionKind]string{
	entity.SectionPermanent: "Permanent Property Details",
	entity.SectionTemporary: "Temporary Property Details",
}

// BuildPreview renders a booking record into the grouped confirmation
// layout. Fields appear in canonical form order; sections the record does
// not carry are omitted entirely.
func BuildPreview(record *entity.BookingRecord) []PreviewSection {
	sections := []PreviewSection{{
		Title: "Client Details",
		Items: orderedItems(record.Fields, "", entity.ClientFieldKeys),
	}}

	for _, kind := range entity.Sections {
		if !record.HasSection(kind) {
			continue
		}
		sections = append(sections, PreviewSection{
			Title: sectionTitles[kind],
			Items: orderedItems(record.Fields, kind.Prefix(), entity.SectionFieldKeys),
		})
	}
	return sections
}

func orderedItems(fields map[string]string, prefix string, order []string) []PreviewItem {
	items := make([]PreviewItem, 0, len(order))
	for _, field := range order {
		key := prefix + field
		value, ok := fields[key]
		if !ok {
			continue
		}
		items = append(items, PreviewItem{
			Key:   key,
			Label: humanizeKey(key),
			Value: value,
		})
	}
	return items
}

// humanizeKey turns a field key into a display label: underscores become
// spaces, camelCase boundaries split, and every word is title-cased.
// "permanent_bedRentAmount" renders as "Permanent Bed Rent Amount".
func humanizeKey(key string) string {
	var b strings.Builder
	runes := []rune(strings.ReplaceAll(key, "_", " "))
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
