package ui

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/disclosure"
)

// disclosureItem is one expandable row. Detail is only rendered while the
// item is expanded.
type disclosureItem struct {
	ID      string
	Summary g.Node
	Detail  g.Node
}

// disclosureToggleURL is the fragment that returns item id with its state
// flipped. Only the item's own state travels in the query, so a response for
// one item never carries another item's state.
func disclosureToggleURL(base, id string, expanded bool) string {
	u := fmt.Sprintf("%s/%s/toggle", base, url.PathEscape(id))
	if expanded {
		u += "?open=" + url.QueryEscape(id)
	}
	return u
}

func disclosureRowID(listID, id string) string {
	return listID + "-item-" + id
}

// disclosureRow renders one item. Its button swaps only this row; repeat
// clicks while a request is in flight are dropped.
func disclosureRow(listID, toggleBase string, item disclosureItem, expanded bool) g.Node {
	rowID := disclosureRowID(listID, item.ID)
	panelID := listID + "-" + item.ID
	return Div(
		ID(rowID),
		Class("border-b border-gray-200 last:border-b-0"),
		Data("disclosure-item", item.ID),
		Button(
			Type("button"),
			Class("w-full py-6 px-6 flex justify-between items-center text-left hover:text-blue-600 transition-colors duration-300"),
			Aria("expanded", boolAttr(expanded)),
			g.If(expanded, Aria("controls", panelID)),
			hx.Get(disclosureToggleURL(toggleBase, item.ID, expanded)),
			hx.Target("#"+rowID),
			hx.Swap("outerHTML"),
			hx.Sync("this:drop"),
			item.Summary,
			chevron(expanded),
		),
		g.If(expanded, Div(
			ID(panelID),
			Class("disclosure-panel px-6 pb-6"),
			item.Detail,
		)),
	)
}

func disclosureList(listID, toggleBase string, items []disclosureItem, state *disclosure.List) g.Node {
	rows := make([]g.Node, 0, len(items))
	for _, item := range items {
		rows = append(rows, disclosureRow(listID, toggleBase, item, state.IsExpanded(item.ID)))
	}
	return Div(
		ID(listID),
		Class("bg-white rounded-xl shadow-lg"),
		g.Group(rows),
	)
}
