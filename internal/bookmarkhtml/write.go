package bookmarkhtml

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strings"

	"bookmarkhub/internal/items"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/tree"
)

const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
`

// Write renders categories as folders in tree order with their website
// items as links. Notes and files have no place in the format and are
// skipped.
func Write(w io.Writer, categories []model.Category, list []model.BookmarkItem) error {
	bw := bufio.NewWriter(w)
	f := tree.New(categories)

	byCategory := make(map[string][]model.BookmarkItem)
	for _, it := range list {
		if it.Type() == model.TypeWebsite {
			byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
		}
	}

	seen := make(map[string]bool)
	var folder func(parentID *string, depth int)
	folder = func(parentID *string, depth int) {
		indent := strings.Repeat("    ", depth)
		fmt.Fprintf(bw, "%s<DL><p>\n", indent)
		if parentID != nil {
			links := byCategory[*parentID]
			items.SortByOrder(links)
			for _, it := range links {
				site := it.Payload.(model.Website)
				fmt.Fprintf(bw, "%s    <DT><A HREF=\"%s\"", indent, html.EscapeString(site.URL))
				if it.CreatedAt > 0 {
					fmt.Fprintf(bw, " ADD_DATE=\"%d\"", it.CreatedAt/1000)
				}
				if site.Favicon != "" {
					fmt.Fprintf(bw, " ICON_URI=\"%s\"", html.EscapeString(site.Favicon))
				}
				fmt.Fprintf(bw, ">%s</A>\n", html.EscapeString(it.Title))
			}
		}
		for _, c := range f.Children(parentID) {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			fmt.Fprintf(bw, "%s    <DT><H3>%s</H3>\n", indent, html.EscapeString(c.Name))
			folder(model.Ref(c.ID), depth+1)
		}
		fmt.Fprintf(bw, "%s</DL><p>\n", indent)
	}

	if _, err := bw.WriteString(header); err != nil {
		return err
	}
	folder(nil, 0)
	return bw.Flush()
}
