// Package bookmarkhtml reads and writes the Netscape bookmark file format
// that browsers export: <H3> folders, <A HREF> links, nested <DL> lists.
package bookmarkhtml

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"bookmarkhub/internal/model"
)

// LooseFolder names the root category that collects links found outside
// any folder.
const LooseFolder = "Imported"

// Result is the parsed content of a bookmark file.
type Result struct {
	Categories []model.Category
	Items      []model.BookmarkItem
}

// Parser turns bookmark files into categories and website items.
type Parser struct {
	now   func() time.Time
	newID func() string
}

// NewParser creates a Parser with random ids.
func NewParser() *Parser {
	return &Parser{now: time.Now, newID: uuid.NewString}
}

// Parse reads a bookmark file with a default Parser.
func Parse(r io.Reader) (*Result, error) {
	return NewParser().Parse(r)
}

type folder struct {
	id string
	dl *html.Node // list holding the folder's entries
}

// Parse walks the document in order. Each <H3> opens a folder that owns the
// next <DL>; folders and links keep their document order as sibling order.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	var stack []folder
	pending := "" // folder waiting for its <DL>
	orders := make(map[string]int)
	loose := ""

	parentOf := func() *string {
		if len(stack) == 0 {
			return nil
		}
		return model.Ref(stack[len(stack)-1].id)
	}
	nextOrder := func(key string) int {
		n := orders[key]
		orders[key] = n + 1
		return n
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h3":
				parent := parentOf()
				name := strings.TrimSpace(text(n))
				if name == "" {
					name = "Untitled"
				}
				c := model.Category{
					ID:       p.newID(),
					Name:     name,
					ParentID: parent,
					Order:    nextOrder("cat:" + model.Deref(parent)),
				}
				res.Categories = append(res.Categories, c)
				pending = c.ID
			case "dl":
				if pending != "" {
					stack = append(stack, folder{id: pending, dl: n})
					pending = ""
				}
			case "a":
				pending = "" // an empty folder without a list
				href := attr(n, "href")
				if href == "" {
					break
				}
				categoryID := ""
				if len(stack) > 0 {
					categoryID = stack[len(stack)-1].id
				} else {
					if loose == "" {
						loose = p.newID()
						res.Categories = append(res.Categories, model.Category{
							ID:    loose,
							Name:  LooseFolder,
							Order: nextOrder("cat:"),
						})
					}
					categoryID = loose
				}
				title := strings.TrimSpace(text(n))
				if title == "" {
					title = href
				}
				res.Items = append(res.Items, model.BookmarkItem{
					ID:         p.newID(),
					Title:      title,
					CategoryID: categoryID,
					CreatedAt:  p.addDate(n),
					Order:      nextOrder("item:" + categoryID),
					Payload:    model.Website{URL: href, Favicon: attr(n, "icon_uri")},
				})
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && n.Data == "dl" && len(stack) > 0 && stack[len(stack)-1].dl == n {
			stack = stack[:len(stack)-1]
		}
	}
	walk(doc)

	return res, nil
}

// addDate reads ADD_DATE (unix seconds) as milliseconds.
func (p *Parser) addDate(n *html.Node) int64 {
	if sec, err := strconv.ParseInt(attr(n, "add_date"), 10, 64); err == nil && sec > 0 {
		return sec * 1000
	}
	return p.now().UnixMilli()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
