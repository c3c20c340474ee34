package theme

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	styles.Register(OceanStyle)
}

// OceanStyle is quill's own dark scheme.
var OceanStyle = chroma.MustNewStyle("quill-ocean", chroma.StyleEntries{
	chroma.Background:    "bg:#0f1c2e",
	chroma.Text:          "#d8e1ec",
	chroma.LineHighlight: "bg:#1d3351",
	chroma.Error:         "#ff6b6b bold",

	chroma.Keyword:         "bold #5fb3f0",
	chroma.KeywordConstant: "#c792ea",
	chroma.KeywordType:     "#7fdbca",

	chroma.String:       "#c3e88d",
	chroma.StringEscape: "#f78c6c",
	chroma.Number:       "#f78c6c",

	chroma.NameFunction: "#82aaff",
	chroma.NameBuiltin:  "#82aaff",
	chroma.NameClass:    "#ffcb6b",
	chroma.NameTag:      "#5fb3f0",

	chroma.Operator:    "#89ddff",
	chroma.Punctuation: "#a6b6c8",

	chroma.Comment:       "italic #5c7394",
	chroma.CommentPreproc: "#c792ea",

	chroma.GenericHeading:  "bold #5fb3f0",
	chroma.GenericDeleted:  "#ff6b6b",
	chroma.GenericInserted: "#c3e88d",
	chroma.GenericEmph:     "italic",
	chroma.GenericStrong:   "bold",
})
