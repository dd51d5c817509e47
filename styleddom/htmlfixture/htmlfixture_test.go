package htmlfixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/styleddom"
)

func TestBuildSimpleParagraph(t *testing.T) {
	dom, err := Build(`<body><p style="margin-top:30px;height:40px">B</p></body>`)
	require.NoError(t, err)
	root := dom.Root()
	require.Equal(t, styleddom.KindElement, dom.Kind(root))
	children := dom.Children(root)
	require.Len(t, children, 1)
	p := children[0]
	assert.Equal(t, "p", dom.Tag(p))
	style := dom.Style(p)
	assert.True(t, style.Margin.Top.IsAbsolute())
	assert.True(t, style.Height.IsAbsolute())
}

func TestBuildAppliesAuthorStylesheet(t *testing.T) {
	dom, err := Build(`<body><style>.big { font-weight: bold; }</style><span class="big">x</span></body>`)
	require.NoError(t, err)
	span := dom.Children(dom.Root())[0]
	assert.Equal(t, 700, dom.Style(span).FontWeight)
}

func TestBuildListCountersDefault(t *testing.T) {
	dom, err := Build(`<body><ul><li>a</li></ul></body>`)
	require.NoError(t, err)
	ul := dom.Children(dom.Root())[0]
	ulStyle := dom.Style(ul)
	require.Len(t, ulStyle.CounterReset, 1)
	assert.Equal(t, "list-item", ulStyle.CounterReset[0].Name)
	li := dom.Children(ul)[0]
	liStyle := dom.Style(li)
	require.Len(t, liStyle.CounterIncrement, 1)
	assert.Equal(t, 1, liStyle.CounterIncrement[0].Value)
}

func TestBuildTableColspan(t *testing.T) {
	dom, err := Build(`<body><table><tr><td colspan="2">C</td></tr></table></body>`)
	require.NoError(t, err)
	table := dom.Children(dom.Root())[0]
	tbody := dom.Children(table)[0] // inserted by the HTML parser
	row := dom.Children(tbody)[0]
	cell := dom.Children(row)[0]
	assert.Equal(t, 2, dom.Style(cell).ColSpan)
}
