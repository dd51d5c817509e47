package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solver3/solver3/displaylist"
)

func TestConsumerFuncAdapter(t *testing.T) {
	var gotIndex SpatialIndex
	var gotCommands int
	c := ConsumerFunc(func(dl *displaylist.DisplayList, index SpatialIndex) error {
		gotCommands = len(dl.Commands)
		gotIndex = index
		return nil
	})

	dl := &displaylist.DisplayList{Commands: []displaylist.Command{{Kind: displaylist.CmdBackground}}}
	index := SpatialIndex{0: NodeBoxes{}}

	err := c.Paint(dl, index)
	assert.NoError(t, err)
	assert.Equal(t, 1, gotCommands)
	assert.Len(t, gotIndex, 1)
}
