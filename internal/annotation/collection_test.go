package annotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/annotation"
)

func TestCollection_ListIsNeverMutated(t *testing.T) {
	c := annotation.NewCollection()
	c.Add(annotation.Annotation{ID: "a", Kind: annotation.KindComment, Text: "one"})
	c.Add(annotation.Annotation{ID: "b", Kind: annotation.KindHighlight})

	before, v1 := c.List()
	require.Len(t, before, 2)

	c.EditText("a", "two")
	c.Remove("b")
	c.Add(annotation.Annotation{ID: "c", Kind: annotation.KindHighlight})

	assert.Equal(t, "one", before[0].Text)
	assert.Equal(t, "b", before[1].ID)
	assert.Len(t, before, 2)

	after, v2 := c.List()
	assert.Greater(t, v2, v1)
	require.Len(t, after, 2)
	assert.Equal(t, "two", after[0].Text)
	assert.Equal(t, "c", after[1].ID)
}

func TestCollection_VersionOnlyMovesOnChange(t *testing.T) {
	c := annotation.NewCollection()
	assert.Equal(t, uint64(0), c.Version())

	c.Add(annotation.Annotation{ID: "h", Kind: annotation.KindHighlight})
	assert.Equal(t, uint64(1), c.Version())

	c.Remove("missing")
	c.EditText("h", "nope")
	c.EditText("missing", "nope")
	assert.Equal(t, uint64(1), c.Version())

	c.Clear()
	assert.Equal(t, uint64(2), c.Version())
	c.Clear()
	assert.Equal(t, uint64(2), c.Version())
}

func TestCollection_EmptyListNotNil(t *testing.T) {
	c := annotation.NewCollection()
	c.Add(annotation.Annotation{ID: "x"})
	c.Remove("x")

	items, _ := c.List()
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParseTool(t *testing.T) {
	for _, name := range []string{"move", "highlight", "comment"} {
		tool, err := annotation.ParseTool(name)
		require.NoError(t, err)
		assert.Equal(t, annotation.Tool(name), tool)
	}
	_, err := annotation.ParseTool("eraser")
	assert.Error(t, err)
}
