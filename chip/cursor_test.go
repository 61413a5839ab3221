package chip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorAdvanceByteStayInPageWraps(t *testing.T) {
	c := NewCursor(DefaultGeometry)
	c.Byte = 255
	c.Page = 3
	c.AdvanceByte(true)
	assert.Equal(t, 0, c.Byte)
	assert.Equal(t, 3, c.Page, "stay_in_page must not touch the page field")
}

func TestCursorAdvanceByteFullWrapsAcrossPage(t *testing.T) {
	c := NewCursor(DefaultGeometry)
	c.Byte = 255
	c.Page = 3
	c.AdvanceByte(false)
	assert.Equal(t, 0, c.Byte)
	assert.Equal(t, 4, c.Page)
}

func TestCursorAdvanceByteFullWrapsAcrossDevice(t *testing.T) {
	c := NewCursor(DefaultGeometry)
	c.Block = 255
	c.Page = 255
	c.Byte = 255
	c.AdvanceByte(false)
	assert.Equal(t, 0, c.Block)
	assert.Equal(t, 0, c.Page)
	assert.Equal(t, 0, c.Byte)
}

func TestCursorAdvancePageRollsIntoBlock(t *testing.T) {
	c := NewCursor(DefaultGeometry)
	c.Page = 255
	c.Byte = 77
	c.AdvancePage()
	assert.Equal(t, 0, c.Byte)
	assert.Equal(t, 0, c.Page)
	assert.Equal(t, 1, c.Block)
}

func TestCursorAdvancePageWrapsBlockAtMax(t *testing.T) {
	c := NewCursor(DefaultGeometry)
	c.Block = 255
	c.Page = 255
	c.AdvancePage()
	assert.Equal(t, 0, c.Block)
	assert.Equal(t, 0, c.Page)
}

func TestCursorAdvanceBlockWraps(t *testing.T) {
	c := NewCursor(DefaultGeometry)
	c.Block = 255
	c.Page = 12
	c.Byte = 34
	c.AdvanceBlock()
	assert.Equal(t, 0, c.Block)
	assert.Equal(t, 0, c.Page)
	assert.Equal(t, 0, c.Byte)
}
