//go:build nodrawings

package xlsxread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawingQueriesReportDisabled(t *testing.T) {
	p, err := Open(buildTestWorkbook(t))
	require.NoError(t, err)
	defer p.Close()

	info, err := p.SheetByName("Sheet1")
	require.NoError(t, err)

	_, err = p.Drawings(info)
	assert.ErrorIs(t, err, ErrDrawingsDisabled)

	_, err = p.Images(info)
	assert.ErrorIs(t, err, ErrDrawingsDisabled)

	// Cell access is unaffected by the missing drawing surface.
	w, err := p.Worksheet(info)
	require.NoError(t, err)
	assert.NotEmpty(t, w.Cells())
}
