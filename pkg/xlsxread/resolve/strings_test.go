package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/models"
	"github.com/ukaji3/xlsxread-go/pkg/xlsxread/raw"
)

func TestStringTable(t *testing.T) {
	sst := &raw.SharedStrings{
		Items: []raw.StringItem{
			{Text: ptr("plain")},
			{
				Runs: []raw.Run{
					{Text: "rich "},
					{
						Text: "part",
						Properties: &raw.FontProperties{
							Name: "Arial",
							Bold: true,
							Size: ptr(12.0),
							Color: &raw.Color{
								RGB: "FFED7D31",
							},
						},
					},
				},
			},
			{
				Text: ptr("東京"),
				PhoneticRuns: []raw.PhoneticRun{
					{StartIndex: 0, EndIndex: 2, Text: "トウキョウ"},
				},
				Phonetic: &raw.PhoneticProperties{FontID: ptr(uint32(1)), Type: "fullwidthKatakana"},
			},
		},
	}

	table := NewStringTable(sst, NewStyles(nil, nil))
	require.Equal(t, 3, table.Len())

	plain, err := table.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "plain", plain.Text)
	assert.Empty(t, plain.Runs)

	rich, err := table.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "rich part", rich.Text)
	require.Len(t, rich.Runs, 2)
	assert.Nil(t, rich.Runs[0].Font)
	require.NotNil(t, rich.Runs[1].Font)
	assert.Equal(t, "Arial", rich.Runs[1].Font.Name)
	assert.True(t, rich.Runs[1].Font.Bold)
	assert.Equal(t, 12.0, rich.Runs[1].Font.Size)
	assert.Equal(t, models.HexColor("ed7d31ff"), rich.Runs[1].Font.Color)

	phonetic, err := table.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "東京", phonetic.Text)
	require.Len(t, phonetic.PhoneticRuns, 1)
	assert.Equal(t, "トウキョウ", phonetic.PhoneticRuns[0].Text)
	assert.Equal(t, uint32(0), phonetic.PhoneticRuns[0].StartIndex)
	assert.Equal(t, uint32(2), phonetic.PhoneticRuns[0].EndIndex)
	require.NotNil(t, phonetic.Phonetic)
	assert.Equal(t, "fullwidthKatakana", phonetic.Phonetic.Type)
}

func TestStringTableOutOfRange(t *testing.T) {
	table := NewStringTable(&raw.SharedStrings{Items: []raw.StringItem{{Text: ptr("only")}}}, nil)

	_, err := table.Get(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = table.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestStringTableNilPart(t *testing.T) {
	table := NewStringTable(nil, nil)
	assert.Equal(t, 0, table.Len())
	_, err := table.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
