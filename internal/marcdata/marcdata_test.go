package marcdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RvanB/marc-lsp/internal/marcdata"
)

func loadDefault(t *testing.T) *marcdata.StaticData {
	t.Helper()
	data, err := marcdata.Default()
	require.NoError(t, err)
	return data
}

func TestRecordTypeFromLeader(t *testing.T) {
	tests := []struct {
		name   string
		leader string
		want   marcdata.RecordType
	}{
		{"language material", "00000pam  2200000 a 4500", marcdata.Bibliographic},
		{"serial holdings", "00000pvm  2200000 a 4500", marcdata.Holdings},
		{"authority", "00000pzm  2200000 a 4500", marcdata.Authority},
		{"classification", "00000pwm  2200000 a 4500", marcdata.Classification},
		{"community information", "00000pqm  2200000 a 4500", marcdata.Community},
		{"serial item is bibliographic", "00000psm  2200000 a 4500", marcdata.Bibliographic},
		{"unknown code", "000001#m  2200000 a 4500", marcdata.Bibliographic},
		{"short leader", "0000", marcdata.Bibliographic},
		{"empty leader", "", marcdata.Bibliographic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, marcdata.RecordTypeFromLeader(tt.leader))
		})
	}
}

func TestGetTagDefinition(t *testing.T) {
	data := loadDefault(t)

	t.Run("bibliographic tag", func(t *testing.T) {
		def, ok := data.GetTagDefinition("245")
		require.True(t, ok)
		assert.Equal(t, "Title Statement", def.Name)
		assert.False(t, def.Repeatable)
	})

	t.Run("holdings tag", func(t *testing.T) {
		def, ok := data.GetTagDefinition("852")
		require.True(t, ok)
		assert.Equal(t, "Location", def.Name)
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, ok := data.GetTagDefinition("999")
		assert.False(t, ok)
	})
}

func TestGetSubfieldDefinition(t *testing.T) {
	data := loadDefault(t)

	sub, ok := data.GetSubfieldDefinition("245", "a")
	require.True(t, ok)
	assert.Equal(t, "Title", sub.Name)

	_, ok = data.GetSubfieldDefinition("245", "z")
	assert.False(t, ok)

	_, ok = data.GetSubfieldDefinition("999", "a")
	assert.False(t, ok)
}

func TestFixedFieldLookups(t *testing.T) {
	data := loadDefault(t)

	t.Run("tag with layout", func(t *testing.T) {
		assert.True(t, data.IsFixedField("008", marcdata.Bibliographic))
		assert.False(t, data.IsFixedField("245", marcdata.Bibliographic))
	})

	t.Run("layouts differ per record type", func(t *testing.T) {
		bib, ok := data.GetPositionInfo("008", 6, marcdata.Bibliographic)
		require.True(t, ok)
		assert.Equal(t, "Type of date/Publication status", bib.Name)

		hold, ok := data.GetPositionInfo("008", 6, marcdata.Holdings)
		require.True(t, ok)
		assert.Equal(t, "Receipt or acquisition status", hold.Name)
	})

	t.Run("record type without a layout falls back to bibliographic", func(t *testing.T) {
		pos, ok := data.GetPositionInfo("001", 0, marcdata.Holdings)
		require.True(t, ok)
		assert.Equal(t, "Control Number", pos.Name)
	})

	t.Run("open ended position", func(t *testing.T) {
		pos, ok := data.GetPositionInfo("001", 500, marcdata.Bibliographic)
		require.True(t, ok)
		assert.True(t, pos.OpenEnded())
	})

	t.Run("offset beyond every position", func(t *testing.T) {
		_, ok := data.GetPositionInfo("008", 500, marcdata.Bibliographic)
		assert.False(t, ok)
	})

	t.Run("undefined byte inside the field", func(t *testing.T) {
		// Bibliographic 008 byte 32 is undefined.
		_, ok := data.GetPositionInfo("008", 32, marcdata.Bibliographic)
		assert.False(t, ok)
	})
}

func TestGetAllTags(t *testing.T) {
	data := loadDefault(t)
	tags := data.GetAllTags()

	assert.Contains(t, tags, "245")
	assert.Contains(t, tags, "852")
	assert.IsIncreasing(t, tags)
}

func TestGetSubfieldsForTag(t *testing.T) {
	data := loadDefault(t)

	codes := data.GetSubfieldsForTag("245")
	assert.Contains(t, codes, "a")
	assert.IsIncreasing(t, codes)

	assert.Nil(t, data.GetSubfieldsForTag("999"))
}

func TestEmptyProvider(t *testing.T) {
	data := marcdata.Empty()

	_, ok := data.GetTagDefinition("245")
	assert.False(t, ok)
	assert.False(t, data.IsFixedField("008", marcdata.Bibliographic))
	assert.Empty(t, data.GetAllTags())

	bib, hold, fixed := data.Counts()
	assert.Zero(t, bib)
	assert.Zero(t, hold)
	assert.Zero(t, fixed)
}

func TestLoadDirMissingFilesTolerated(t *testing.T) {
	// An empty directory loads as an empty provider rather than
	// failing; only malformed files are errors.
	data, err := marcdata.LoadDir(t.TempDir())
	require.NoError(t, err)
	bib, hold, fixed := data.Counts()
	assert.Zero(t, bib+hold+fixed)
}
