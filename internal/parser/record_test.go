package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RvanB/marc-lsp/internal/parser"
)

const twoRecordMRK = `=LDR  00000pam  2200000 a 4500
=001  111111111
=245  10$aFirst title

=LDR  00000pas  2200000 a 4500
=001  222222222
=245  10$aSecond title`

func TestParseDocument(t *testing.T) {
	tok := parser.ForFormat(parser.FormatMRK)

	t.Run("two records split on leaders", func(t *testing.T) {
		records := parser.ParseDocument(twoRecordMRK, tok)
		require.Len(t, records, 2)

		require.NotNil(t, records[0].Leader)
		assert.Equal(t, 1, records[0].Leader.LineNumber)
		assert.Len(t, records[0].Fields, 2)

		require.NotNil(t, records[1].Leader)
		assert.Equal(t, 5, records[1].Leader.LineNumber)
		assert.Len(t, records[1].Fields, 2)
	})

	t.Run("leaderless fragment yields one record", func(t *testing.T) {
		records := parser.ParseDocument("=245  10$aTitle\n=500    $aNote", tok)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Leader)
		assert.Len(t, records[0].Fields, 2)
	})

	t.Run("empty document", func(t *testing.T) {
		assert.Empty(t, parser.ParseDocument("", tok))
	})
}

func TestRecordForLine(t *testing.T) {
	tok := parser.ForFormat(parser.FormatMRK)
	records := parser.ParseDocument(twoRecordMRK, tok)
	require.Len(t, records, 2)

	tests := []struct {
		name string
		line int
		want *parser.Record
	}{
		{"first record leader", 1, records[0]},
		{"first record field", 3, records[0]},
		{"blank line between records", 4, records[0]},
		{"second record leader", 5, records[1]},
		{"second record field", 7, records[1]},
		{"before any record", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.RecordForLine(records, tt.line)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, tt.want, got)
		})
	}
}
