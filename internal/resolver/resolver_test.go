package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RvanB/marc-lsp/internal/marcdata"
	"github.com/RvanB/marc-lsp/internal/parser"
	"github.com/RvanB/marc-lsp/internal/resolver"
)

func testResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	data, err := marcdata.Default()
	require.NoError(t, err)
	return resolver.New(data)
}

func mustParse(t *testing.T, tok parser.Tokenizer, line string) *parser.Field {
	t.Helper()
	field := tok.ParseLine(line, 1)
	require.NotNil(t, field, "line should parse: %q", line)
	return field
}

func TestResolveIndicators(t *testing.T) {
	r := testResolver(t)
	tok := parser.ForFormat(parser.FormatMRK)
	line := "=650  04$aDogs."
	field := mustParse(t, tok, line)

	t.Run("first indicator slot", func(t *testing.T) {
		res := r.Resolve(line, field, 6, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		assert.Equal(t, resolver.ZoneIndicator1, res.Kind)
		assert.Equal(t, 6, res.Start)
		assert.Equal(t, 7, res.End)
	})

	t.Run("second indicator slot", func(t *testing.T) {
		res := r.Resolve(line, field, 7, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		assert.Equal(t, resolver.ZoneIndicator2, res.Kind)
		assert.Equal(t, 7, res.Start)
		assert.Equal(t, 8, res.End)
	})
}

func TestResolveSubfields(t *testing.T) {
	r := testResolver(t)
	tok := parser.ForFormat(parser.FormatMRK)

	t.Run("offset inside subfield content", func(t *testing.T) {
		line := "=245  10$aTitle :$bsubtitle"
		field := mustParse(t, tok, line)

		res := r.Resolve(line, field, 12, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		assert.Equal(t, resolver.ZoneSubfield, res.Kind)
		require.NotNil(t, res.Subfield)
		assert.Equal(t, "a", res.Subfield.Code)
		assert.Equal(t, 0, res.SubfieldIndex)

		res = r.Resolve(line, field, 20, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		require.NotNil(t, res.Subfield)
		assert.Equal(t, "b", res.Subfield.Code)
		assert.Equal(t, 1, res.SubfieldIndex)
	})

	t.Run("repeated codes resolve by position", func(t *testing.T) {
		line := "=650  04$aDogs.$aCats."
		field := mustParse(t, tok, line)
		require.Len(t, field.Subfields, 2)

		res := r.Resolve(line, field, 17, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		assert.Equal(t, resolver.ZoneSubfield, res.Kind)
		assert.Equal(t, 1, res.SubfieldIndex)
		assert.Equal(t, "Cats.", res.Subfield.Content)
	})
}

func TestResolveTagZone(t *testing.T) {
	r := testResolver(t)
	tok := parser.ForFormat(parser.FormatMRK)
	line := "=245  10$aTitle"
	field := mustParse(t, tok, line)

	res := r.Resolve(line, field, 2, tok, marcdata.Bibliographic)
	require.NotNil(t, res)
	assert.Equal(t, resolver.ZoneTag, res.Kind)
	assert.True(t, res.FullLine)
	assert.Equal(t, 0, res.Start)
	assert.Equal(t, len(line), res.End)
}

func TestResolveFixedField(t *testing.T) {
	r := testResolver(t)
	tok := parser.ForFormat(parser.FormatMRK)
	line := "=008  230101s2023    nyua     b    001 0 eng d"
	field := mustParse(t, tok, line)

	t.Run("bibliographic type of date", func(t *testing.T) {
		// Content starts at 6, so char 12 is field offset 6.
		res := r.Resolve(line, field, 12, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		assert.Equal(t, resolver.ZoneFixedPosition, res.Kind)
		require.NotNil(t, res.Position)
		assert.Equal(t, "Type of date/Publication status", res.Position.Name)
		assert.Equal(t, 6, res.FieldOffset)
		assert.Equal(t, "s", res.Value)
		assert.Equal(t, 12, res.Start)
		assert.Equal(t, 13, res.End)
	})

	t.Run("holdings layout differs at the same offset", func(t *testing.T) {
		res := r.Resolve(line, field, 12, tok, marcdata.Holdings)
		require.NotNil(t, res)
		require.NotNil(t, res.Position)
		assert.Equal(t, "Receipt or acquisition status", res.Position.Name)
	})

	t.Run("date range spans multiple characters", func(t *testing.T) {
		// Offsets 7-10 are Date 1.
		res := r.Resolve(line, field, 14, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		require.NotNil(t, res.Position)
		assert.Equal(t, 13, res.Start)
		assert.Equal(t, 17, res.End)
		assert.Equal(t, "2023", res.Value)
	})

	t.Run("tag region declines fixed resolution", func(t *testing.T) {
		res := r.Resolve(line, field, 1, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		assert.Equal(t, resolver.ZoneTag, res.Kind)
	})

	t.Run("open ended control field", func(t *testing.T) {
		ctrlLine := "=001  123456789"
		ctrl := mustParse(t, tok, ctrlLine)
		res := r.Resolve(ctrlLine, ctrl, 8, tok, marcdata.Bibliographic)
		require.NotNil(t, res)
		assert.Equal(t, resolver.ZoneFixedPosition, res.Kind)
		require.NotNil(t, res.Position)
		assert.True(t, res.Position.OpenEnded())
		assert.Equal(t, "123456789", res.Value)
		assert.Equal(t, 6, res.Start)
		assert.Equal(t, len(ctrlLine), res.End)
	})
}

func TestResolveMisses(t *testing.T) {
	r := testResolver(t)
	tok := parser.ForFormat(parser.FormatMRK)
	line := "=245  10$aTitle"
	field := mustParse(t, tok, line)

	// Past the end of everything.
	assert.Nil(t, r.Resolve(line, field, 99, tok, marcdata.Bibliographic))
	assert.Nil(t, r.Resolve(line, field, -1, tok, marcdata.Bibliographic))
}
