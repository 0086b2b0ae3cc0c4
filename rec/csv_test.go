package rec_test

import (
	"strings"
	"testing"

	"coreseq"
	"coreseq/rec"

	"github.com/stretchr/testify/require"
)

func TestCSV_DefaultHeader(t *testing.T) {
	in := strings.NewReader("id,country,color\n1,Spain,Blue\n2,Italy,Green\n")

	src := rec.NewCSV(in)
	vals, errs := coreseq.Collect(src.Records())

	require.Empty(t, errs)
	require.Equal(t, []rec.Record{
		{"1", "Spain", "Blue"},
		{"2", "Italy", "Green"},
	}, vals)
	require.Equal(t, []rec.Record{{"id", "country", "color"}}, src.Header())
}

func TestCSV_NoHeader(t *testing.T) {
	in := strings.NewReader("1,Spain\n2,Italy\n")

	src := rec.NewCSV(in, rec.WithHeaderRows(0))
	vals, errs := coreseq.Collect(src.Records())

	require.Empty(t, errs)
	require.Len(t, vals, 2)
	require.Empty(t, src.Header())
}

func TestCSV_CustomComma(t *testing.T) {
	in := strings.NewReader("a;b;c\n1;2;3\n")

	vals, errs := coreseq.Collect(rec.ReadCSV(in, rec.WithComma(';')))

	require.Empty(t, errs)
	require.Equal(t, []rec.Record{{"1", "2", "3"}}, vals)
}

func TestCSV_MultipleHeaderRows(t *testing.T) {
	in := strings.NewReader("title\nid,country\n1,Spain\n")

	src := rec.NewCSV(in, rec.WithHeaderRows(2))
	vals, _ := coreseq.Collect(src.Records())

	require.Equal(t, []rec.Record{{"1", "Spain"}}, vals)
	require.Equal(t, []rec.Record{{"title"}, {"id", "country"}}, src.Header())
}

func TestCSV_EmptyInput(t *testing.T) {
	vals, errs := coreseq.Collect(rec.ReadCSV(strings.NewReader("")))

	require.Empty(t, vals)
	require.Empty(t, errs)
}

func TestCSV_ParseErrorForwarded(t *testing.T) {
	// The second data row has a bare quote inside an unquoted field.
	in := strings.NewReader("id,name\n1,ok\n2,br\"oken\n3,fine\n")

	vals, errs := coreseq.Collect(rec.ReadCSV(in))

	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Reason.Error(), "bare \" in non-quoted-field")
	require.Contains(t, vals, rec.Record{"1", "ok"})
	require.Contains(t, vals, rec.Record{"3", "fine"})
}

func TestCSV_IntegratesWithRecordOps(t *testing.T) {
	in := strings.NewReader(
		"id,country,qty\n" +
			"1,Spain,10\n" +
			"2,Italy,9\n" +
			"3,Spain,2\n")

	c := rec.ReadCSV(in)
	c = rec.Where(c, rec.Is(rec.FInt(2), rec.Gte, "9"))
	c = rec.SortKey(c, rec.Key{rec.FInt(2)})
	c = rec.Cut(c, 1, 2)

	vals, errs := coreseq.Collect(c)

	require.Empty(t, errs)
	require.Equal(t, []rec.Record{
		{"Italy", "9"},
		{"Spain", "10"},
	}, vals)
}
