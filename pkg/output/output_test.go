package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/tablectl/pkg/output"
	"github.com/stretchr/testify/require"
)

func TestOutput_Write(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, "auto")

	out.Write("Connecting... ", Default).WriteLine("Done", Green).Newline().WriteLine("Error: boom", Red)
	require.Equal(t, "Connecting... Done\n\nError: boom\n", buf.String())
}

func TestOutput_WriteAlwaysColors(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, "always")

	out.WriteLine("Done", Green)
	require.Contains(t, buf.String(), "\x1b[")
	require.Contains(t, buf.String(), "Done")

	buf.Reset()
	out.SetColorMode("never")
	out.WriteLine("Done", Green)
	require.Equal(t, "Done\n", buf.String())
}

func TestOutput_WriteTable(t *testing.T) {
	t.Run("renders headers and rows", func(t *testing.T) {
		var buf bytes.Buffer
		out := New(&buf, "never")

		var styled []int
		out.WriteTable(
			[]string{"Id", "Name"},
			[][]string{{"1", "Sales Hub"}, {"2", "Customer Service"}},
			func(i int, row []string) Color {
				styled = append(styled, i)
				return Yellow
			},
		)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		require.Contains(t, lines[0], "Id")
		require.Contains(t, lines[0], "Name")
		require.Contains(t, lines[2], "Sales Hub")
		require.Contains(t, lines[3], "Customer Service")
		require.Contains(t, styled, 0)
		require.Contains(t, styled, 1)
		require.Contains(t, styled, 2)
		require.NotContains(t, styled, 3)
	})

	t.Run("truncates wide cells", func(t *testing.T) {
		var buf bytes.Buffer
		out := New(&buf, "never")

		out.WriteTable([]string{"Description"}, [][]string{{strings.Repeat("x", MaxCellWidth+20)}}, nil)
		require.Contains(t, buf.String(), "…")
		require.NotContains(t, buf.String(), strings.Repeat("x", MaxCellWidth))
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, "never").WriteTable([]string{"Id"}, nil, nil)
		require.Equal(t, "No records found.\n", buf.String())
	})
}

func TestHighlightHeader(t *testing.T) {
	require.Equal(t, Yellow, HighlightHeader(0, []string{"Id"}))
	require.Equal(t, Default, HighlightHeader(1, []string{"1"}))
}

func TestOutput_Progress(t *testing.T) {
	var buf bytes.Buffer
	out := New(&buf, "never")

	done := out.Progress("Connecting to ClickHouse")
	done(nil)
	require.Equal(t, "Connecting to ClickHouse... Done\n", buf.String())

	buf.Reset()
	done = out.Progress("Connecting to ClickHouse")
	done(errors.New("refused"))
	require.Equal(t, "Connecting to ClickHouse... Failed\n", buf.String())
}
