package decoder_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ArthurGoodman/text-recognizer/costmatrix"
	"github.com/ArthurGoodman/text-recognizer/decoder"
	"github.com/ArthurGoodman/text-recognizer/glyphs"
	"github.com/ArthurGoodman/text-recognizer/raster"
	"github.com/ArthurGoodman/text-recognizer/semiring"
)

// TestDecode_ExactStrips decodes concatenations of catalog templates.
func TestDecode_ExactStrips(t *testing.T) {
	cat := abcCatalog(t)
	dec, err := decoder.New(cat, semiring.Uint64)
	require.NoError(t, err)

	cases := []struct {
		name  string
		input string
		text  string
		path  []int
	}{
		{"SingleA", "A", "A", []int{0}},
		{"SingleB", "B", "B", []int{1}},
		{"ABC", "ABC", "ABC", []int{0, 1, 2}},
		{"Space", "A B", "A B", []int{0, 3, 1}},
		{"CollapsedSpaces", "A   B", "A B", []int{0, 3, 3, 3, 1}},
		{"Repeated", "CCAB", "CCAB", []int{2, 2, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := strip(t, cat, tc.input)
			r, err := dec.Decode(s)
			require.NoError(t, err)
			assert.Equal(t, tc.text, r.Text)
			assert.Zero(t, r.Cost)
			assert.Equal(t, s.Width()-1, r.End)
			if diff := cmp.Diff(tc.path, r.Path); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDecode_PathCoversStrip checks that decoded template widths sum to the strip width.
func TestDecode_PathCoversStrip(t *testing.T) {
	cat := abcCatalog(t)
	noisy := art(t,
		"#.#..###",
		"###.#..#",
		"#..##.##",
	)
	dec, err := decoder.New(cat, semiring.Uint64)
	require.NoError(t, err)
	got, err := dec.Decode(noisy)
	require.NoError(t, err)

	sum := 0
	for _, tt := range got.Path {
		sum += cat.Width(tt)
	}
	assert.Equal(t, noisy.Width(), sum)
	assert.Greater(t, got.Cost, uint64(0))
	assert.NotContains(t, got.Text, "  ")
}

// TestDecode_Deterministic decodes the same strip repeatedly and concurrently.
func TestDecode_Deterministic(t *testing.T) {
	cat := abcCatalog(t)
	s := art(t,
		"#.#.###.#",
		"##.##.###",
		"#..#.####",
	)
	dec, err := decoder.New(cat, semiring.Uint64)
	require.NoError(t, err)
	want, err := dec.Decode(s)
	require.NoError(t, err)

	got := make([]decoder.Reading[uint64], 8)
	var g errgroup.Group
	for i := range got {
		g.Go(func() error {
			r, err := dec.Decode(s)
			got[i] = r
			return err
		})
	}
	require.NoError(t, g.Wait())
	for i, r := range got {
		if diff := cmp.Diff(want, r); diff != "" {
			t.Errorf("run %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// TestDecode_Options checks that memory mode and worker count do not change the result.
func TestDecode_Options(t *testing.T) {
	cat := abcCatalog(t)
	s := art(t,
		"#.###.#.#",
		"###.####.",
		"#.###.#.#",
	)
	base, err := decoder.New(cat, semiring.Uint64)
	require.NoError(t, err)
	want, err := base.Decode(s)
	require.NoError(t, err)

	variants := map[string][]decoder.Option{
		"Rolling":  {decoder.WithMemoryMode(decoder.RollingRows)},
		"Workers1": {decoder.WithWorkers(1)},
		"Workers3": {decoder.WithWorkers(3), decoder.WithMemoryMode(decoder.RollingRows)},
	}
	for name, opts := range variants {
		t.Run(name, func(t *testing.T) {
			dec, err := decoder.New(cat, semiring.Uint64, opts...)
			require.NoError(t, err)
			got, err := dec.Decode(s)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("reading mismatch (-default +%s):\n%s", name, diff)
			}
		})
	}

	assert.Panics(t, func() { decoder.WithWorkers(0) })
}

// TestDecode_Domains decodes the same strip over uint64, int64 and float64 costs.
func TestDecode_Domains(t *testing.T) {
	cat := abcCatalog(t)
	s := art(t,
		"#..###.#",
		"##.#.##.",
		"#..####.",
	)

	du, err := decoder.New(cat, semiring.Uint64)
	require.NoError(t, err)
	di, err := decoder.New(cat, semiring.Int64)
	require.NoError(t, err)
	df, err := decoder.New(cat, semiring.Float64)
	require.NoError(t, err)

	ru, err := du.DecodeTopK(s, 3)
	require.NoError(t, err)
	ri, err := di.DecodeTopK(s, 3)
	require.NoError(t, err)
	rf, err := df.DecodeTopK(s, 3)
	require.NoError(t, err)
	require.Len(t, ri, len(ru))
	require.Len(t, rf, len(ru))

	for j := range ru {
		assert.Equal(t, ru[j].Text, ri[j].Text)
		assert.Equal(t, ru[j].Text, rf[j].Text)
		assert.Equal(t, ru[j].Path, ri[j].Path)
		assert.Equal(t, ru[j].Path, rf[j].Path)
		assert.Equal(t, int64(ru[j].Cost), ri[j].Cost)
		assert.Equal(t, float64(ru[j].Cost), rf[j].Cost)
	}
}

// TestDecodeTopK walks the ending columns in order W-1, W-2, ...
func TestDecodeTopK(t *testing.T) {
	cat := abcCatalog(t)
	s := strip(t, cat, "ABC")
	dec, err := decoder.New(cat, semiring.Uint64)
	require.NoError(t, err)

	rs, err := dec.DecodeTopK(s, 3)
	require.NoError(t, err)
	require.Len(t, rs, 3)

	assert.Equal(t, 5, rs[0].End)
	assert.Equal(t, "ABC", rs[0].Text)
	assert.Zero(t, rs[0].Cost)

	assert.Equal(t, 4, rs[1].End)
	assert.Equal(t, "AB", rs[1].Text)
	assert.Zero(t, rs[1].Cost)
	if diff := cmp.Diff([]int{0, 1}, rs[1].Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	// Not re-ranked: the third reading is worse than the first two.
	assert.Equal(t, 3, rs[2].End)
	assert.Greater(t, rs[2].Cost, uint64(0))

	// K=1 is Decode.
	one, err := dec.DecodeTopK(s, 1)
	require.NoError(t, err)
	single, err := dec.Decode(s)
	require.NoError(t, err)
	require.Len(t, one, 1)
	if diff := cmp.Diff(single, one[0]); diff != "" {
		t.Errorf("top-1 differs from Decode (-decode +top1):\n%s", diff)
	}

	// K larger than the strip is clamped to W.
	all, err := dec.DecodeTopK(s, 100)
	require.NoError(t, err)
	assert.Len(t, all, s.Width())
	assert.Equal(t, 0, all[len(all)-1].End)

	_, err = dec.DecodeTopK(s, 0)
	assert.ErrorIs(t, err, decoder.ErrBadK)
}

// TestDecode_Errors covers the failure semantics of the pipeline.
func TestDecode_Errors(t *testing.T) {
	cat := abcCatalog(t)

	_, err := decoder.New[uint64](nil, semiring.Uint64)
	assert.ErrorIs(t, err, glyphs.ErrEmptyCatalog)

	_, err = decoder.New[uint64](cat, nil)
	assert.ErrorIs(t, err, decoder.ErrNilInput)

	dec, err := decoder.New(cat, semiring.Uint64)
	require.NoError(t, err)
	assert.Same(t, cat, dec.Catalog())

	_, err = dec.Decode(nil)
	assert.ErrorIs(t, err, decoder.ErrNilInput)

	empty, err := raster.Filled(0, cat.Height(), raster.White)
	require.NoError(t, err)
	_, err = dec.Decode(empty)
	assert.ErrorIs(t, err, decoder.ErrNoCandidatePath)
	_, err = dec.DecodeTopK(empty, 2)
	assert.ErrorIs(t, err, decoder.ErrNoCandidatePath)

	tall := art(t, "#", "#", "#", "#")
	_, err = dec.Decode(tall)
	assert.ErrorIs(t, err, costmatrix.ErrHeightMismatch)

	_, err = decoder.Recognize(tall, cat)
	assert.ErrorIs(t, err, costmatrix.ErrHeightMismatch)
	_, err = decoder.Recognize(tall, nil)
	assert.ErrorIs(t, err, glyphs.ErrEmptyCatalog)
}

// TestRecognize is the uint64 convenience entry point.
func TestRecognize(t *testing.T) {
	cat := abcCatalog(t)
	text, err := decoder.Recognize(strip(t, cat, "BA C"), cat)
	require.NoError(t, err)
	assert.Equal(t, "BA C", text)
}

// TestDecode_Logger checks that stage records reach an injected logger.
func TestDecode_Logger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cat := abcCatalog(t)

	dec, err := decoder.New(cat, semiring.Uint64, decoder.WithLogger(log), decoder.WithLogger(nil))
	require.NoError(t, err)
	_, err = dec.Decode(strip(t, cat, "AB"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "building cost matrix")
	assert.Contains(t, out, "finding shortest path")
	assert.Contains(t, out, "text=AB")
}
