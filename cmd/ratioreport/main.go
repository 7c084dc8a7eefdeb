// ratioreport runs the byte-oriented codecs over a corpus directory
// and compares their compression ratios with general-purpose baseline
// compressors, printing a table and rendering an SVG scatter chart of
// ratio against input size.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/baseline"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/compression"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/types"
)

// ratioPoint is one (file size, ratio) measurement for one method.
type ratioPoint struct {
	size  float64
	ratio float64
}

func main() {
	corpus := flag.String("corpus", ".", "Directory of files to measure")
	chartPath := flag.String("chart", "ratios.svg", "Output SVG path (empty to skip)")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	entries, err := os.ReadDir(*corpus)
	if err != nil {
		log.Fatal().Msgf("reading corpus dir: %v", err)
	}

	series := map[string][]ratioPoint{}
	baselines := baseline.All()

	fmt.Printf("%-30s %10s %10s %10s %10s %10s\n",
		"file", "bytes", "huffman", "lzss", "lz4", "zstd")

	// Library codecs write outputs next to their input, so each corpus
	// file is staged into a scratch dir first.
	workDir, err := os.MkdirTemp("", "ratioreport")
	if err != nil {
		log.Fatal().Msgf("creating work dir: %v", err)
	}
	defer os.RemoveAll(workDir)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(*corpus, entry.Name()))
		if err != nil {
			log.Warn().Msgf("skipping %s: %v", entry.Name(), err)
			continue
		}
		if len(data) == 0 {
			continue
		}

		staged := filepath.Join(workDir, entry.Name())
		if err := os.WriteFile(staged, data, 0644); err != nil {
			log.Fatal().Msgf("staging %s: %v", entry.Name(), err)
		}

		ratios := map[string]float64{}
		for _, algo := range []types.Algorithm{types.AlgoHuffman, types.AlgoLZSS} {
			r := compression.Compress(algo, staged)
			if !r.OK() {
				log.Warn().Msgf("%s on %s: status=%d", algo, entry.Name(), r.Error)
				continue
			}
			ratios[algo.String()] = r.Ratio()
		}
		for _, codec := range baselines {
			compressed, err := codec.Compress(data)
			if err != nil {
				log.Warn().Msgf("%s on %s: %v", codec.Name(), entry.Name(), err)
				continue
			}
			ratios[codec.Name()] = float64(len(compressed)) / float64(len(data))
		}

		fmt.Printf("%-30s %10d %10.4f %10.4f %10.4f %10.4f\n",
			entry.Name(), len(data),
			ratios["huffman"], ratios["lzss"], ratios["lz4"], ratios["zstd"])

		for name, ratio := range ratios {
			series[name] = append(series[name], ratioPoint{
				size:  float64(len(data)),
				ratio: ratio,
			})
		}
	}

	if *chartPath != "" && len(series) > 0 {
		if err := renderChart(*chartPath, series); err != nil {
			log.Fatal().Msgf("rendering chart: %v", err)
		}
		log.Info().Msgf("chart written to %s", *chartPath)
	}
}

func renderChart(path string, series map[string][]ratioPoint) error {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	var chartSeries []chart.Series
	for _, name := range names {
		points := series[name]
		sort.Slice(points, func(i, j int) bool { return points[i].size < points[j].size })
		xvals := make([]float64, len(points))
		yvals := make([]float64, len(points))
		for i, p := range points {
			xvals[i] = p.size
			yvals[i] = p.ratio
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name: name,
			Style: chart.Style{
				DotWidth: 3,
			},
			XValues: xvals,
			YValues: yvals,
		})
	}

	graph := chart.Chart{
		XAxis:  chart.XAxis{Name: "input bytes"},
		YAxis:  chart.YAxis{Name: "ratio"},
		Series: chartSeries,
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return graph.Render(chart.SVG, fh)
}
