// compengine is the command adapter for the compression library: it
// translates command-line requests into dispatcher calls and publishes
// the outcome as logs and statsd telemetry. It stays a thin
// translation layer; all format and algorithm behavior lives in the
// library packages.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/compression"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/dctimg"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/metrics"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/sysinfo"
	"github.com/cgajda/AEROSP-552-COMPRESSION/internal/types"
)

func main() {
	mode := flag.String("mode", "compress", "Operation: compress, decompress, or folder")
	algoName := flag.String("algo", "huffman", "Algorithm: huffman, lzss, or dct")
	preview := flag.Bool("preview", false, "Also write the one-way JPEG preview (dct compress only)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: compengine [-mode compress|decompress|folder] [-algo huffman|lzss|dct] [-preview] <path>\n")
		os.Exit(2)
	}
	path := flag.Arg(0)

	viper.SetEnvPrefix("comp")
	viper.AutomaticEnv()
	viper.SetDefault("log_level", "info")
	viper.SetDefault("statsd_addr", "")

	level, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Invalid algorithm names are rejected here, before dispatch.
	algo, ok := types.ParseAlgorithm(*algoName)
	if !ok {
		log.Error().Msgf("invalid algorithm %q", *algoName)
		os.Exit(2)
	}

	tele := metrics.New(viper.GetString("statsd_addr"), []string{"service:compengine"})
	defer tele.Close()

	log.Info().Msgf("%s requested: algo=%s path=%s", *mode, algo, path)

	start := time.Now()
	var r types.Result
	switch *mode {
	case "compress":
		r = compression.Compress(algo, path)
	case "decompress":
		r = compression.Decompress(algo, path)
	case "folder":
		r = compression.CompressFolder(algo, path)
	default:
		log.Error().Msgf("invalid mode %q", *mode)
		os.Exit(2)
	}
	elapsed := time.Since(start)

	tags := []string{"algo:" + algo.String(), "mode:" + *mode}
	tele.Count(metrics.BytesIn, int64(r.BytesIn), tags)
	tele.Count(metrics.BytesOut, int64(r.BytesOut), tags)
	tele.Gauge(metrics.Ratio, r.Ratio(), tags)
	tele.Timing(metrics.OperationLatency, elapsed, tags)

	usage := sysinfo.Sample()
	log.Debug().Msgf("resource usage: user=%v system=%v maxrss=%dKiB",
		usage.UserCPU, usage.SystemCPU, usage.MaxRSSKiB)

	if !r.OK() {
		tele.Count(metrics.OperationErrors, 1, tags)
		log.Error().Msgf("%s failed: status=%d bytesIn=%d", *mode, r.Error, r.BytesIn)
		os.Exit(1)
	}

	log.Info().Msgf("%s succeeded: bytesIn=%d bytesOut=%d ratio=%.4f elapsed=%v",
		*mode, r.BytesIn, r.BytesOut, r.Ratio(), elapsed)

	if *preview && algo == types.AlgoDCT && *mode == "compress" {
		pr := dctimg.WriteJPEGPreview(path)
		if pr.OK() {
			log.Info().Msgf("preview written: bytesOut=%d", pr.BytesOut)
		} else {
			log.Warn().Msgf("preview failed: status=%d", pr.Error)
		}
	}
}
