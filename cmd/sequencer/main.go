// Command sequencer runs a single-node rollup block-proposer sequencer
// against the in-process devnet collaborators in internal/collabs. It
// is a development harness, not a production node: the world state,
// transaction pool, and L1 publisher it wires up all live in memory.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jaeger "contrib.go.opencensus.io/exporter/jaeger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"

	"github.com/rollupnode/sequencer/internal/collabs"
	"github.com/rollupnode/sequencer/internal/sequencer"
)

var log = logrus.WithField("prefix", "main")

func main() {
	var (
		httpAddr          = flag.String("http-host", ":9090", "metrics/status listen address")
		pollingIntervalMs = flag.Int64("polling-interval-ms", 1000, sequencer.PollingIntervalMsKey)
		maxTxsPerBlock    = flag.Int("max-txs-per-block", 32, sequencer.MaxTxsPerBlockKey)
		minTxsPerBlock    = flag.Int("min-txs-per-block", 1, sequencer.MinTxsPerBlockKey)
		slotDuration      = flag.Uint64("slot-duration-secs", 12, "L2 slot duration, seconds")
		ethSlotDuration   = flag.Uint64("ethereum-slot-duration-secs", 12, "L1 slot duration, seconds")
		enforceTimeTable  = flag.Bool("enforce-time-table", true, sequencer.EnforceTimeTableKey)
		jaegerEndpoint    = flag.String("jaeger-collector-endpoint", "", "opencensus jaeger collector endpoint; tracing is disabled if empty")
	)
	flag.Parse()

	if *jaegerEndpoint != "" {
		exporter, err := jaeger.NewExporter(jaeger.Options{
			CollectorEndpoint: *jaegerEndpoint,
			ServiceName:       "sequencer",
		})
		if err != nil {
			log.WithError(err).Fatal("failed to initialize jaeger exporter")
		}
		trace.RegisterExporter(exporter)
		trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})
		defer exporter.Flush()
	}

	reg := prometheus.NewRegistry()

	genesisTime := uint64(time.Now().Unix())
	rc := sequencer.RollupConstants{
		SlotDuration:         *slotDuration,
		EthereumSlotDuration: *ethSlotDuration,
		L1GenesisTime:        genesisTime,
	}

	cfg := sequencer.DefaultSequencerConfig()
	cfg.PollingInterval = time.Duration(*pollingIntervalMs) * time.Millisecond
	cfg.MaxTxsPerBlock = *maxTxsPerBlock
	cfg.MinTxsPerBlock = *minTxsPerBlock
	cfg.EnforceTimeTable = *enforceTimeTable

	committee := []sequencer.Address{{0x01}, {0x02}, {0x03}}
	sender := sequencer.Address{0xAA}

	l2blocks := collabs.NewL2BlockSource()
	collaborators := sequencer.Collaborators{
		Publisher:             collabs.NewPublisher(sender, committee),
		Validator:             collabs.NewValidatorClient(committee),
		Pool:                  collabs.NewPool(),
		WorldState:            collabs.NewWorldState(),
		L2Blocks:              l2blocks,
		L1ToL2:                collabs.NewL1ToL2MessageSource(l2blocks),
		P2PSync:               collabs.NewP2PSyncClient(l2blocks),
		GlobalVariableBuilder: collabs.NewGlobalVariableBuilder(rc),
		Slasher:               collabs.NewSlasher(),
		ProcessorFactory:      collabs.DefaultProcessorFactory{},
		BuilderFactory:        collabs.DefaultBuilderFactory{},
	}

	seq, err := sequencer.New(reg, collaborators, cfg, rc)
	if err != nil {
		log.WithError(err).Fatal("failed to construct sequencer")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(seq.Status().String()))
	})
	server := &http.Server{Addr: *httpAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("metrics server stopped")
		}
	}()

	seq.Start()
	log.WithField("addr", *httpAddr).Info("sequencer started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	if err := seq.Stop(); err != nil {
		log.WithError(err).Error("error stopping sequencer")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("error shutting down metrics server")
	}
}
