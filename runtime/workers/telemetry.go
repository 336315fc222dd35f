package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"streamchat/observability"
)

// TelemetryWorker periodically logs the relay counters together with the
// process's own memory and CPU footprint.
type TelemetryWorker struct {
	log            *slog.Logger
	monitor        *observability.Monitor
	metricInterval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, monitor *observability.Monitor,
	metricInterval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, monitor: monitor, metricInterval: metricInterval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats := w.monitor.Snapshot()
			rss, cpu := selfStats(proc)
			w.log.Info("relay telemetry",
				"connections", stats.Connections,
				"joins", stats.Joins,
				"disconnects", stats.Disconnects,
				"messages_relayed", stats.MessagesRelayed,
				"attachment_bytes", stats.AttachmentBytes,
				"crypto_fallbacks", stats.CryptoFallbacks,
				"censor_hits", stats.CensorHits,
				"dropped_delivery", stats.DroppedDelivery,
				"rss_bytes", rss,
				"cpu_percent", cpu)
		}
	}
}

// selfStats collects RSS and CPU for the current process. Telemetry is
// best-effort: a probe error yields zeros rather than a worker failure.
func selfStats(proc *process.Process) (uint64, float64) {
	var rss uint64
	if memInfo, err := proc.MemoryInfo(); err == nil {
		rss = memInfo.RSS
	}
	cpu, err := proc.CPUPercent()
	if err != nil {
		cpu = 0
	}
	return rss, cpu
}
