package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// MetricsGenerator generates key:value pairs, the input format for
// the maxvalue preset.
type MetricsGenerator struct {
	KeyCount int
	rand     *rand.Rand
	keys     []string
}

var metricKeys = []string{
	"temperature",
	"humidity",
	"pressure",
	"cpu_usage",
	"memory_usage",
	"disk_io",
	"network_latency",
	"response_time",
	"error_rate",
	"request_count",
}

func (g *MetricsGenerator) Init(r *rand.Rand) {
	g.rand = r
	g.keys = metricKeys
	if g.KeyCount > 0 && g.KeyCount < len(metricKeys) {
		g.keys = metricKeys[:g.KeyCount]
	}
}

func (g *MetricsGenerator) WriteLine(w io.Writer) error {
	key := g.keys[g.rand.IntN(len(g.keys))]
	// Values between 0 and 100 with 2 decimal places
	value := g.rand.Float64() * 100
	_, err := fmt.Fprintf(w, "%s:%.2f\n", key, value)
	return err
}

func (g *MetricsGenerator) Description() string {
	return "Metric samples: key:value (for maxvalue)"
}

func (g *MetricsGenerator) DefaultCount() int64 {
	return 1e5 // 100,000 lines
}
