package samples

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

type Mode string

const (
	ModeThroughput  Mode = "thrpt"
	ModeAverageTime Mode = "avgt"
	ModeSampleTime  Mode = "sample"
	ModeSingleShot  Mode = "ss"
)

// BenchmarkResult is one measured benchmark method in the JMH JSON result format.
type BenchmarkResult struct {
	JmhVersion            string            `json:"jmhVersion,omitempty" yaml:"jmhVersion,omitempty"`
	Benchmark             string            `json:"benchmark" yaml:"benchmark" validate:"required"`
	Mode                  Mode              `json:"mode" yaml:"mode" validate:"required,oneof=thrpt avgt sample ss"`
	Jvm                   string            `json:"jvm,omitempty" yaml:"jvm,omitempty"`
	JvmArgs               []string          `json:"jvmArgs,omitempty" yaml:"jvmArgs,omitempty"`
	JdkVersion            string            `json:"jdkVersion,omitempty" yaml:"jdkVersion,omitempty"`
	VmName                string            `json:"vmName,omitempty" yaml:"vmName,omitempty"`
	VmVersion             string            `json:"vmVersion,omitempty" yaml:"vmVersion,omitempty"`
	Threads               int               `json:"threads" yaml:"threads" validate:"gte=0"`
	Forks                 int               `json:"forks" yaml:"forks" validate:"gte=0"`
	WarmupIterations      int               `json:"warmupIterations" yaml:"warmupIterations" validate:"gte=0"`
	WarmupTime            string            `json:"warmupTime" yaml:"warmupTime" validate:"omitempty,jmhtime"`
	WarmupBatchSize       int               `json:"warmupBatchSize" yaml:"warmupBatchSize" validate:"gte=0"`
	MeasurementIterations int               `json:"measurementIterations" yaml:"measurementIterations" validate:"gte=0"`
	MeasurementTime       string            `json:"measurementTime" yaml:"measurementTime" validate:"omitempty,jmhtime"`
	MeasurementBatchSize  int               `json:"measurementBatchSize" yaml:"measurementBatchSize" validate:"gte=0"`
	Params                map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	PrimaryMetric         Metric            `json:"primaryMetric" yaml:"primaryMetric"`
	SecondaryMetrics      map[string]Metric `json:"secondaryMetrics" yaml:"secondaryMetrics" validate:"dive"`
}

// Metric is a statistical summary of one measured quantity.
// RawData is indexed by fork first and by measurement iteration second.
type Metric struct {
	Score            float64     `json:"score" yaml:"score"`
	ScoreError       float64     `json:"scoreError" yaml:"scoreError" validate:"gte=0"`
	ScoreConfidence  []float64   `json:"scoreConfidence" yaml:"scoreConfidence" validate:"len=2"`
	ScorePercentiles Percentiles `json:"scorePercentiles" yaml:"scorePercentiles"`
	ScoreUnit        string      `json:"scoreUnit" yaml:"scoreUnit" validate:"required"`
	RawData          [][]float64 `json:"rawData" yaml:"rawData"`
}

// Percentiles maps a percentile label such as "99.9" to its value.
type Percentiles map[string]float64

type Percentile struct {
	Label string
	Rank  float64
	Value float64
}

// Sorted orders entries by the numeric value of their label.
// Labels that are not numbers get a NaN rank and go last.
func (p Percentiles) Sorted() []Percentile {
	entries := make([]Percentile, 0, len(p))
	for label, value := range p {
		rank, err := strconv.ParseFloat(label, 64)
		if err != nil {
			rank = math.NaN()
		}
		entries = append(entries, Percentile{Label: label, Rank: rank, Value: value})
	}
	slices.SortFunc(entries, func(a, b Percentile) int {
		aNaN, bNaN := math.IsNaN(a.Rank), math.IsNaN(b.Rank)
		switch {
		case aNaN && bNaN:
			return strings.Compare(a.Label, b.Label)
		case aNaN:
			return 1
		case bNaN:
			return -1
		case a.Rank < b.Rank:
			return -1
		case a.Rank > b.Rank:
			return 1
		}
		return strings.Compare(a.Label, b.Label)
	})
	return entries
}

// RawRange returns the smallest and largest raw sample. ok is false when there are no samples.
func (m Metric) RawRange() (low float64, high float64, ok bool) {
	for _, fork := range m.RawData {
		for _, sample := range fork {
			if !ok {
				low, high, ok = sample, sample, true
				continue
			}
			low = min(low, sample)
			high = max(high, sample)
		}
	}
	return low, high, ok
}

func (m Metric) clone() Metric {
	clone := m
	clone.ScoreConfidence = slices.Clone(m.ScoreConfidence)
	clone.ScorePercentiles = maps.Clone(m.ScorePercentiles)
	if m.RawData != nil {
		clone.RawData = make([][]float64, len(m.RawData))
		for i, fork := range m.RawData {
			clone.RawData[i] = slices.Clone(fork)
		}
	}
	return clone
}

func (r BenchmarkResult) clone() BenchmarkResult {
	clone := r
	clone.JvmArgs = slices.Clone(r.JvmArgs)
	clone.Params = maps.Clone(r.Params)
	clone.PrimaryMetric = r.PrimaryMetric.clone()
	// JMH writes an empty object when there are no secondary metrics, never null
	clone.SecondaryMetrics = make(map[string]Metric, len(r.SecondaryMetrics))
	for name, metric := range r.SecondaryMetrics {
		clone.SecondaryMetrics[name] = metric.clone()
	}
	return clone
}

func cloneResults(results []BenchmarkResult) []BenchmarkResult {
	if results == nil {
		return nil
	}
	clone := make([]BenchmarkResult, len(results))
	for i, result := range results {
		clone[i] = result.clone()
	}
	return clone
}
