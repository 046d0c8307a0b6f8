package samples

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var (
	resultValidate *validator.Validate
	jmhTimePattern = regexp.MustCompile(`^\d+(\.\d+)? ?(ns|us|µs|ms|s|min|hr|day)$`)
)

func init() {
	resultValidate = validator.New()
	resultValidate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := resultValidate.RegisterValidation("jmhtime", validateJmhTime); err != nil {
		panic(fmt.Errorf("failed to register jmhtime validation: %w", err))
	}
}

// validateJmhTime accepts JMH time values like "1 s" or "500 ms".
func validateJmhTime(fl validator.FieldLevel) bool {
	return jmhTimePattern.MatchString(fl.Field().String())
}

// ValidationError is a single rule violation. Path points into the result, e.g.
// "primaryMetric.scorePercentiles".
type ValidationError struct {
	Benchmark string
	Path      string
	Message   string
}

func (e *ValidationError) Error() string {
	if e.Benchmark == "" {
		return fmt.Sprintf("%v: %v", e.Path, e.Message)
	}
	return fmt.Sprintf("%v: %v: %v", e.Benchmark, e.Path, e.Message)
}

// Validate checks a result against the shape and consistency rules of well-formed
// JMH output. All violations are returned together; use multierr.Errors to split them.
func Validate(result BenchmarkResult) error {
	var err error
	violation := func(path string, format string, args ...any) {
		err = multierr.Append(err, &ValidationError{
			Benchmark: result.Benchmark,
			Path:      path,
			Message:   fmt.Sprintf(format, args...),
		})
	}

	if structErr := resultValidate.Struct(result); structErr != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(structErr, &fieldErrs) {
			return structErr
		}
		for _, fieldErr := range fieldErrs {
			// drop the root struct name so paths match the consistency checks below
			_, path, _ := strings.Cut(fieldErr.Namespace(), ".")
			violation(path, "failed rule %v=%v on value %v", fieldErr.Tag(), fieldErr.Param(), fieldErr.Value())
		}
	}

	checkMetric(result, "primaryMetric", result.PrimaryMetric, true, violation)
	names := make([]string, 0, len(result.SecondaryMetrics))
	for name := range result.SecondaryMetrics {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		checkMetric(result, fmt.Sprintf("secondaryMetrics[%v]", name), result.SecondaryMetrics[name], false, violation)
	}
	return err
}

// ValidateDataset validates every result, keeping the order of violations stable.
func ValidateDataset(results []BenchmarkResult) error {
	var err error
	for i, result := range results {
		if resultErr := Validate(result); resultErr != nil {
			err = multierr.Append(err, fmt.Errorf("result #%v: %w", i, resultErr))
		}
	}
	return err
}

// Validate checks every dataset listed by the registry.
func (r *Registry) Validate() error {
	var err error
	for _, key := range r.keys {
		if datasetErr := ValidateDataset(r.store[key]); datasetErr != nil {
			err = multierr.Append(err, fmt.Errorf("dataset %v: %w", key, datasetErr))
		}
	}
	return err
}

func checkMetric(
	result BenchmarkResult,
	path string,
	metric Metric,
	primary bool,
	violation func(path string, format string, args ...any),
) {
	if len(metric.ScoreConfidence) == 2 {
		low, high := metric.ScoreConfidence[0], metric.ScoreConfidence[1]
		if low > high {
			violation(path+".scoreConfidence", "low bound %v is above high bound %v", low, high)
		} else if !math.IsNaN(metric.Score) && (metric.Score < low || metric.Score > high) {
			violation(path+".score", "score %v is outside confidence interval [%v, %v]", metric.Score, low, high)
		}
	}

	rawLow, rawHigh, hasRaw := metric.RawRange()
	previous := math.Inf(-1)
	for _, percentile := range metric.ScorePercentiles.Sorted() {
		if math.IsNaN(percentile.Rank) || percentile.Rank < 0 || percentile.Rank > 100 {
			violation(path+".scorePercentiles", "label %q is not a percentile in [0, 100]", percentile.Label)
			continue
		}
		if percentile.Value < previous {
			violation(path+".scorePercentiles", "value %v at %v is below the previous percentile %v", percentile.Value, percentile.Label, previous)
		}
		previous = percentile.Value
		if hasRaw && (percentile.Value < rawLow || percentile.Value > rawHigh) {
			violation(path+".scorePercentiles", "value %v at %v is outside raw data range [%v, %v]", percentile.Value, percentile.Label, rawLow, rawHigh)
		}
	}

	// secondary metrics such as gc profiler counters do not follow the fork layout
	if !primary || len(metric.RawData) == 0 {
		return
	}
	forks := max(result.Forks, 1)
	if len(metric.RawData) != forks {
		violation(path+".rawData", "has %v forks, expected %v", len(metric.RawData), forks)
	}
	if result.MeasurementIterations > 0 {
		for i, fork := range metric.RawData {
			if len(fork) != result.MeasurementIterations {
				violation(fmt.Sprintf("%v.rawData[%v]", path, i), "has %v iterations, expected %v", len(fork), result.MeasurementIterations)
			}
		}
	}
}
