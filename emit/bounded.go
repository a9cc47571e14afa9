package emit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sarchlab/instyaml/core"
)

// ErrTruncated is wrapped by every error of a bounded render that could not
// fit the whole document.
var ErrTruncated = errors.New("output truncated")

// Limits bounds a render. A zero limit means unbounded.
type Limits struct {
	// Output is the maximum number of bytes of the whole document.
	Output int
	// Staging is the maximum number of bytes of a block value.
	Staging int
}

// ReferenceLimits are the buffer sizes of the generated C formatter: a
// 4096-byte output buffer and a 1024-byte staging buffer, each holding one
// terminating NUL.
var ReferenceLimits = Limits{Output: 4096 - 1, Staging: 1024 - 1}

// TruncatedError reports which field did not fit.
type TruncatedError struct {
	Key      string
	Capacity int
	Needed   int
	Staging  bool
}

func (e *TruncatedError) Error() string {
	buf := "output"
	if e.Staging {
		buf = "staging"
	}

	return fmt.Sprintf("%s: %s needs %d bytes, %s capacity is %d",
		ErrTruncated, e.Key, e.Needed, buf, e.Capacity)
}

func (e *TruncatedError) Unwrap() error {
	return ErrTruncated
}

// RenderBounded renders like Render but within fixed limits. When the
// document does not fit, it returns the whole lines written before the first
// line that did not fit, and a *TruncatedError.
func RenderBounded(rec core.Record, limits Limits) (string, error) {
	return RenderBoundedLayout(rec, core.DefaultLayout(), limits)
}

// RenderBoundedLayout is RenderBounded with an explicit layout.
func RenderBoundedLayout(rec core.Record, layout core.Layout, limits Limits) (string, error) {
	var sb strings.Builder

	for _, f := range layout {
		if err := checkStaging(f, rec, limits.Staging); err != nil {
			return sb.String(), err
		}

		for _, line := range fieldLines(f, rec) {
			if limits.Output > 0 && sb.Len()+len(line) > limits.Output {
				return sb.String(), &TruncatedError{
					Key:      f.Key,
					Capacity: limits.Output,
					Needed:   len(RenderLayout(rec, layout)),
				}
			}
			sb.WriteString(line)
		}
	}

	return sb.String(), nil
}

// checkStaging fails when copying a block value into the staging buffer
// would lose more than its terminal newline.
func checkStaging(f core.Field, rec core.Record, staging int) error {
	if f.Kind != core.Block || staging <= 0 {
		return nil
	}

	value := f.Value(rec)
	if len(value) <= staging {
		return nil
	}

	if lost := value[staging:]; lost == "\n" {
		return nil
	}

	return &TruncatedError{
		Key:      f.Key,
		Capacity: staging,
		Needed:   len(value),
		Staging:  true,
	}
}
