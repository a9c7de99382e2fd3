// Package codec converts a run catalog to and from the flat text form kept in
// the key-value store.
//
// Fields are separated by '|' and runs by "||". Values must not contain the
// separator: a name, description or label holding '|', or an empty one
// (which produces "||"), corrupts run boundaries on decode. Encode does not
// check this; use CheckEncodable before persisting user supplied data.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"couchrunner/internal/core/model"
)

const (
	// Separator delimits fields inside a run.
	Separator = "|"
	// Boundary delimits runs.
	Boundary = Separator + Separator
)

var (
	// ErrMalformed indicates the text is not a valid encoded catalog.
	ErrMalformed = errors.New("malformed catalog")
	// ErrNotEncodable indicates a field would break the separator scheme.
	ErrNotEncodable = errors.New("field contains separator")
)

// Encode serializes runs in order. The final run boundary is dropped so
// splitting on Boundary does not yield an empty trailing record.
func Encode(runs []model.Run) string {
	var builder strings.Builder
	for _, run := range runs {
		builder.WriteString(run.Name())
		builder.WriteString(Separator)
		builder.WriteString(run.Description())
		builder.WriteString(Separator)
		builder.WriteString(strconv.FormatBool(run.Completed))
		builder.WriteString(Separator)
		for _, interval := range run.Intervals() {
			builder.WriteString(strconv.Itoa(interval.Seconds()))
			builder.WriteString(Separator)
			builder.WriteString(interval.Label())
			builder.WriteString(Separator)
		}
		builder.WriteString(Separator)
	}
	return strings.TrimSuffix(builder.String(), Boundary)
}

// Decode parses text produced by Encode. Any structural problem fails the
// whole decode; no partial catalog is returned.
func Decode(data string) (model.Catalog, error) {
	// Tolerate a retained final boundary.
	data = strings.TrimSuffix(data, Boundary)

	chunks := strings.Split(data, Boundary)
	runs := make(model.Catalog, 0, len(chunks))
	for i, chunk := range chunks {
		run, err := decodeRun(chunk)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func decodeRun(chunk string) (model.Run, error) {
	fields := strings.Split(chunk, Separator)
	if len(fields) < 3 {
		return model.Run{}, fmt.Errorf("%w: %d fields, need at least 3", ErrMalformed, len(fields))
	}

	name, description := fields[0], fields[1]
	completed, err := parseBool(fields[2])
	if err != nil {
		return model.Run{}, err
	}

	rest := fields[3:]
	if len(rest)%2 != 0 {
		return model.Run{}, fmt.Errorf("%w: unpaired interval field %q", ErrMalformed, rest[len(rest)-1])
	}

	intervals := make([]model.Interval, 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		seconds, err := strconv.Atoi(rest[i])
		if err != nil {
			return model.Run{}, fmt.Errorf("%w: duration %q", ErrMalformed, rest[i])
		}
		intervals = append(intervals, model.NewInterval(seconds, rest[i+1]))
	}

	run, err := model.NewRun(name, description, completed, intervals)
	if err != nil {
		return model.Run{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return run, nil
}

func parseBool(field string) (bool, error) {
	switch field {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: completed flag %q", ErrMalformed, field)
}

// CheckEncodable reports the first field that would not survive a round trip.
// Empty fields are rejected too: they place two separators next to each other.
func CheckEncodable(runs []model.Run) error {
	for i, run := range runs {
		if !encodable(run.Name()) {
			return fmt.Errorf("%w: run %d name %q", ErrNotEncodable, i, run.Name())
		}
		if !encodable(run.Description()) {
			return fmt.Errorf("%w: run %d description %q", ErrNotEncodable, i, run.Description())
		}
		for j, interval := range run.Intervals() {
			if !encodable(interval.Label()) {
				return fmt.Errorf("%w: run %d interval %d label %q", ErrNotEncodable, i, j, interval.Label())
			}
		}
	}
	return nil
}

func encodable(field string) bool {
	return field != "" && !strings.Contains(field, Separator)
}
