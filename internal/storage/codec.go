package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/taskline/internal/model"
)

const fieldSep = " | "

// EncodeLine renders one task in the pipe-delimited file format:
//
//	T | <0|1> | <description>
//	D | <0|1> | <description> | <due>
//	E | <0|1> | <description> | <start> | <end>
func EncodeLine(t model.Task) (string, error) {
	if strings.ContainsAny(t.Description(), "\r\n") {
		return "", fmt.Errorf("%w: description spans more than one line", ErrMalformedLine)
	}
	fields := []string{string(t.Kind()), doneFlag(t.IsDone()), t.Description()}
	switch v := t.(type) {
	case *model.ToDo:
	case *model.Deadline:
		fields = append(fields, model.FormatTimestamp(v.Due))
	case *model.Event:
		fields = append(fields, model.FormatTimestamp(v.Start), model.FormatTimestamp(v.End))
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownKind, t)
	}
	return strings.Join(fields, fieldSep), nil
}

// DecodeLine parses one stored line. Timestamps are taken from the right so a
// description containing the separator still round-trips.
func DecodeLine(line string) (model.Task, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 fields, got %d", ErrMalformedLine, len(fields))
	}
	kind := model.Kind(fields[0])
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, fields[0])
	}
	done, err := parseDoneFlag(fields[1])
	if err != nil {
		return nil, err
	}
	rest := fields[2:]

	var task model.Task
	switch kind {
	case model.KindToDo:
		task = model.NewToDo(strings.Join(rest, fieldSep), model.WithDone(done))
	case model.KindDeadline:
		if len(rest) < 2 {
			return nil, fmt.Errorf("%w: deadline needs a due timestamp", ErrMalformedLine)
		}
		due, err := parseStoredTime(rest[len(rest)-1])
		if err != nil {
			return nil, err
		}
		task = model.NewDeadline(strings.Join(rest[:len(rest)-1], fieldSep), due, model.WithDone(done))
	case model.KindEvent:
		if len(rest) < 3 {
			return nil, fmt.Errorf("%w: event needs start and end timestamps", ErrMalformedLine)
		}
		start, err := parseStoredTime(rest[len(rest)-2])
		if err != nil {
			return nil, err
		}
		end, err := parseStoredTime(rest[len(rest)-1])
		if err != nil {
			return nil, err
		}
		task = model.NewEvent(strings.Join(rest[:len(rest)-2], fieldSep), start, end, model.WithDone(done))
	}
	if err := model.Validate(task); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return task, nil
}

func doneFlag(done bool) string {
	if done {
		return "1"
	}
	return "0"
}

func parseDoneFlag(raw string) (bool, error) {
	switch raw {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: done flag %q", ErrMalformedLine, raw)
	}
}

func parseStoredTime(raw string) (time.Time, error) {
	out, err := time.Parse(model.TimestampLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q", ErrMalformedLine, raw)
	}
	return out, nil
}
