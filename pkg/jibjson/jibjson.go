// Package jibjson implements the sentinel-wrapped JSON protocol used to
// report image build file dependencies through a mixed log stream.
//
// The payload travels between two literal marker lines:
//
//	BEGIN JIB JSON
//	{"build":[...],"inputs":[...],"ignore":[...]}
//	END JIB JSON
//
// Consumers locate the markers textually, which lets the block survive
// arbitrary unrelated log lines printed before and after it.
package jibjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// HeaderLine opens the payload block.
	HeaderLine = "BEGIN JIB JSON"
	// FooterLine closes the payload block.
	FooterLine = "END JIB JSON"
)

// ErrMalformedOutput reports a stream missing a sentinel line or carrying a
// payload that is not the expected JSON shape.
var ErrMalformedOutput = errors.New("malformed jib json output")

// FilesOutput is the wire form of a file report. Array order is significant
// and reproduces the order the aggregator emitted.
type FilesOutput struct {
	Build  []string `json:"build"`
	Inputs []string `json:"inputs"`
	Ignore []string `json:"ignore"`
}

// Marshal renders the sentinel-wrapped payload. Nil lists serialize as
// empty arrays so consumers always see all three keys.
func Marshal(out FilesOutput) (string, error) {
	if out.Build == nil {
		out.Build = []string{}
	}

	if out.Inputs == nil {
		out.Inputs = []string{}
	}

	if out.Ignore == nil {
		out.Ignore = []string{}
	}

	body, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode files output: %w", err)
	}

	return HeaderLine + "\n" + string(body) + "\n" + FooterLine, nil
}

// Extract locates the sentinel block inside raw and decodes the payload
// strictly between the markers. Missing keys decode as empty lists; unknown
// keys are ignored for forward compatibility.
func Extract(raw string) (FilesOutput, error) {
	body, err := payload(raw)
	if err != nil {
		return FilesOutput{}, err
	}

	var out FilesOutput
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return FilesOutput{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if out.Build == nil {
		out.Build = []string{}
	}

	if out.Inputs == nil {
		out.Inputs = []string{}
	}

	if out.Ignore == nil {
		out.Ignore = []string{}
	}

	return out, nil
}

// payload returns the trimmed text strictly between the two sentinel lines.
func payload(raw string) (string, error) {
	lines := strings.Split(raw, "\n")

	begin := -1

	for i, line := range lines {
		if strings.TrimSpace(line) == HeaderLine {
			begin = i
			break
		}
	}

	if begin == -1 {
		return "", fmt.Errorf("%w: missing %q", ErrMalformedOutput, HeaderLine)
	}

	for i := begin + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == FooterLine {
			return strings.TrimSpace(strings.Join(lines[begin+1:i], "\n")), nil
		}
	}

	return "", fmt.Errorf("%w: missing %q", ErrMalformedOutput, FooterLine)
}
