package explain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"
)

// Format selects a Report rendering.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by Render for a format it does
// not know.
var ErrUnknownFormat = errors.New("unknown format")

const (
	reportTpl = `input:   {bytes} bytes ({bits} bits)
padding: {padding} bytes, {padded} bytes in {blocks} block(s)
initial: {initial}
{blocks_text}digest:  {digest}
`
	blockTpl = "block {index}: {before} -> {after}\n"
	stateTpl = "A={a} B={b} C={c} D={d}"
)

// Render encodes rep in the requested format.
func Render(rep Report, format Format) ([]byte, error) {
	const errCtx = "rendering report"

	switch format {
	case FormatText, "":
		return []byte(rep.Text()), nil
	case FormatJSON:
		return rep.JSON()
	case FormatYAML:
		return rep.YAML()
	default:
		return nil, fmt.Errorf(
			"%s: %w: %q", errCtx, ErrUnknownFormat, format,
		)
	}
}

// Text renders a human readable summary, one line per block.
func (rep Report) Text() string {
	var sb strings.Builder

	for _, blk := range rep.Blocks {
		sb.WriteString(fasttemplate.ExecuteStringStd(
			blockTpl, "{", "}",
			map[string]interface{}{
				"index":  strconv.Itoa(blk.Index),
				"before": blk.Before.String(),
				"after":  blk.After.String(),
			},
		))
	}

	return fasttemplate.ExecuteStringStd(
		reportTpl, "{", "}",
		map[string]interface{}{
			"bytes":       strconv.Itoa(rep.InputBytes),
			"bits":        strconv.FormatUint(rep.InputBits, 10),
			"padding":     strconv.Itoa(rep.PaddingBytes),
			"padded":      strconv.Itoa(rep.PaddedBytes),
			"blocks":      strconv.Itoa(len(rep.Blocks)),
			"initial":     rep.Initial.String(),
			"blocks_text": sb.String(),
			"digest":      rep.Digest,
		},
	)
}

// String formats the registers on one line.
func (st State) String() string {
	return fasttemplate.ExecuteStringStd(
		stateTpl, "{", "}",
		map[string]interface{}{
			"a": st.A,
			"b": st.B,
			"c": st.C,
			"d": st.D,
		},
	)
}

// JSON renders rep as indented JSON.
func (rep Report) JSON() ([]byte, error) {
	const errCtx = "encoding report as json"

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return append(out, '\n'), nil
}

// YAML renders rep as a YAML document.
func (rep Report) YAML() ([]byte, error) {
	const errCtx = "encoding report as yaml"

	out, err := yaml.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return out, nil
}
