package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/crossbench/phases"
	"github.com/fulldump/crossbench/utils"
)

type Renderer func(w io.Writer, r *Report) error

var renderers = map[string]Renderer{
	"text": Text,
	"json": JSON,
}

func Formats() []string {
	return utils.GetKeys(renderers)
}

func Render(w io.Writer, format string, r *Report) error {
	render, exists := renderers[strings.ToLower(format)]
	if !exists {
		return fmt.Errorf("bad output format '%s', must be [%s]", format, strings.Join(Formats(), "|"))
	}
	return render(w, r)
}

var titles = map[string]string{
	PhaseLoad:            "File loading",
	phases.PhaseStrings:  "String operations",
	phases.PhaseIntegers: "Integer operations",
	phases.PhaseFloats:   "Float operations",
}

// Text writes one line per phase in the "<phase> took <seconds> seconds" form
// shared by every implementation of the benchmark.
func Text(w io.Writer, r *Report) error {
	for _, p := range r.Phases {
		title, exists := titles[p.Name]
		if !exists {
			title = p.Name
		}

		var err error
		if p.Error != "" {
			_, err = fmt.Fprintf(w, "%s failed: %s\n", title, p.Error)
		} else {
			_, err = fmt.Fprintf(w, "%s took %f seconds\n", title, p.Seconds)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func JSON(w io.Writer, r *Report) error {
	err := json.MarshalWrite(w, r, jsontext.WithIndent("    "))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
