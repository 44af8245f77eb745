package service

import (
	"fmt"
	"maps"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/go-json-experiment/json/jsontext"
)

// Save writes a markdown example of the request and its response when
// API_EXAMPLES_PATH is set.
func Save(response *apitest.Response, title, description string) {

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}

	method := ""
	if request.Method != "GET" {
		method = "-X " + request.Method + " "
	}

	b := &strings.Builder{}

	fmt.Fprintf(b, "# %s\n%s\n", title, trimTabs(description))

	b.WriteString("Curl example:\n\n```sh\n")
	fmt.Fprintf(b, "curl %s\"https://example.com%s%s\"", method, request.URL.Path, query)
	for k, l := range request.Header {
		for _, v := range l {
			fmt.Fprintf(b, " \\\n-H \"%s: %s\"", k, v)
		}
	}
	if body := formatJSON(response.BodyRequestString()); body != "" {
		fmt.Fprintf(b, " \\\n-d '%s'", body)
	}
	b.WriteString("\n```\n\n\n")

	b.WriteString("HTTP request/response example:\n\n```http\n")
	fmt.Fprintf(b, "%s %s%s %s\nHost: example.com\n", request.Method, request.URL.Path, query, request.Proto)
	for k, l := range request.Header {
		for _, v := range l {
			fmt.Fprintf(b, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(b, "\n%s\n\n", formatJSON(response.BodyRequestString()))

	fmt.Fprintf(b, "%s %s\n", response.Proto, response.Status)
	for _, k := range slices.Sorted(maps.Keys(response.Header)) {
		if k == "Date" {
			b.WriteString("Date: Mon, 15 Aug 2022 02:08:13 GMT\n")
			continue
		}
		for _, v := range response.Header[k] {
			fmt.Fprintf(b, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(b, "\n%s\n```\n\n\n", formatJSON(response.BodyString()))

	writeExample(strings.ToLower(title)+".md", b.String())
}

func formatJSON(body string) string {

	v := jsontext.Value(body)
	if !v.IsValid() {
		return body
	}

	if err := v.Indent(jsontext.WithIndent("    ")); err != nil {
		return body
	}

	return string(v)
}

func writeExample(filename, text string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	filename = strings.ReplaceAll(filename, " ", "_")
	p := path.Join(examplesPath, path.Clean(filename))
	fmt.Println("Saving", p)
	if err := os.WriteFile(p, []byte(text), 0666); err != nil {
		fmt.Println("Saving err:", err)
	}
}

// trimTabs removes the indentation shared by every line of a description
// written inline in a test.
func trimTabs(d string) string {

	lines := strings.Split(d, "\n")

	first, last := 0, len(lines)
	if len(lines) > 2 {
		first++
		last--
	}

	minTabs := -1
	for _, line := range lines[first:last] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tabs := len(line) - len(strings.TrimLeft(line, "\t"))
		if minTabs < 0 || tabs < minTabs {
			minTabs = tabs
		}
	}
	if minTabs <= 0 {
		return d
	}

	prefix := strings.Repeat("\t", minTabs)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}
