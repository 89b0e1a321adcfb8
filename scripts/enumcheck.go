//go:build ignore

// enumcheck compares the SDK's enum catalog with the enums declared in the
// horde's published swagger document.
//
//	go run scripts/enumcheck.go [-url https://aihorde.net/api/swagger.json]
//
// It exits 1 when the horde declares values the SDK does not know. Values
// the SDK knows but the document does not list are only reported, since
// the document omits some of them.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lapismyt/aihorde-go"
)

const defaultSwaggerURL = "https://aihorde.net/api/swagger.json"

// checks maps a swagger property name to the SDK values for that property.
var checks = map[string][]string{
	"sampler_name":      names(aihorde.Samplers()),
	"post_processing":   names(aihorde.PostProcessors()),
	"control_type":      names(aihorde.ControlTypes()),
	"workflow":          names(aihorde.Workflows()),
	"source_processing": names(aihorde.SourceProcessings()),
	"inject_ti":         names(aihorde.InjectTargets()),
	"rc":                names(aihorde.ErrorCodes()),
}

func names[E fmt.Stringer](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func main() {
	url := flag.String("url", defaultSwaggerURL, "swagger document to check against")
	flag.Parse()

	drift, err := run(*url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if drift {
		os.Exit(1)
	}
}

func run(url string) (bool, error) {
	fmt.Printf("Fetching: %s\n", url)
	data, err := download(url)
	if err != nil {
		return false, fmt.Errorf("downloading swagger: %w", err)
	}

	// JSON is valid YAML, so one decoder covers both document formats.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("parsing swagger: %w", err)
	}

	found := map[string]map[string]bool{}
	collectEnums(&doc, "", found)

	drift := false
	props := make([]string, 0, len(checks))
	for p := range checks {
		props = append(props, p)
	}
	sort.Strings(props)

	for _, prop := range props {
		remote, ok := found[prop]
		if !ok {
			fmt.Printf("%-18s not declared as an enum upstream\n", prop)
			continue
		}
		local := map[string]bool{}
		for _, v := range checks[prop] {
			local[v] = true
		}

		missing := diff(remote, local)
		extra := diff(local, remote)
		switch {
		case len(missing) > 0:
			drift = true
			fmt.Printf("%-18s MISSING %v\n", prop, missing)
		case len(extra) > 0:
			fmt.Printf("%-18s ok (not listed upstream: %v)\n", prop, extra)
		default:
			fmt.Printf("%-18s ok\n", prop)
		}
	}
	return drift, nil
}

func download(url string) ([]byte, error) {
	client := &http.Client{Timeout: time.Minute}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// collectEnums walks the document and records every enum list under the
// name of the property that declares it. Array properties declare their
// enum on "items", which is attributed to the array property.
func collectEnums(n *yaml.Node, prop string, found map[string]map[string]bool) {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			collectEnums(c, prop, found)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i].Value, n.Content[i+1]
			switch {
			case key == "enum" && val.Kind == yaml.SequenceNode && prop != "":
				if found[prop] == nil {
					found[prop] = map[string]bool{}
				}
				for _, v := range val.Content {
					found[prop][v.Value] = true
				}
			case key == "items":
				collectEnums(val, prop, found)
			default:
				collectEnums(val, key, found)
			}
		}
	}
}

func diff(a, b map[string]bool) []string {
	var out []string
	for v := range a {
		if !b[v] {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
