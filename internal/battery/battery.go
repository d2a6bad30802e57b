// Package battery runs fixed sets of inputs against an automaton and
// compares the outcome with the expected acceptance.
package battery

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Case is one input with its expected outcome.
type Case struct {
	Input  string `yaml:"input"  json:"input"`
	Accept bool   `yaml:"accept" json:"accept"`
}

// Acceptor is anything that can decide membership of a string.
type Acceptor interface {
	Accepts(input string) bool
}

// Result is the outcome of one case.
type Result struct {
	Input string `json:"input"`
	Want  bool   `json:"want"`
	Got   bool   `json:"got"`
}

// Match reports whether the automaton agreed with the expectation.
func (r Result) Match() bool { return r.Want == r.Got }

// Report collects the results of running a battery against one automaton.
type Report struct {
	Name    string   `json:"name"`
	Results []Result `json:"results"`
}

// Mismatches counts the results that disagree with their expectation.
func (r Report) Mismatches() int {
	n := 0
	for _, res := range r.Results {
		if !res.Match() {
			n++
		}
	}

	return n
}

// Default returns the inputs checked against (a|b)*abb.
func Default() []Case {
	return []Case{
		{Input: "abb", Accept: true},
		{Input: "aabb", Accept: true},
		{Input: "babb", Accept: true},
		{Input: "aaabb", Accept: true},
		{Input: "bbbabb", Accept: true},
		{Input: "", Accept: false},
		{Input: "a", Accept: false},
		{Input: "ab", Accept: false},
		{Input: "abba", Accept: false},
	}
}

type file struct {
	Cases []Case `yaml:"cases"`
}

// Load reads a YAML battery of the form
//
//	cases:
//	  - input: abb
//	    accept: true
func Load(fs afero.Fs, path string) ([]Case, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading battery %s", path)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing battery %s", path)
	}

	if len(f.Cases) == 0 {
		return nil, errors.WithHint(
			errors.Newf("battery %s has no cases", path),
			"list inputs under a top-level \"cases\" key",
		)
	}

	return f.Cases, nil
}

// Run checks every case against m.
func Run(name string, m Acceptor, cases []Case) Report {
	report := Report{Name: name, Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		report.Results = append(report.Results, Result{
			Input: c.Input,
			Want:  c.Accept,
			Got:   m.Accepts(c.Input),
		})
	}

	return report
}
