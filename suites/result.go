package suites

import "github.com/reusee/chiron/chironlang"

type Result struct {
	Path    string
	Source  *chironlang.Source
	Tokens  []chironlang.Token
	Program *chironlang.Program
	Err     error
}

func (r Result) Passed() bool {
	return r.Err == nil
}

type Summary struct {
	Results []Result
	Passed  int
	Failed  int
}

func (s Summary) Total() int {
	return len(s.Results)
}

func (s *Summary) add(result Result) {
	s.Results = append(s.Results, result)
	if result.Passed() {
		s.Passed++
	} else {
		s.Failed++
	}
}
