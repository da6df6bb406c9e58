package packages

import "github.com/arthur-debert/ricer/pkg/runner"

// Outcome is the result of one command batch, or of one AUR package
type Outcome struct {
	Packages []string
	Results  []runner.Result
	// Skipped is set when the packages were never attempted
	Skipped bool
	// Err is a failure outside any command, such as a temp dir error
	Err error
}

// Failed reports whether any part of the outcome went wrong
func (o Outcome) Failed() bool {
	if o.Err != nil {
		return true
	}
	for _, r := range o.Results {
		if !r.OK() {
			return true
		}
	}
	return false
}

// Report collects the outcomes of one handler call
type Report struct {
	Handler  string
	Outcomes []Outcome
}

// Failed lists the outcomes that failed
func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// FailedPackages lists the packages of every failed outcome
func (r Report) FailedPackages() []string {
	var pkgs []string
	for _, o := range r.Failed() {
		pkgs = append(pkgs, o.Packages...)
	}
	return pkgs
}

// SkippedPackages lists the packages that were never attempted
func (r Report) SkippedPackages() []string {
	var pkgs []string
	for _, o := range r.Outcomes {
		if o.Skipped {
			pkgs = append(pkgs, o.Packages...)
		}
	}
	return pkgs
}
