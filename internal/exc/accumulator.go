// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

// Reporter collects exceptions while command line input is validated so that
// every problem can be shown at once instead of only the first.
type Reporter interface {
	// Report adds e to the set. The return value is non-nil only when e has a
	// fatal code and validation should stop.
	Report(e Exception) Exception
	// Reported returns the set of accumulated exceptions in report order.
	Reported() []Exception
	// Err returns the accumulated exceptions as a MultiException, or nil when
	// nothing was reported.
	Err() error
}

// NewReporter returns a Reporter that treats the default validation codes
// and any of nonFatal as recoverable. It is not safe for concurrent use.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal)+len(nonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporter{nonFatal: nf}
}

type reporter struct {
	reported MultiException
	nonFatal map[string]bool
}

func (r *reporter) Report(e Exception) Exception {
	if e == nil {
		return nil
	}
	r.reported = append(r.reported, e)
	if r.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	return r.reported
}

func (r *reporter) Err() error {
	if len(r.reported) == 0 {
		return nil
	}
	return r.reported
}
