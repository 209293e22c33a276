package recbridge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

// Concurrent read-only calls against one shared foreign object must match
// the single-threaded baseline. Run with -race.
func TestConcurrentReadersMatchBaseline(t *testing.T) {
	mock := NewMockPerson(samplePerson())

	baselineInfo := ProcessPerson(mock)
	baselineAnalysis := AnalyzeHealth(mock, 70.0)
	baselineValid := ValidateContact(mock.Contact())

	const readers = 16

	var g errgroup.Group
	for i := 0; i < readers; i++ {
		g.Go(func() error {
			info := ProcessPerson(mock)
			if diff := cmp.Diff(baselineInfo, info); diff != "" {
				t.Errorf("ProcessPerson diverged (-baseline +got):\n%s", diff)
			}

			analysis := AnalyzeHealth(mock, 70.0)
			if diff := cmp.Diff(baselineAnalysis, analysis); diff != "" {
				t.Errorf("AnalyzeHealth diverged (-baseline +got):\n%s", diff)
			}

			if valid := ValidateContact(mock.Contact()); valid != baselineValid {
				t.Errorf("ValidateContact diverged: %v, baseline %v", valid, baselineValid)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestConcurrentBMI(t *testing.T) {
	baseline := CalculateBMI(82.5, 1.83)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			if got := CalculateBMI(82.5, 1.83); got != baseline {
				t.Errorf("CalculateBMI = %v, baseline %v", got, baseline)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
