package conformance

import (
	"fmt"
	"strings"
	"time"
)

// CertificationReport is the outcome of comparing a suite's pass rate
// against a configurable threshold, grounded on the teacher's
// CertificationReport/Certify/GenerateMarkdown (certification.go), which
// certified a plugin on zero failures. Here certification is a pass-rate
// bar rather than a hard zero-failure requirement, since a validator
// adapter may be certified "good enough" short of 100%.
type CertificationReport struct {
	SuiteName   string
	Threshold   float64
	PassRate    float64
	Certified   bool
	CertifiedAt time.Time
	Issues      []string
	Summary     Summary
}

// Certify evaluates suite against threshold (a percentage in [0, 100]).
func Certify(suite *TestSuite, threshold float64) *CertificationReport {
	summary := SummaryOf(suite)

	var passRate float64
	if summary.Total > 0 {
		passRate = 100 * float64(summary.Passed) / float64(summary.Total)
	}

	report := &CertificationReport{
		SuiteName:   suite.Name,
		Threshold:   threshold,
		PassRate:    passRate,
		CertifiedAt: time.Now(),
		Summary:     summary,
		Certified:   passRate >= threshold,
	}

	if !report.Certified {
		for _, r := range suite.Results {
			if !r.Passed {
				report.Issues = append(report.Issues, fmt.Sprintf("%s: %s", r.ID, r.Error))
			}
		}
	}

	return report
}

// GenerateMarkdown renders the report as a standalone markdown document.
func (r *CertificationReport) GenerateMarkdown() string {
	status := "FAILED"
	if r.Certified {
		status = "CERTIFIED"
	}

	var sb strings.Builder
	sb.WriteString("# Conformance Certification\n\n")
	sb.WriteString(fmt.Sprintf("**Suite**: %s\n", r.SuiteName))
	sb.WriteString(fmt.Sprintf("**Status**: %s\n", status))
	sb.WriteString(fmt.Sprintf("**Pass rate**: %.1f%% (threshold %.1f%%)\n", r.PassRate, r.Threshold))
	sb.WriteString(fmt.Sprintf("**Date**: %s\n\n", r.CertifiedAt.Format(time.RFC1123)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- Total: %d\n", r.Summary.Total))
	sb.WriteString(fmt.Sprintf("- Passed: %d\n", r.Summary.Passed))
	sb.WriteString(fmt.Sprintf("- Failed: %d\n\n", r.Summary.Failed))

	if len(r.Issues) > 0 {
		sb.WriteString("## Issues\n\n")
		for _, issue := range r.Issues {
			sb.WriteString("- " + issue + "\n")
		}
	}

	return sb.String()
}
