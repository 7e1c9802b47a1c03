package reader

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-config-reader/models"
)

const (
	permissionMarker    = "denied"
	remediationTemplate = "The process is running as user %s. Make sure that user can read the requested file."
)

// newProblem builds the FATAL problem for a failed retrieval. The message is
// "<context>: <cause>." where context is a complete sentence of its own,
// trailing period included. A permission
// failure (error text containing "denied") carries a remediation naming the
// identity the process runs as.
func (r *ValidatingFileReader) newProblem(context string, err error) *models.Problem {
	return classify(context, err, r.runAs)
}

func classify(context string, err error, runAs string) *models.Problem {
	cause := err.Error()

	problem := &models.Problem{
		Severity: models.SeverityFatal,
		Message:  fmt.Sprintf("%s: %s.", context, cause),
	}
	if strings.Contains(cause, permissionMarker) {
		problem.Remediation = fmt.Sprintf(remediationTemplate, runAs)
	}

	return problem
}

func quote(s string) string {
	return `"` + s + `"`
}
