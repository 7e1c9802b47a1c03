package validators

// Field name constants used to restrict validation of content requests to a
// subset of fields.
const (
	// FieldPath targets the raw path string (non-empty, no control
	// characters, non-empty resource name after the configserver: prefix).
	FieldPath = "path"

	// FieldPaths targets the list of paths of a batch request.
	FieldPaths = "paths"
)

// MaxPathsPerRequest bounds the number of paths resolved by one batch request.
const MaxPathsPerRequest = 256
