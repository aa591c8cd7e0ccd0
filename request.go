package newsapi

// Page size bounds documented by the API.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// validatePaging checks the shared pageSize and page constraints. Zero means
// unset and is left for the API's defaults.
func validatePaging(pageSize, page int) error {
	if pageSize != 0 && (pageSize < MinPageSize || pageSize > MaxPageSize) {
		return &ValidationError{
			Field:   "pageSize",
			Message: "must be between 1 and 100",
		}
	}
	if page != 0 && page < 1 {
		return &ValidationError{
			Field:   "page",
			Message: "must be at least 1",
		}
	}
	return nil
}
