package domain

// GatewayResult is the outcome of a gateway operation that reached the
// billing service. A declined or invalid request is a result with
// Success=false, never an error.
type GatewayResult struct {
	Success   bool             `json:"success"`
	Reference string           `json:"reference,omitempty"`
	Message   string           `json:"message,omitempty"`
	Errors    ValidationErrors `json:"errors,omitempty"`
}

func NewSuccessResult(reference string) *GatewayResult {
	return &GatewayResult{
		Success:   true,
		Reference: reference,
	}
}

func NewFailureResult(reference string, errs ValidationErrors) *GatewayResult {
	return &GatewayResult{
		Success:   false,
		Reference: reference,
		Message:   errs.Error(),
		Errors:    errs,
	}
}
