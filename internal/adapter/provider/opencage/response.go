package opencage

// apiResponse is the subset of the OpenCage reverse geocoding payload
// served by the geoproxy endpoint.
type apiResponse struct {
	Status  apiStatus   `json:"status"`
	Results []apiResult `json:"results"`
}

type apiStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type apiResult struct {
	Formatted string `json:"formatted"`
}
