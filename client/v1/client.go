package v1

type SecurityScanClient struct {
	Transport *Transport
	Forms     *FormEndpoint
}

// NewSecurityScanClient initializes the API client
func NewSecurityScanClient(baseURL string, token string) *SecurityScanClient {
	t := NewTransport(baseURL, token)
	return &SecurityScanClient{
		Transport: t,
		Forms:     &FormEndpoint{transport: t},
	}
}
