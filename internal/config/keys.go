package config

const (
	KeyBackendURL   = "backend_url"
	KeyHTTPTimeout  = "http_timeout"
	KeyLogLevel     = "log_level"
	KeyTransport    = "transport"
	KeyHost         = "host"
	KeyPort         = "port"
	KeyEndpointPath = "mcp_endpoint_path"
)
