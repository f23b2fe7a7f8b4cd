package config

import "strings"

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Any employee token
	SecurityAdmin                       // ADMIN employee token
)

// EndpointSecurityConfig maps "METHOD /route/template" to the level it requires.
// Routes that are not listed default to SecurityAccess.
var EndpointSecurityConfig = map[string]SecurityLevel{
	"POST /api/auth/login": SecurityPublic,
	"GET /healthz":         SecurityPublic,

	// Administrative corrections bypass pricing and inventory, so they are
	// restricted to admins.
	"POST /api/rental":          SecurityAdmin,
	"PUT /api/rental/{id}":      SecurityAdmin,
	"DELETE /api/rental/{id}":   SecurityAdmin,
	"POST /api/rental-item":     SecurityAdmin,
	"PUT /api/rental-item/{id}": SecurityAdmin,

	"DELETE /api/rental-item/{id}":   SecurityAdmin,
	"DELETE /api/customer/{id}":      SecurityAdmin,
	"DELETE /api/product/{id}":       SecurityAdmin,
	"DELETE /api/product-type/{id}":  SecurityAdmin,
	"DELETE /api/product-price/{id}": SecurityAdmin,
}

// GetSecurityLevel returns the security level for a route template. Regex
// constraints in path variables ("{id:[0-9]+}") are ignored.
func GetSecurityLevel(method, pathTemplate string) SecurityLevel {
	key := method + " " + stripPatterns(pathTemplate)
	if level, ok := EndpointSecurityConfig[key]; ok {
		return level
	}
	return SecurityAccess
}

func stripPatterns(tpl string) string {
	var b strings.Builder
	inVar := false
	skipping := false
	for _, ch := range tpl {
		switch {
		case ch == '{':
			inVar = true
			b.WriteRune(ch)
		case ch == '}' && inVar:
			inVar = false
			skipping = false
			b.WriteRune(ch)
		case ch == ':' && inVar:
			skipping = true
		case skipping:
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
