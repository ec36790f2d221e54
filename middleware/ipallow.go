package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientIP derives the originating IP: first X-Forwarded-For entry, then
// X-Real-IP, then "unknown". Requests arriving without either header are
// only matchable when the allow-list is empty.
func ClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if parts := strings.Split(fwd, ","); len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}

// TVAccessGate restricts the kiosk routes to the IPs in ALLOWED_TV_IPS
// (comma-separated). An empty or unset variable allows all traffic.
func TVAccessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := parseAllowedIPs(os.Getenv("ALLOWED_TV_IPS"))
		if len(allowed) == 0 {
			log.Println("No ALLOWED_TV_IPS configured, allowing all access to /tv")
			c.Next()
			return
		}

		clientIP := ClientIP(c)
		for _, ip := range allowed {
			if ip == clientIP {
				log.Printf("Access granted to /tv from IP: %s", clientIP)
				c.Next()
				return
			}
		}

		log.Printf("Access denied to /tv from IP: %s", clientIP)
		c.String(http.StatusForbidden, "Access Denied: Your IP address is not authorized to view this page.")
		c.Abort()
	}
}

func parseAllowedIPs(raw string) []string {
	var ips []string
	for _, part := range strings.Split(raw, ",") {
		if ip := strings.TrimSpace(part); ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}
