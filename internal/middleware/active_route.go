package middleware

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
)

// ActiveRouteKey is the gin context key holding the navigation route
const ActiveRouteKey = "activeRoute"

// ActiveRoute derives the navigation route from a request path:
//
//	/student/5    -> /student
//	/students/add -> /students/add
//	/students/    -> /students
func ActiveRoute(path string) string {
	route := strings.TrimPrefix(path, "/")

	if i := strings.Index(route, "/"); i >= 0 {
		rest := route[i+1:]
		if next := strings.Index(rest, "/"); next >= 0 {
			rest = rest[:next]
		}
		if rest == "" || isNumeric(rest) {
			route = route[:i]
		}
	}

	return "/" + strings.TrimSuffix(route, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// NavLinks exposes the active route to page templates
func NavLinks() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ActiveRouteKey, ActiveRoute(c.Request.URL.Path))
		c.Next()
	}
}
