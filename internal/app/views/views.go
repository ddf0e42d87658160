package views

import (
	"embed"
	"fmt"
	"html/template"
	"reflect"

	"github.com/yigit/college/internal/pkg/helpers"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// FuncMap holds the helpers available to every page template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"navLink": NavLink,
		"equal":   Equal,
		"str":     helpers.StringValue,
	}
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// NavLink renders a navigation item, marked active when url is the active route
func NavLink(activeRoute, url, label string) template.HTML {
	class := "nav-item"
	if url == activeRoute {
		class = "nav-item active"
	}
	return template.HTML(fmt.Sprintf(`<li class="%s"><a class="nav-link" href="%s">%s</a></li>`,
		class, template.HTMLEscapeString(url), template.HTMLEscapeString(label)))
}

// Equal compares two template values, looking through pointers
func Equal(lvalue, rvalue interface{}) bool {
	l, r := indirect(lvalue), indirect(rvalue)
	if l == nil || r == nil {
		return l == nil && r == nil
	}
	return fmt.Sprint(l) == fmt.Sprint(r)
}

func indirect(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
