package types

import "strings"

// Inferred is a name/type pair fabricated from an identifier's spelling.
type Inferred struct {
	Name string
	Type string
}

// Infer derives a Go type for name using naming conventions:
//
//	count_int       -> count int
//	nums_arr_3_int  -> nums [3]int
//	intTotal        -> intTotal int
//	main            -> main (no type)
//	anything else   -> string
//
// It never fails. The result is a guess, which is why generated function
// signatures carry a review marker.
func Infer(name string) Inferred {
	if strings.Contains(name, "_") {
		parts := strings.Split(name, "_")
		switch segment(parts, 1) {
		case "arr", "array":
			return Inferred{Name: parts[0], Type: "[" + segment(parts, 2) + "]" + segment(parts, 3)}
		default:
			return Inferred{Name: parts[0], Type: segment(parts, 1)}
		}
	}
	if strings.HasPrefix(name, "int") {
		return Inferred{Name: name, Type: "int"}
	}
	if name == "main" {
		return Inferred{Name: name}
	}
	return Inferred{Name: name, Type: "string"}
}

// IsArray reports whether t is a Go array or slice type.
func IsArray(t string) bool {
	return strings.HasPrefix(t, "[")
}

func segment(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
