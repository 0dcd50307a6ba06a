package compiler

import "golang.org/x/tools/imports"

func formatImports(code string) (string, error) {
	out, err := imports.Process("main.go", []byte(code), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
