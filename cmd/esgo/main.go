package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"esgo/internal/compiler"
	"esgo/internal/config"
	"esgo/internal/formatter"
	"esgo/internal/logger"
	"esgo/internal/output"
	"esgo/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.Env)

	switch os.Args[1] {
	case "build":
		buildCmd(cfg, log, os.Args[2:])
	case "print":
		printCmd(cfg, log, os.Args[2:])
	case "tree":
		treeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func buildCmd(cfg *config.Config, log *slog.Logger, args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	dest := fs.String("o", cfg.Dest, "destination of the generated Go file")
	sink := fs.String("sink", cfg.Sink, "where to store the output: file or sqlite")
	goimports := fs.Bool("goimports", cfg.Goimports, "run goimports over the generated code")
	_ = fs.Parse(args)
	source := cfg.Source
	if fs.NArg() > 0 {
		source = fs.Arg(0)
	}

	res := compile(log, source, *goimports)

	ctx := context.Background()
	out, err := output.Open(ctx, *sink, cfg.SQLitePath, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := output.Store(ctx, out, *dest, res.Go); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printCmd(cfg *config.Config, log *slog.Logger, args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	goimports := fs.Bool("goimports", cfg.Goimports, "run goimports over the generated code")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "source file is required")
		os.Exit(1)
	}
	res := compile(log, fs.Arg(0), *goimports)
	fmt.Print(res.Go)
}

func treeCmd(args []string) {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "source file is required")
		os.Exit(1)
	}
	for _, file := range fs.Args() {
		root, err := parser.ParseFile(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(formatter.New().FormatTree(root))
	}
}

func compile(log *slog.Logger, source string, goimports bool) *compiler.Result {
	comp := compiler.New(compiler.WithGoimports(goimports), compiler.WithLogger(log))
	res, err := comp.Compile(source)
	if errors.Is(err, compiler.ErrWrongCode) {
		log.Error("Wrong code!", "source", source, "err", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, d := range res.Diagnostics {
		log.Warn("unsupported construct dropped", "source", source, "at", d.String())
	}
	return res
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  esgo build [-o <dest.go>] [-sink file|sqlite] [-goimports] [source.json]")
	fmt.Fprintln(os.Stderr, "  esgo print [-goimports] <source.json>")
	fmt.Fprintln(os.Stderr, "  esgo tree <source.json>...")
}
