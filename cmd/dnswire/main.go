package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"dnswire/internal/config"
	"dnswire/internal/dns"
	"dnswire/internal/hexdump"
	"dnswire/internal/logging"
)

func main() {
	cfg := config.Default()
	config.BindFlags(&cfg)
	flag.Parse()
	cfg.InputPath = flag.Arg(0)

	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("dnswire failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, out io.Writer) error {
	if cfg.Build != "" {
		return buildQuery(cfg, out)
	}
	return dumpMessage(cfg, out)
}

func buildQuery(cfg config.Config, out io.Writer) error {
	qtype, ok := dns.TypeValue(cfg.QType)
	if !ok {
		return fmt.Errorf("unknown query type %q", cfg.QType)
	}
	qclass, ok := dns.ClassValue(cfg.QClass)
	if !ok {
		return fmt.Errorf("unknown query class %q", cfg.QClass)
	}
	raw, err := dns.BuildQuery(uint16(cfg.QueryID), cfg.Build, qtype, qclass)
	if err != nil {
		return err
	}
	return hexdump.Dump(out, raw)
}

func dumpMessage(cfg config.Config, out io.Writer) error {
	var in io.Reader = os.Stdin
	if cfg.InputPath != "" {
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	buf, err := hexdump.Parse(in)
	if err != nil {
		return err
	}

	limits := dns.Limits{
		MaxNames:  cfg.MaxNames,
		MaxRRsets: cfg.MaxRRsets,
		MaxRdata:  cfg.MaxRdata,
	}
	msg, err := dns.DecodeMessage(buf, dns.NewDecompress(), limits)
	if err != nil {
		return err
	}
	return dns.Render(out, msg)
}
