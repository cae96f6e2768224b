package config

import "flag"

type Config struct {
	InputPath string
	Build     string
	QType     string
	QClass    string
	QueryID   uint
	MaxNames  int
	MaxRRsets int
	MaxRdata  int
	LogLevel  string
}

func Default() Config {
	return Config{
		QType:     "A",
		QClass:    "IN",
		MaxNames:  1024,
		MaxRRsets: 1024,
		MaxRdata:  4096,
		LogLevel:  "info",
	}
}

// BindFlags registers the flags on the default flag set; the caller runs
// flag.Parse and picks up the positional input path afterwards.
func BindFlags(cfg *Config) {
	if cfg == nil {
		return
	}

	flag.StringVar(&cfg.Build, "build", cfg.Build, "build a query for this name and print it as a hex dump")
	flag.StringVar(&cfg.QType, "qtype", cfg.QType, "query type for -build (mnemonic, TYPEn, or number)")
	flag.StringVar(&cfg.QClass, "qclass", cfg.QClass, "query class for -build (mnemonic, CLASSn, or number)")
	flag.UintVar(&cfg.QueryID, "id", cfg.QueryID, "query id for -build")
	flag.IntVar(&cfg.MaxNames, "max-names", cfg.MaxNames, "max owner names per decode (0 = unlimited)")
	flag.IntVar(&cfg.MaxRRsets, "max-rrsets", cfg.MaxRRsets, "max RRsets per decode (0 = unlimited)")
	flag.IntVar(&cfg.MaxRdata, "max-rdata", cfg.MaxRdata, "max rdata entries per decode (0 = unlimited)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
}
