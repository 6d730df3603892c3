// Command dbfdump prints the column definitions of a DBF file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	godbf "github.com/Ulysses-Xu/go-dbf-field"
)

func main() {
	var (
		confPath string
		encoding string
		strict   bool
		verbose  bool
	)
	flag.StringVar(&confPath, "config", "", "ini config path")
	flag.StringVar(&encoding, "encoding", "", "character set of column names (overrides config)")
	flag.BoolVar(&strict, "strict", false, "reject descriptors that break the field rules")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	logger := newLogger(verbose)
	defer logger.Sync()
	godbf.SetLogger(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dbfdump [-config file] [-encoding name] [-strict] file.dbf")
		os.Exit(2)
	}

	conf, err := readConfig(confPath, logger)
	if err != nil {
		logger.Fatal("unable to parse config", zap.String("path", confPath), zap.Error(err))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "encoding":
			conf.Encoding = encoding
		case "strict":
			conf.Strict = strict
		}
	})

	codec, err := godbf.NewCodec(conf.Encoding, godbf.WithStrict(conf.Strict), godbf.WithLogger(logger))
	if err != nil {
		logger.Fatal("unable to create codec", zap.Error(err))
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Fatal("unable to open file", zap.Error(err))
	}
	defer f.Close()

	if err := dump(os.Stdout, bufio.NewReader(f), codec); err != nil {
		logger.Fatal("dump failed", zap.String("file", flag.Arg(0)), zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// dump writes the header summary and one line per column of the DBF read
// from r.
func dump(w io.Writer, r io.Reader, codec *godbf.Codec) error {
	h, err := readHeader(r)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "version 0x%02X, updated %s, %d records, header %d bytes, record %d bytes\n",
		h.Version, h.lastUpdate(), h.NumRecords, h.HeaderLength, h.RecordLength)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tTYPE\tLENGTH\tDECIMAL")
	for i := 0; ; i++ {
		e, err := codec.ReadField(r)
		if err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
		if e.End {
			break
		}
		fmt.Fprintf(tw, "%d\t%s\t%c\t%d\t%d\n", i, codec.Name(&e.Field), e.Field.DataType(),
			e.Field.FieldLength(), e.Field.DecimalCount())
	}
	return tw.Flush()
}
